package rpc

import (
	"context"
	"errors"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/contentforge/content-service/internal/cms"
)

//go:generate zenrpc

var errInvalidStatus = errors.New("invalid status")

// ContentService provides RPC methods over the content read surface.
type ContentService struct {
	zenrpc.Service
	manager *cms.Manager
}

func NewContentService(manager *cms.Manager) *ContentService {
	return &ContentService{manager: manager}
}

// List retrieves a filtered, sorted page of content with the total count.
//
//zenrpc:filter optional predicates, sort and pagination
//zenrpc:return page of content
//zenrpc:400 invalid filter
//zenrpc:500 internal server error
func (s *ContentService) List(ctx context.Context, filter ContentFilter) (*ContentPage, error) {
	f, err := filter.toFilter()
	if err != nil {
		return nil, zenrpc.NewStringError(400, err.Error())
	}

	list, total, err := s.manager.ContentByFilter(ctx, f)
	if err != nil {
		return nil, err
	}

	page := NewContentPage(list, total, filter.Page, filter.Limit)
	return &page, nil
}

// Count returns the number of records matching the filter predicates.
//
//zenrpc:filter optional predicates
//zenrpc:return matching record count
//zenrpc:400 invalid filter
//zenrpc:500 internal server error
func (s *ContentService) Count(ctx context.Context, filter ContentFilter) (int, error) {
	f, err := filter.toFilter()
	if err != nil {
		return 0, zenrpc.NewStringError(400, err.Error())
	}

	return s.manager.ContentCount(ctx, f)
}

// Search runs a case-insensitive text match over title, description and body.
//
//zenrpc:req search query plus optional predicates
//zenrpc:return page of matching content
//zenrpc:400 query must not be empty
//zenrpc:500 internal server error
func (s *ContentService) Search(ctx context.Context, req SearchRequest) (*ContentPage, error) {
	if req.Query == "" {
		return nil, zenrpc.NewStringError(400, "query must not be empty")
	}

	f, err := req.toFilter()
	if err != nil {
		return nil, zenrpc.NewStringError(400, err.Error())
	}

	list, total, err := s.manager.SearchContent(ctx, req.Query, f)
	if err != nil {
		return nil, err
	}

	page := NewContentPage(list, total, req.Page, req.Limit)
	return &page, nil
}

// ByID retrieves a single content record by id.
//
//zenrpc:req content id
//zenrpc:return content record
//zenrpc:400 id must not be empty
//zenrpc:404 content not found
//zenrpc:500 internal server error
func (s *ContentService) ByID(ctx context.Context, req ContentByIDRequest) (*Content, error) {
	if req.ID == "" {
		return nil, zenrpc.NewStringError(400, "id must not be empty")
	}

	content, err := s.manager.ContentByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, cms.ErrNotFound) {
			return nil, zenrpc.NewStringError(404, "content not found")
		}
		return nil, err
	}

	result := NewContent(*content)
	return &result, nil
}
