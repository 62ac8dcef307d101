package rpc

import (
	"time"

	"github.com/contentforge/content-service/internal/cms"
)

type ContentFilter struct {
	Category      *string `json:"category"`
	Language      *string `json:"language"`
	Status        *string `json:"status"`
	AuthorID      *string `json:"authorId"`
	PublishedFrom *string `json:"publishedFrom"`
	PublishedTo   *string `json:"publishedTo"`
	SortBy        string  `json:"sortBy"`
	SortOrder     string  `json:"sortOrder"`
	Page          int     `json:"page"`
	Limit         int     `json:"limit"`
}

type SearchRequest struct {
	ContentFilter
	Query string `json:"query"`
}

type ContentByIDRequest struct {
	ID string `json:"id"`
}

type Content struct {
	ID          string                 `json:"id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Body        string                 `json:"body"`
	Category    string                 `json:"category"`
	Language    string                 `json:"language"`
	Status      string                 `json:"status"`
	AuthorID    string                 `json:"authorId"`
	PublishedAt *time.Time             `json:"publishedAt"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
	MetaData    map[string]interface{} `json:"metaData,omitempty"`
}

type ContentPage struct {
	Data       []Content `json:"data"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
	TotalPages int       `json:"totalPages"`
}

func (f ContentFilter) toFilter() (cms.Filter, error) {
	filter := cms.Filter{
		Category:  f.Category,
		Language:  f.Language,
		AuthorID:  f.AuthorID,
		SortBy:    f.SortBy,
		SortOrder: f.SortOrder,
		Page:      f.Page,
		Limit:     f.Limit,
	}

	if f.Status != nil {
		status := cms.Status(*f.Status)
		if !status.Valid() {
			return cms.Filter{}, errInvalidStatus
		}
		filter.Status = &status
	}

	if f.PublishedFrom != nil {
		from, err := time.Parse(time.RFC3339, *f.PublishedFrom)
		if err != nil {
			return cms.Filter{}, err
		}
		filter.PublishedFrom = &from
	}

	if f.PublishedTo != nil {
		to, err := time.Parse(time.RFC3339, *f.PublishedTo)
		if err != nil {
			return cms.Filter{}, err
		}
		filter.PublishedTo = &to
	}

	return filter, nil
}
