package cms

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/contentforge/content-service/internal/db"
)

// ErrNotFound is returned when a referenced content id is absent or, for the
// public surface, not published.
var ErrNotFound = db.ErrContentNotFound

// ContentStore is the single seam through which content reaches the data
// store. *db.Repository is the production implementation.
type ContentStore interface {
	CreateContent(ctx context.Context, content *db.Content) error
	UpdateContent(ctx context.Context, content *db.Content) error
	DeleteContent(ctx context.Context, id string) error
	ContentByID(ctx context.Context, id string) (*db.Content, error)
	ContentByFilter(ctx context.Context, filter *db.ContentFilter) ([]db.Content, error)
	ContentCount(ctx context.Context, filter *db.ContentFilter) (int, error)
}

type Manager struct {
	store ContentStore
	log   *slog.Logger
}

func NewManager(store ContentStore, log *slog.Logger) *Manager {
	return &Manager{
		store: store,
		log:   log,
	}
}

// CreateContent persists a new record from a validated create command.
// The id is server-generated, createdAt equals updatedAt, and publishedAt is
// set iff the record is created already published.
func (m *Manager) CreateContent(ctx context.Context, params CreateParams) (*Content, error) {
	now := time.Now()

	status := params.Status
	if status == "" {
		status = StatusDraft
	}

	content := &db.Content{
		ID:          uuid.NewString(),
		Title:       params.Title,
		Description: params.Description,
		Body:        params.Body,
		Category:    params.Category,
		Language:    params.Language,
		Status:      string(status),
		AuthorID:    params.AuthorID,
		CreatedAt:   now,
		UpdatedAt:   now,
		MetaData:    params.MetaData,
	}
	if status == StatusPublished {
		content.PublishedAt = &now
	}

	if err := m.store.CreateContent(ctx, content); err != nil {
		m.log.Error("create content failed", "error", err, "authorId", params.AuthorID)
		return nil, fmt.Errorf("db create content: %w", err)
	}

	result := NewContent(content)
	return &result, nil
}

// UpdateContent merges a validated partial update command into the stored
// record. Fields omitted from the command are left untouched. Every
// transition into PUBLISHED sets publishedAt to the current time.
func (m *Manager) UpdateContent(ctx context.Context, id string, params UpdateParams) (*Content, error) {
	content, err := m.store.ContentByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get content: %w", err)
	}

	if params.Title != nil {
		content.Title = *params.Title
	}
	if params.Description != nil {
		content.Description = *params.Description
	}
	if params.Body != nil {
		content.Body = *params.Body
	}
	if params.Category != nil {
		content.Category = *params.Category
	}
	if params.Language != nil {
		content.Language = *params.Language
	}
	if params.AuthorID != nil {
		content.AuthorID = *params.AuthorID
	}
	if params.MetaData != nil {
		content.MetaData = params.MetaData
	}

	now := time.Now()
	if params.Status != nil {
		content.Status = string(*params.Status)
		if *params.Status == StatusPublished {
			content.PublishedAt = &now
		}
	}
	content.UpdatedAt = now

	if err := m.store.UpdateContent(ctx, content); err != nil {
		m.log.Error("update content failed", "error", err, "contentId", id)
		return nil, fmt.Errorf("db update content: %w", err)
	}

	result := NewContent(content)
	return &result, nil
}

func (m *Manager) DeleteContent(ctx context.Context, id string) error {
	if err := m.store.DeleteContent(ctx, id); err != nil {
		return fmt.Errorf("db delete content: %w", err)
	}

	return nil
}

func (m *Manager) ContentByID(ctx context.Context, id string) (*Content, error) {
	content, err := m.store.ContentByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get content: %w", err)
	}

	result := NewContent(content)
	return &result, nil
}

// PublishedContentByID is the public-surface fetch: drafts and archived
// records are indistinguishable from missing ones.
func (m *Manager) PublishedContentByID(ctx context.Context, id string) (*Content, error) {
	content, err := m.ContentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if content.Status != StatusPublished {
		return nil, fmt.Errorf("content %q is not published: %w", id, ErrNotFound)
	}

	return content, nil
}

// ContentByFilter returns one ordered page of content plus the total number
// of records matching the same predicates.
func (m *Manager) ContentByFilter(ctx context.Context, filter Filter) ([]Content, int, error) {
	dbFilter := filter.toDB()

	list, err := m.store.ContentByFilter(ctx, dbFilter)
	if err != nil {
		m.log.Error("filter content failed", "error", err)
		return nil, 0, fmt.Errorf("db get contents: %w", err)
	}

	total, err := m.store.ContentCount(ctx, dbFilter)
	if err != nil {
		m.log.Error("count content failed", "error", err)
		return nil, 0, fmt.Errorf("db get content count: %w", err)
	}

	return NewContentList(list), total, nil
}

// ContentCount returns the number of records matching the filter predicates
// without fetching a page.
func (m *Manager) ContentCount(ctx context.Context, filter Filter) (int, error) {
	total, err := m.store.ContentCount(ctx, filter.toDB())
	if err != nil {
		m.log.Error("count content failed", "error", err)
		return 0, fmt.Errorf("db get content count: %w", err)
	}

	return total, nil
}

// SearchContent runs a case-insensitive contains match over title,
// description and body, combined with the remaining filter predicates.
func (m *Manager) SearchContent(ctx context.Context, query string, filter Filter) ([]Content, int, error) {
	dbFilter := filter.toDB()
	dbFilter.Query = &query

	list, err := m.store.ContentByFilter(ctx, dbFilter)
	if err != nil {
		m.log.Error("search content failed", "error", err, "query", query)
		return nil, 0, fmt.Errorf("db search contents: %w", err)
	}

	total, err := m.store.ContentCount(ctx, dbFilter)
	if err != nil {
		m.log.Error("count content failed", "error", err, "query", query)
		return nil, 0, fmt.Errorf("db get content count: %w", err)
	}

	return NewContentList(list), total, nil
}
