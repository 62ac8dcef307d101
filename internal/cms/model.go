package cms

import (
	"time"

	"github.com/contentforge/content-service/internal/db"
)

// Status is the closed content lifecycle enumeration.
type Status string

const (
	StatusDraft     Status = db.StatusDraft
	StatusPublished Status = db.StatusPublished
	StatusArchived  Status = db.StatusArchived
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// Content is the canonical content record as seen outside the storage layer.
// MetaData is an opaque JSON object passed through unchanged.
type Content struct {
	ID          string
	Title       string
	Description string
	Body        string
	Category    string
	Language    string
	Status      Status
	AuthorID    string
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	MetaData    map[string]interface{}
}

// CreateParams is a validated create command. All fields are required except
// MetaData; validation happens upstream in the transport layer.
type CreateParams struct {
	Title       string
	Description string
	Body        string
	Category    string
	Language    string
	Status      Status
	AuthorID    string
	MetaData    map[string]interface{}
}

// UpdateParams is a validated partial update command. Nil fields leave the
// stored value untouched.
type UpdateParams struct {
	Title       *string
	Description *string
	Body        *string
	Category    *string
	Language    *string
	Status      *Status
	AuthorID    *string
	MetaData    map[string]interface{}
}

// Filter is a validated list command: optional predicates plus sort and
// pagination. Zero sort/pagination fields take the documented defaults.
// ExcludeID drops a single record from the result and the count.
type Filter struct {
	Category      *string
	Language      *string
	Status        *Status
	AuthorID      *string
	PublishedFrom *time.Time
	PublishedTo   *time.Time
	ExcludeID     *string

	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// Normalize applies the documented sort and pagination defaults. The storage
// layer owns the default values; callers needing the effective page and limit
// for response envelopes normalize first.
func (f *Filter) Normalize() {
	normalized := db.ContentFilter{
		SortBy:    f.SortBy,
		SortOrder: f.SortOrder,
		Page:      f.Page,
		Limit:     f.Limit,
	}
	normalized.Normalize()

	f.SortBy = normalized.SortBy
	f.SortOrder = normalized.SortOrder
	f.Page = normalized.Page
	f.Limit = normalized.Limit
}
