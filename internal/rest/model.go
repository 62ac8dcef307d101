package rest

import (
	"time"

	"github.com/contentforge/content-service/internal/discovery"
)

// CreateContentRequest is the create command payload. Required string fields
// must be non-empty; meta_data must be a JSON object when present.
type CreateContentRequest struct {
	Title       string                 `json:"title" validate:"required"`
	Description string                 `json:"description" validate:"required"`
	Body        string                 `json:"body" validate:"required"`
	Category    string                 `json:"category" validate:"required"`
	Language    string                 `json:"language" validate:"required"`
	Status      string                 `json:"status" validate:"required,oneof=DRAFT PUBLISHED ARCHIVED"`
	AuthorID    string                 `json:"author_id" validate:"required"`
	MetaData    map[string]interface{} `json:"meta_data"`
}

// UpdateContentRequest is the partial update payload. Absent fields leave the
// stored record untouched; present fields follow the create constraints.
type UpdateContentRequest struct {
	Title       *string                `json:"title" validate:"omitempty,min=1"`
	Description *string                `json:"description" validate:"omitempty,min=1"`
	Body        *string                `json:"body" validate:"omitempty,min=1"`
	Category    *string                `json:"category" validate:"omitempty,min=1"`
	Language    *string                `json:"language" validate:"omitempty,min=1"`
	Status      *string                `json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
	AuthorID    *string                `json:"author_id" validate:"omitempty,min=1"`
	MetaData    map[string]interface{} `json:"meta_data"`
}

// ContentFilterRequest binds the list query string. Field names map to
// snake_case query parameters through urlstruct; fields are value-typed
// because urlstruct leaves pointer fields untouched, so an empty string
// means the parameter was absent.
type ContentFilterRequest struct {
	Category      string `json:"category"`
	Language      string `json:"language"`
	Status        string `json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
	AuthorID      string `json:"author_id"`
	PublishedFrom string `json:"published_from" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	PublishedTo   string `json:"published_to" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	SortBy        string `json:"sort_by" validate:"omitempty,oneof=created_at updated_at published_at title"`
	SortOrder     string `json:"sort_order" validate:"omitempty,oneof=asc desc"`
	Page          int    `json:"page" validate:"omitempty,min=1"`
	Limit         int    `json:"limit" validate:"omitempty,min=1"`
}

// SearchContentRequest is a filter plus the required free-text query,
// bound from the q parameter.
type SearchContentRequest struct {
	ContentFilterRequest
	Q string `json:"q" validate:"required"`
}

// DiscoveryQueryRequest binds the shared discovery query string. The popular
// endpoint additionally accepts a period token. Value-typed for the same
// urlstruct reason as ContentFilterRequest.
type DiscoveryQueryRequest struct {
	Category string `json:"category"`
	Language string `json:"language"`
	Period   string `json:"period" validate:"omitempty,oneof=day week month year all"`
	Page     int    `json:"page" validate:"omitempty,min=1"`
	Limit    int    `json:"limit" validate:"omitempty,min=1"`
}

type ContentResponse struct {
	ID          string                 `json:"id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Body        string                 `json:"body"`
	Category    string                 `json:"category"`
	Language    string                 `json:"language"`
	Status      string                 `json:"status"`
	AuthorID    string                 `json:"author_id"`
	PublishedAt *time.Time             `json:"published_at"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
	MetaData    map[string]interface{} `json:"meta_data,omitempty"`
}

type ContentListResponse struct {
	Data       []ContentResponse `json:"data"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"totalPages"`
}

type DeleteContentResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// DiscoveryItem is the trimmed content view served by discovery endpoints,
// decorated with the optional metadata bag.
type DiscoveryItem struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Category      string         `json:"category"`
	Language      string         `json:"language"`
	AuthorID      string         `json:"author_id"`
	PublishedAt   *time.Time     `json:"published_at"`
	DiscoveryMeta discovery.Meta `json:"discovery_meta"`
}

type DiscoveryResponse struct {
	Data      []DiscoveryItem `json:"data"`
	Total     int             `json:"total"`
	Page      int             `json:"page"`
	Limit     int             `json:"limit"`
	UpdatedAt time.Time       `json:"updated_at"`
}
