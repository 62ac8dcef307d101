package rest

import (
	"time"

	"github.com/contentforge/content-service/internal/cms"
	"github.com/contentforge/content-service/internal/discovery"
)

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewContentResponse(c cms.Content) ContentResponse {
	return ContentResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Body:        c.Body,
		Category:    c.Category,
		Language:    c.Language,
		Status:      string(c.Status),
		AuthorID:    c.AuthorID,
		PublishedAt: c.PublishedAt,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		MetaData:    c.MetaData,
	}
}

func NewContentListResponse(list []cms.Content, total, page, limit int) ContentListResponse {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return ContentListResponse{
		Data:       Map(list, NewContentResponse),
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

func NewDiscoveryItem(item discovery.Item) DiscoveryItem {
	return DiscoveryItem{
		ID:            item.Content.ID,
		Title:         item.Content.Title,
		Category:      item.Content.Category,
		Language:      item.Content.Language,
		AuthorID:      item.Content.AuthorID,
		PublishedAt:   item.Content.PublishedAt,
		DiscoveryMeta: item.Meta,
	}
}

func NewDiscoveryResponse(result *discovery.Result) DiscoveryResponse {
	return DiscoveryResponse{
		Data:      Map(result.Items, NewDiscoveryItem),
		Total:     result.Total,
		Page:      result.Page,
		Limit:     result.Limit,
		UpdatedAt: result.UpdatedAt,
	}
}

// toFilter converts a validated filter request into the domain command.
// Empty strings mean the parameter was absent and impose no predicate.
func (r *ContentFilterRequest) toFilter() (cms.Filter, error) {
	filter := cms.Filter{
		SortBy:    r.SortBy,
		SortOrder: r.SortOrder,
		Page:      r.Page,
		Limit:     r.Limit,
	}

	if r.Category != "" {
		filter.Category = &r.Category
	}
	if r.Language != "" {
		filter.Language = &r.Language
	}
	if r.AuthorID != "" {
		filter.AuthorID = &r.AuthorID
	}

	if r.Status != "" {
		status := cms.Status(r.Status)
		filter.Status = &status
	}

	if r.PublishedFrom != "" {
		from, err := time.Parse(time.RFC3339, r.PublishedFrom)
		if err != nil {
			return cms.Filter{}, err
		}
		filter.PublishedFrom = &from
	}

	if r.PublishedTo != "" {
		to, err := time.Parse(time.RFC3339, r.PublishedTo)
		if err != nil {
			return cms.Filter{}, err
		}
		filter.PublishedTo = &to
	}

	return filter, nil
}
