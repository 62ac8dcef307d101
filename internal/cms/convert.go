package cms

import "github.com/contentforge/content-service/internal/db"

func NewContent(c *db.Content) Content {
	return Content{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Body:        c.Body,
		Category:    c.Category,
		Language:    c.Language,
		Status:      Status(c.Status),
		AuthorID:    c.AuthorID,
		PublishedAt: c.PublishedAt,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		MetaData:    c.MetaData,
	}
}

func NewContentList(list []db.Content) []Content {
	result := make([]Content, len(list))
	for i := range list {
		result[i] = NewContent(&list[i])
	}
	return result
}

func (f *Filter) toDB() *db.ContentFilter {
	filter := &db.ContentFilter{
		Category:      f.Category,
		Language:      f.Language,
		AuthorID:      f.AuthorID,
		PublishedFrom: f.PublishedFrom,
		PublishedTo:   f.PublishedTo,
		ExcludeID:     f.ExcludeID,
		SortBy:        f.SortBy,
		SortOrder:     f.SortOrder,
		Page:          f.Page,
		Limit:         f.Limit,
	}
	if f.Status != nil {
		status := string(*f.Status)
		filter.Status = &status
	}
	filter.Normalize()

	return filter
}
