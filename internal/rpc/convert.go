package rpc

import "github.com/contentforge/content-service/internal/cms"

func NewContent(c cms.Content) Content {
	return Content{
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

func NewContentPage(list []cms.Content, total, page, limit int) ContentPage {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	data := make([]Content, len(list))
	for i := range list {
		data[i] = NewContent(list[i])
	}

	return ContentPage{
		Data:       data,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + limit - 1) / limit,
	}
}
