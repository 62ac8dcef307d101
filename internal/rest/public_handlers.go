package rest

import (
	"net/http"

	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"

	"github.com/contentforge/content-service/internal/cms"
	"github.com/contentforge/content-service/internal/validation"
)

// The public surface serves published records only: the status filter is
// pinned to PUBLISHED and drafts are indistinguishable from missing content.

// PublicContentList handles GET /content
// @Summary List published content
// @Description Public variant of the content listing: only published records are returned
// @Tags content
// @Produce json
// @Param category query string false "Filter by category"
// @Param language query string false "Filter by language"
// @Param author_id query string false "Filter by author ID"
// @Param published_from query string false "Inclusive lower publishedAt bound (RFC3339)"
// @Param published_to query string false "Inclusive upper publishedAt bound (RFC3339)"
// @Param sort_by query string false "Sort key (default: created_at)"
// @Param sort_order query string false "Sort direction (default: desc)"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10)"
// @Success 200 {object} rest.ContentListResponse
// @Failure 400,500 {object} map[string]string
// @Router /content [get]
func (h *ContentHandler) PublicContentList(c echo.Context) error {
	var req ContentFilterRequest
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}
	if err := validation.Struct(&req); err != nil {
		return h.respondError(c, err)
	}

	filter, err := req.toFilter()
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	published := cms.StatusPublished
	filter.Status = &published
	filter.Normalize()

	list, total, err := h.uc.ContentByFilter(c.Request().Context(), filter)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, NewContentListResponse(list, total, filter.Page, filter.Limit))
}

// SearchContent handles GET /content/search
// @Summary Search published content
// @Description Case-insensitive contains match over title, description and body, combined with the remaining filters
// @Tags content
// @Produce json
// @Param q query string true "Search query"
// @Param category query string false "Filter by category"
// @Param language query string false "Filter by language"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10)"
// @Success 200 {object} rest.ContentListResponse
// @Failure 400,500 {object} map[string]string
// @Router /content/search [get]
func (h *ContentHandler) SearchContent(c echo.Context) error {
	var req SearchContentRequest
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}
	if err := validation.Struct(&req); err != nil {
		return h.respondError(c, err)
	}

	filter, err := req.toFilter()
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	published := cms.StatusPublished
	filter.Status = &published
	filter.Normalize()

	list, total, err := h.uc.SearchContent(c.Request().Context(), req.Q, filter)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, NewContentListResponse(list, total, filter.Page, filter.Limit))
}

// PublicContentByID handles GET /content/:id
// @Summary Get published content by ID
// @Description Retrieves a single published content record; drafts and archived records yield 404
// @Tags content
// @Produce json
// @Param id path string true "Content ID"
// @Success 200 {object} rest.ContentResponse
// @Failure 404,500 {object} map[string]string
// @Router /content/{id} [get]
func (h *ContentHandler) PublicContentByID(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return h.handleError(c, nil, http.StatusBadRequest, "invalid id")
	}

	content, err := h.uc.PublishedContentByID(c.Request().Context(), id)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, NewContentResponse(*content))
}
