package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"

	"github.com/contentforge/content-service/internal/cms"
	"github.com/contentforge/content-service/internal/validation"
)

// ContentManager is the use-case seam the content handlers call through.
// *cms.Manager is the production implementation.
type ContentManager interface {
	CreateContent(ctx context.Context, params cms.CreateParams) (*cms.Content, error)
	UpdateContent(ctx context.Context, id string, params cms.UpdateParams) (*cms.Content, error)
	DeleteContent(ctx context.Context, id string) error
	ContentByID(ctx context.Context, id string) (*cms.Content, error)
	PublishedContentByID(ctx context.Context, id string) (*cms.Content, error)
	ContentByFilter(ctx context.Context, filter cms.Filter) ([]cms.Content, int, error)
	SearchContent(ctx context.Context, query string, filter cms.Filter) ([]cms.Content, int, error)
}

type ContentHandler struct {
	uc  ContentManager
	log *slog.Logger
}

func NewContentHandler(uc ContentManager, log *slog.Logger) *ContentHandler {
	return &ContentHandler{
		uc:  uc,
		log: log,
	}
}

func (h *ContentHandler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

// respondError maps domain failures onto the uniform error envelope:
// validation -> 400 with per-field details, not found -> 404, anything
// else -> 500 with the internal detail logged but not leaked.
func (h *ContentHandler) respondError(c echo.Context, err error) error {
	if ve, ok := validation.AsErrors(err); ok {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":  ve.Error(),
			"fields": ve.Fields,
		})
	}

	if errors.Is(err, cms.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "content not found"})
	}

	return h.handleError(c, err, http.StatusInternalServerError, "internal error")
}

// CreateContent handles POST /cms/content
// @Summary Create content
// @Description Creates a new content record from a full create command. The id and timestamps are server-generated; publishedAt is set iff the record is created with status PUBLISHED
// @Tags cms
// @Accept json
// @Produce json
// @Param request body rest.CreateContentRequest true "Create command"
// @Success 201 {object} rest.ContentResponse
// @Failure 400,500 {object} map[string]string
// @Router /cms/content [post]
func (h *ContentHandler) CreateContent(c echo.Context) error {
	var req CreateContentRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return h.respondError(c, err)
	}

	content, err := h.uc.CreateContent(c.Request().Context(), cms.CreateParams{
		Title:       req.Title,
		Description: req.Description,
		Body:        req.Body,
		Category:    req.Category,
		Language:    req.Language,
		Status:      cms.Status(req.Status),
		AuthorID:    req.AuthorID,
		MetaData:    req.MetaData,
	})
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, NewContentResponse(*content))
}

// UpdateContent handles PUT /cms/content/:id
// @Summary Update content
// @Description Partially updates a content record; absent fields stay untouched. Every transition into PUBLISHED refreshes publishedAt
// @Tags cms
// @Accept json
// @Produce json
// @Param id path string true "Content ID"
// @Param request body rest.UpdateContentRequest true "Update command"
// @Success 200 {object} rest.ContentResponse
// @Failure 400,404,500 {object} map[string]string
// @Router /cms/content/{id} [put]
func (h *ContentHandler) UpdateContent(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return h.handleError(c, nil, http.StatusBadRequest, "invalid id")
	}

	var req UpdateContentRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return h.respondError(c, err)
	}

	params := cms.UpdateParams{
		Title:       req.Title,
		Description: req.Description,
		Body:        req.Body,
		Category:    req.Category,
		Language:    req.Language,
		AuthorID:    req.AuthorID,
		MetaData:    req.MetaData,
	}
	if req.Status != nil {
		status := cms.Status(*req.Status)
		params.Status = &status
	}

	content, err := h.uc.UpdateContent(c.Request().Context(), id, params)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, NewContentResponse(*content))
}

// DeleteContent handles DELETE /cms/content/:id
// @Summary Delete content
// @Description Deletes a content record by id. Deletion is terminal
// @Tags cms
// @Produce json
// @Param id path string true "Content ID"
// @Success 200 {object} rest.DeleteContentResponse
// @Failure 404,500 {object} map[string]string
// @Router /cms/content/{id} [delete]
func (h *ContentHandler) DeleteContent(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return h.handleError(c, nil, http.StatusBadRequest, "invalid id")
	}

	if err := h.uc.DeleteContent(c.Request().Context(), id); err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, DeleteContentResponse{
		Message: "Content deleted successfully",
		ID:      id,
	})
}

// ContentByID handles GET /cms/content/:id
// @Summary Get content by ID
// @Description Retrieves a single content record regardless of status
// @Tags cms
// @Produce json
// @Param id path string true "Content ID"
// @Success 200 {object} rest.ContentResponse
// @Failure 404,500 {object} map[string]string
// @Router /cms/content/{id} [get]
func (h *ContentHandler) ContentByID(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return h.handleError(c, nil, http.StatusBadRequest, "invalid id")
	}

	content, err := h.uc.ContentByID(c.Request().Context(), id)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, NewContentResponse(*content))
}

// ContentList handles GET /cms/content
// @Summary List content
// @Description Retrieves a filtered, sorted, paginated page of content together with the total matching count
// @Tags cms
// @Produce json
// @Param category query string false "Filter by category"
// @Param language query string false "Filter by language"
// @Param status query string false "Filter by status" Enums(DRAFT, PUBLISHED, ARCHIVED)
// @Param author_id query string false "Filter by author ID"
// @Param published_from query string false "Inclusive lower publishedAt bound (RFC3339)"
// @Param published_to query string false "Inclusive upper publishedAt bound (RFC3339)"
// @Param sort_by query string false "Sort key (default: created_at)"
// @Param sort_order query string false "Sort direction (default: desc)"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10)"
// @Success 200 {object} rest.ContentListResponse
// @Failure 400,500 {object} map[string]string
// @Router /cms/content [get]
func (h *ContentHandler) ContentList(c echo.Context) error {
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

	filter.Normalize()

	list, total, err := h.uc.ContentByFilter(c.Request().Context(), filter)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, NewContentListResponse(list, total, filter.Page, filter.Limit))
}
