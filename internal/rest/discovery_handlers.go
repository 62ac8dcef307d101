package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"

	"github.com/contentforge/content-service/internal/cms"
	"github.com/contentforge/content-service/internal/discovery"
	"github.com/contentforge/content-service/internal/validation"
)

// DiscoveryManager is the facade seam for the discovery endpoints.
// *discovery.Manager is the production implementation.
type DiscoveryManager interface {
	Trending(ctx context.Context, query discovery.Query) (*discovery.Result, error)
	Recommended(ctx context.Context, query discovery.Query) (*discovery.Result, error)
	Popular(ctx context.Context, query discovery.Query, period string) (*discovery.Result, error)
	Related(ctx context.Context, id string, query discovery.Query) (*discovery.Result, error)
	Recent(ctx context.Context, query discovery.Query) (*discovery.Result, error)
}

type DiscoveryHandler struct {
	uc  DiscoveryManager
	log *slog.Logger
}

func NewDiscoveryHandler(uc DiscoveryManager, log *slog.Logger) *DiscoveryHandler {
	return &DiscoveryHandler{
		uc:  uc,
		log: log,
	}
}

func (h *DiscoveryHandler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

func (h *DiscoveryHandler) respondError(c echo.Context, err error) error {
	if ve, ok := validation.AsErrors(err); ok {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":  ve.Error(),
			"fields": ve.Fields,
		})
	}

	if errors.Is(err, cms.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "content not found"})
	}

	if errors.Is(err, discovery.ErrUnknownPeriod) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid period"})
	}

	return h.handleError(c, err, http.StatusInternalServerError, "internal error")
}

func (h *DiscoveryHandler) bindQuery(c echo.Context) (*DiscoveryQueryRequest, error) {
	var req DiscoveryQueryRequest
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &req); err != nil {
		return nil, err
	}
	if err := validation.Struct(&req); err != nil {
		return nil, err
	}

	return &req, nil
}

func (r *DiscoveryQueryRequest) toQuery() discovery.Query {
	query := discovery.Query{
		Page:  r.Page,
		Limit: r.Limit,
	}
	if r.Category != "" {
		query.Category = &r.Category
	}
	if r.Language != "" {
		query.Language = &r.Language
	}

	return query
}

// Trending handles GET /discovery/trending
// @Summary Get trending content
// @Description Returns recently published content decorated by the configured ranking strategy
// @Tags discovery
// @Produce json
// @Param category query string false "Filter by category"
// @Param language query string false "Filter by language"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 50)"
// @Success 200 {object} rest.DiscoveryResponse
// @Failure 400,500 {object} map[string]string
// @Router /discovery/trending [get]
func (h *DiscoveryHandler) Trending(c echo.Context) error {
	req, err := h.bindQuery(c)
	if err != nil {
		return h.respondBindError(c, err)
	}

	result, err := h.uc.Trending(c.Request().Context(), req.toQuery())
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, NewDiscoveryResponse(result))
}

// Recommended handles GET /discovery/recommended
// @Summary Get recommended content
// @Description Returns recommendation candidates decorated by the configured ranking strategy
// @Tags discovery
// @Produce json
// @Param category query string false "Filter by category"
// @Param language query string false "Filter by language"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 50)"
// @Success 200 {object} rest.DiscoveryResponse
// @Failure 400,500 {object} map[string]string
// @Router /discovery/recommended [get]
func (h *DiscoveryHandler) Recommended(c echo.Context) error {
	req, err := h.bindQuery(c)
	if err != nil {
		return h.respondBindError(c, err)
	}

	result, err := h.uc.Recommended(c.Request().Context(), req.toQuery())
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, NewDiscoveryResponse(result))
}

// Popular handles GET /discovery/popular
// @Summary Get popular content
// @Description Returns popular content within the requested period
// @Tags discovery
// @Produce json
// @Param period query string false "Lookback period" Enums(day, week, month, year, all)
// @Param category query string false "Filter by category"
// @Param language query string false "Filter by language"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 50)"
// @Success 200 {object} rest.DiscoveryResponse
// @Failure 400,500 {object} map[string]string
// @Router /discovery/popular [get]
func (h *DiscoveryHandler) Popular(c echo.Context) error {
	req, err := h.bindQuery(c)
	if err != nil {
		return h.respondBindError(c, err)
	}

	result, err := h.uc.Popular(c.Request().Context(), req.toQuery(), req.Period)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, NewDiscoveryResponse(result))
}

// Related handles GET /discovery/related/:id
// @Summary Get related content
// @Description Returns published content related to the source record; the source itself is excluded
// @Tags discovery
// @Produce json
// @Param id path string true "Source content ID"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 50)"
// @Success 200 {object} rest.DiscoveryResponse
// @Failure 400,404,500 {object} map[string]string
// @Router /discovery/related/{id} [get]
func (h *DiscoveryHandler) Related(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return h.handleError(c, nil, http.StatusBadRequest, "invalid id")
	}

	req, err := h.bindQuery(c)
	if err != nil {
		return h.respondBindError(c, err)
	}

	result, err := h.uc.Related(c.Request().Context(), id, req.toQuery())
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, NewDiscoveryResponse(result))
}

// Recent handles GET /discovery/recent
// @Summary Get recent content
// @Description Returns the newest published content
// @Tags discovery
// @Produce json
// @Param category query string false "Filter by category"
// @Param language query string false "Filter by language"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 50)"
// @Success 200 {object} rest.DiscoveryResponse
// @Failure 400,500 {object} map[string]string
// @Router /discovery/recent [get]
func (h *DiscoveryHandler) Recent(c echo.Context) error {
	req, err := h.bindQuery(c)
	if err != nil {
		return h.respondBindError(c, err)
	}

	result, err := h.uc.Recent(c.Request().Context(), req.toQuery())
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, NewDiscoveryResponse(result))
}

func (h *DiscoveryHandler) respondBindError(c echo.Context, err error) error {
	if _, ok := validation.AsErrors(err); ok {
		return h.respondError(c, err)
	}
	return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
}
