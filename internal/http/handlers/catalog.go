package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/abcd-backend/internal/domain/taxonomy"
	"github.com/yungbote/abcd-backend/internal/http/response"
	"github.com/yungbote/abcd-backend/internal/modules/filtering"
	"github.com/yungbote/abcd-backend/internal/platform/apierr"
	"github.com/yungbote/abcd-backend/internal/services"
)

type CatalogHandler struct {
	catalog services.CatalogService
}

func NewCatalogHandler(catalog services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// GET /api/catalog/:kind?topic_ids=1,2&outcome_ids=5&status=published&q=sleep&page=1&limit=20
func (h *CatalogHandler) List(c *gin.Context) {
	kind, bag, ok := h.parseRequest(c)
	if !ok {
		return
	}
	params := services.ListParams{
		Status: c.Query("status"),
		Q:      c.Query("q"),
	}
	var err error
	if params.Page, err = intQuery(c, "page"); err != nil {
		response.RespondFromError(c, err)
		return
	}
	if params.Limit, err = intQuery(c, "limit"); err != nil {
		response.RespondFromError(c, err)
		return
	}

	page, err := h.catalog.List(c.Request.Context(), kind, bag, params)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, "", page)
}

// GET /api/catalog/:kind/ids
func (h *CatalogHandler) ResolveIDs(c *gin.Context) {
	kind, bag, ok := h.parseRequest(c)
	if !ok {
		return
	}
	ids, err := h.catalog.ResolveIDs(c.Request.Context(), kind, bag)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, "", gin.H{"kind": kind, "ids": ids, "count": len(ids)})
}

// GET /api/catalog/:kind/:id
func (h *CatalogHandler) Get(c *gin.Context) {
	kind, ok := parseKind(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", fmt.Errorf("invalid id %q", c.Param("id")))
		return
	}
	item, err := h.catalog.Get(c.Request.Context(), kind, id)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, "", item)
}

// GET /api/facets
func (h *CatalogHandler) Facets(c *gin.Context) {
	response.RespondOK(c, "", h.catalog.Facets())
}

func (h *CatalogHandler) parseRequest(c *gin.Context) (taxonomy.Kind, filtering.Bag, bool) {
	kind, ok := parseKind(c)
	if !ok {
		return "", nil, false
	}
	bag, err := filtering.ParseQuery(c.Request.URL.Query(), h.catalog.Registries().Knows)
	if err != nil {
		response.RespondFromError(c, err)
		return "", nil, false
	}
	return kind, bag, true
}

func parseKind(c *gin.Context) (taxonomy.Kind, bool) {
	kind, ok := taxonomy.ParseKind(c.Param("kind"))
	if !ok {
		response.RespondFromError(c, fmt.Errorf("%w: %q", filtering.ErrUnknownKind, c.Param("kind")))
		return "", false
	}
	return kind, true
}

func intQuery(c *gin.Context, name string) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, apierr.BadRequest("invalid_request", fmt.Errorf("%s must be a non-negative integer", name))
	}
	return n, nil
}
