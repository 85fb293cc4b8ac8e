package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/abcd-backend/internal/http/response"
	"github.com/yungbote/abcd-backend/internal/platform/apierr"
	"github.com/yungbote/abcd-backend/internal/services"
)

type LinkHandler struct {
	links services.LinkService
}

func NewLinkHandler(links services.LinkService) *LinkHandler {
	return &LinkHandler{links: links}
}

// POST /api/admin/links/:association
// body: { "source_id": 1, "target_id": 2, "target_column": "sub_topic_id" }
func (h *LinkHandler) Link(c *gin.Context) {
	var req services.LinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondFromError(c, apierr.BadRequest("invalid_request", err))
		return
	}
	res, err := h.links.Link(c.Request.Context(), c.Param("association"), req)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	if res.Changed {
		response.RespondCreated(c, "linked", res)
		return
	}
	response.RespondOK(c, "already linked", res)
}

// DELETE /api/admin/links/:association
func (h *LinkHandler) Unlink(c *gin.Context) {
	var req services.LinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondFromError(c, apierr.BadRequest("invalid_request", err))
		return
	}
	res, err := h.links.Unlink(c.Request.Context(), c.Param("association"), req)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, "unlinked", res)
}
