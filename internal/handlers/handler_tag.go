package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/median-app/median-backend/internal/core/ports/services"
	"github.com/median-app/median-backend/internal/dto"
	"github.com/median-app/median-backend/internal/middleware"
)

// tagHandler handles tag related requests.
type tagHandler struct {
	tagService portssvc.TagSvcFacade
}

// registerTagRoutes sets up the routes for tags.
func registerTagRoutes(rg *gin.RouterGroup, svc *portssvc.ServiceContainer) {
	h := &tagHandler{tagService: svc.Tag}

	tags := rg.Group("/tags")
	{
		tags.GET("", h.listTags)
	}
}

// listTags godoc
// @Summary List all tags
// @Tags tags
// @Produce json
// @Success 200 {array} dto.TagResponse
// @Router /tags [get]
func (h *tagHandler) listTags(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tags, err := h.tagService.ListTags(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list tags", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to fetch tags"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTagResponses(tags))
}
