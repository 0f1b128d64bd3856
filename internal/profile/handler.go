// File: internal/profile/handler.go
package profile

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"identity_kit_backend/internal/common"
)

// Handler serves the authenticated profile read endpoint.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new profile handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes sets up the profile routes on an authenticated group.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/me", h.me)
}

func (h *Handler) me(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == "" {
		// The authorizer should have rejected the request already; this
		// guards against a route registered without it.
		h.logger.Warn("Missing caller identity on authenticated route", zap.String("path", c.Request.URL.Path))
		common.RespondWithError(c, common.ErrUnauthorized)
		return
	}

	p, err := h.service.GetOwnProfile(c.Request.Context(), userID)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}
