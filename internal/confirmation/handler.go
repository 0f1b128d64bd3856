// File: internal/confirmation/handler.go
package confirmation

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"identity_kit_backend/internal/common"
	"identity_kit_backend/internal/config"
	"identity_kit_backend/internal/metrics"
)

// WebhookTokenHeader carries the shared token the event source presents.
const WebhookTokenHeader = "X-Webhook-Token"

// Handler receives confirmation events over the internal webhook. The
// upstream trigger contract requires the original event echoed back with a
// success status no matter what happened downstream.
type Handler struct {
	service *Service
	cfg     *config.Config
	logger  *zap.Logger
}

// NewHandler creates a new confirmation webhook handler.
func NewHandler(service *Service, cfg *config.Config, logger *zap.Logger) *Handler {
	return &Handler{service: service, cfg: cfg, logger: logger}
}

// RegisterRoutes sets up the internal event routes.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/user-confirmed", h.userConfirmed)
}

func (h *Handler) userConfirmed(c *gin.Context) {
	// Transport-level guard, checked before any event semantics. An empty
	// configured token disables the check (local development).
	if h.cfg.ConfirmationWebhookToken != "" &&
		c.GetHeader(WebhookTokenHeader) != h.cfg.ConfirmationWebhookToken {
		h.logger.Warn("Confirmation webhook called with invalid token", zap.String("ip", c.ClientIP()))
		common.RespondWithError(c, common.ErrUnauthorized)
		return
	}

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.logger.Error("Failed to read confirmation event body", zap.Error(err))
		c.Data(http.StatusOK, "application/json", []byte("{}"))
		return
	}

	var ev Event
	if err := json.Unmarshal(raw, &ev); err != nil {
		// Same treatment as an event missing attributes: log, count, ack.
		h.logger.Error("Malformed confirmation event", zap.Error(err))
		h.service.metrics.ConfirmationEvents.WithLabelValues(metrics.OutcomeMalformed).Inc()
	} else {
		h.service.Process(c.Request.Context(), ev)
	}

	// Echo the original event back unconditionally.
	if len(raw) == 0 {
		raw = []byte("{}")
	}
	c.Data(http.StatusOK, "application/json", raw)
}
