// File: internal/auth/handler.go
package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"identity_kit_backend/internal/common"
	"identity_kit_backend/internal/metrics"
	"identity_kit_backend/internal/provider"
)

// Handler struct holds dependencies for the auth handlers.
type Handler struct {
	providerService provider.Service
	metrics         *metrics.Metrics
	logger          *zap.Logger
}

// NewHandler creates a new auth handler.
func NewHandler(providerService provider.Service, m *metrics.Metrics, logger *zap.Logger) *Handler {
	return &Handler{
		providerService: providerService,
		metrics:         m,
		logger:          logger,
	}
}

// RegisterRoutes sets up the unauthenticated auth routes.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/signup", h.signup)
	router.POST("/login", h.login)
	router.POST("/verify-email", h.verifyEmail)
}

func (h *Handler) signup(c *gin.Context) {
	var req SignupRequest
	if !h.bind(c, &req, "Signup") {
		return
	}

	userID, err := h.providerService.Signup(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondMapped(c, "signup", err, MapSignupError(err))
		return
	}

	c.JSON(http.StatusCreated, SignupResponse{
		UserID:  userID,
		Message: "User registered successfully. Please check your email to verify your account.",
	})
}

func (h *Handler) login(c *gin.Context) {
	var req LoginRequest
	if !h.bind(c, &req, "Login") {
		return
	}

	bundle, err := h.providerService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondMapped(c, "login", err, MapLoginError(err))
		return
	}

	c.JSON(http.StatusOK, bundle)
}

func (h *Handler) verifyEmail(c *gin.Context) {
	var req VerifyEmailRequest
	if !h.bind(c, &req, "Verify email") {
		return
	}

	if err := h.providerService.Confirm(c.Request.Context(), req.Email, req.Code); err != nil {
		h.respondMapped(c, "confirm", err, MapConfirmError(err))
		return
	}

	c.JSON(http.StatusOK, MessageResponse{
		Message: "Email verified successfully. You can now log in.",
	})
}

// bind decodes and validates the request body, answering 400 with per-field
// detail on failure.
func (h *Handler) bind(c *gin.Context, req interface{}, opName string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.logger.Warn(opName+": Invalid request body", zap.Error(err))
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return false
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return false
	}
	return true
}

// respondMapped sends the mapped outward error. Provider-rejected failures
// are expected traffic and logged at warn; anything that maps to a 500 is a
// downstream fault and logged at error level with full context.
func (h *Handler) respondMapped(c *gin.Context, op string, err error, apiErr *common.APIError) {
	kind := provider.KindOf(err)
	h.metrics.ProviderErrors.WithLabelValues(op, string(kind)).Inc()

	if apiErr.StatusCode >= http.StatusInternalServerError {
		h.logger.Error("Identity provider call failed",
			zap.String("operation", op),
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
	} else {
		h.logger.Warn("Identity provider rejected request",
			zap.String("operation", op),
			zap.String("kind", string(kind)),
			zap.String("outward_code", apiErr.Code),
		)
	}

	common.RespondWithError(c, apiErr)
}
