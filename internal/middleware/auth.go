// File: internal/middleware/auth.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"identity_kit_backend/internal/common"
	"identity_kit_backend/internal/provider"
)

// AuthMiddleware creates the transport authorizer: it validates the bearer
// token with the identity provider and stores the subject user ID in the
// request context. Handlers behind it trust the ID as-is.
func AuthMiddleware(providerService provider.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := common.GetTokenFromContext(c)
		if token == "" {
			logger.Debug("Authorization header missing or malformed")
			common.RespondWithError(c, common.ErrUnauthorized)
			return
		}

		userID, err := providerService.VerifyIDToken(c.Request.Context(), token)
		if err != nil {
			logger.Warn("Token validation failed", zap.Error(err))
			common.RespondWithError(c, common.ErrUnauthorized)
			return
		}

		c.Set(common.UserIDKey, userID)

		logger.Debug("User authenticated successfully", zap.String("userID", userID))

		c.Next()
	}
}
