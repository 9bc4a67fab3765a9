package middleware

import (
	"context"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fintrack-backend-go/internal/core"
)

// IdentityKey is the Gin context key under which the verified caller
// identity is stored.
const IdentityKey = "identity"

// errorResponse mirrors api.ErrorResponse locally to avoid an import cycle.
type errorResponse struct {
	Error string `json:"error"`
}

// TokenVerifier is the slice of the Firebase Auth client the middleware
// needs. *auth.Client satisfies it; tests substitute their own.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// AuthMiddleware verifies Firebase ID tokens and decodes the caller identity
// once at the boundary.
type AuthMiddleware struct {
	verifier TokenVerifier
	logger   *zap.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware instance.
func NewAuthMiddleware(verifier TokenVerifier, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, logger: logger}
}

// VerifyToken authenticates the request. On success a core.Identity is
// placed in the context; any absent or unverifiable token aborts with the
// uniform 401 body. Profile claims (email, name, birthdate) are optional and
// default to empty strings; only user auto-provisioning consults them.
func (m *AuthMiddleware) VerifyToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: "Unauthorized access"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: "Unauthorized access"})
			return
		}

		token, err := m.verifier.VerifyIDToken(c.Request.Context(), parts[1])
		if err != nil {
			// Verification detail is logged server-side only.
			m.logger.Warn("ID token verification failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: "Unauthorized access"})
			return
		}

		identity := core.Identity{Subject: token.UID}
		if email, ok := token.Claims["email"].(string); ok {
			identity.Email = email
		}
		if name, ok := token.Claims["name"].(string); ok {
			identity.DisplayName = name
		}
		if birthdate, ok := token.Claims["birthdate"].(string); ok {
			identity.Birthday = birthdate
		}
		c.Set(IdentityKey, identity)

		c.Next()
	}
}
