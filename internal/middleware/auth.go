package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/raimonvibe/email-authentication-tutorial/internal/pkg/response"
	"github.com/raimonvibe/email-authentication-tutorial/internal/service"
)

// ContextAccountKey holds the resolved account in the gin context.
const ContextAccountKey = "current_account"

// credentialsDetail is the single message for every authentication failure:
// missing header, bad signature, expired token, unknown subject. Callers
// must not learn which check failed.
const credentialsDetail = "Could not validate credentials"

// BearerAuth extracts the bearer token and resolves the account through the
// auth service. Any failure aborts with the collapsed 401 detail.
func BearerAuth(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Detail(c, http.StatusUnauthorized, credentialsDetail)
			c.Abort()
			return
		}
		account, err := auth.ResolveCurrentUser(c.Request.Context(), parts[1])
		if err != nil {
			response.Detail(c, http.StatusUnauthorized, credentialsDetail)
			c.Abort()
			return
		}
		c.Set(ContextAccountKey, account)
		c.Next()
	}
}
