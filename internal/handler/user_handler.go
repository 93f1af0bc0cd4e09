package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/raimonvibe/email-authentication-tutorial/internal/pkg/response"
	"github.com/raimonvibe/email-authentication-tutorial/internal/service"
)

type UserHandler struct {
	auth *service.AuthService
}

func NewUserHandler(auth *service.AuthService) *UserHandler {
	return &UserHandler{auth: auth}
}

func (h *UserHandler) Dashboard(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		response.Detail(c, http.StatusUnauthorized, "Could not validate credentials")
		return
	}
	response.Success(c, gin.H{
		"message": fmt.Sprintf("Welcome to your dashboard, %s!", account.Email),
		"user":    account.Public(),
	})
}

// List is intentionally unauthenticated to match the original contract, even
// though it discloses account existence and verification state.
func (h *UserHandler) List(c *gin.Context) {
	users := h.auth.ListAccounts(c.Request.Context())
	response.Success(c, gin.H{
		"users": users,
		"total": len(users),
	})
}
