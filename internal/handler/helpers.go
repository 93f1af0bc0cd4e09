package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/raimonvibe/email-authentication-tutorial/internal/middleware"
	"github.com/raimonvibe/email-authentication-tutorial/internal/model"
	appErr "github.com/raimonvibe/email-authentication-tutorial/internal/pkg/errors"
	"github.com/raimonvibe/email-authentication-tutorial/internal/pkg/response"
)

func currentAccount(c *gin.Context) (model.Account, bool) {
	value, ok := c.Get(middleware.ContextAccountKey)
	if !ok {
		return model.Account{}, false
	}
	account, ok := value.(model.Account)
	return account, ok
}

// handleError is the single place domain errors become status codes and
// {"detail": ...} bodies. Unexpected errors are logged and reported with a
// generic detail so internal error text never reaches the client.
func handleError(c *gin.Context, err error) {
	switch {
	case err == nil:
		return
	case errors.Is(err, appErr.ErrDuplicateAccount):
		response.Detail(c, http.StatusBadRequest, "User with this email already exists")
	case errors.Is(err, appErr.ErrWeakPassword):
		response.Detail(c, http.StatusBadRequest, "Password must be at least 6 characters long")
	case errors.Is(err, appErr.ErrEmailDelivery):
		response.Detail(c, http.StatusBadGateway, "Failed to send verification email")
	case errors.Is(err, appErr.ErrNotFound):
		response.Detail(c, http.StatusNotFound, "User not found")
	case errors.Is(err, appErr.ErrAlreadyVerified):
		response.Detail(c, http.StatusBadRequest, "Email already verified")
	case errors.Is(err, appErr.ErrInvalidCode):
		response.Detail(c, http.StatusBadRequest, "Invalid verification code")
	case errors.Is(err, appErr.ErrInvalidCredentials):
		response.Detail(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, appErr.ErrNotVerified):
		response.Detail(c, http.StatusBadRequest, "Please verify your email before logging in")
	case errors.Is(err, appErr.ErrUnauthorized):
		response.Detail(c, http.StatusUnauthorized, "Could not validate credentials")
	case errors.Is(err, appErr.ErrInvalid):
		response.Detail(c, http.StatusBadRequest, "Invalid request")
	default:
		requestID, _ := c.Get("request_id")
		logutil.GetLogger(c.Request.Context()).Error("unexpected handler error",
			zap.Any("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		response.Detail(c, http.StatusInternalServerError, "Internal server error")
	}
}
