package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/raimonvibe/email-authentication-tutorial/internal/pkg/response"
	"github.com/raimonvibe/email-authentication-tutorial/internal/service"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type signupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type verifyEmailRequest struct {
	Email            string `json:"email" binding:"required,email"`
	VerificationCode string `json:"verification_code" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid request")
		return
	}
	result, err := h.auth.Signup(c.Request.Context(), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, result)
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req verifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid request")
		return
	}
	if err := h.auth.VerifyEmail(c.Request.Context(), strings.TrimSpace(req.Email), strings.TrimSpace(req.VerificationCode)); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Email verified successfully! You can now log in."})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid request")
		return
	}
	result, err := h.auth.Login(c.Request.Context(), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, result)
}
