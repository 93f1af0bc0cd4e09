package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/raimonvibe/email-authentication-tutorial/internal/middleware"
	"github.com/raimonvibe/email-authentication-tutorial/internal/pkg/response"
	"github.com/raimonvibe/email-authentication-tutorial/internal/service"
)

type RouterDeps struct {
	Auth  *AuthHandler
	Users *UserHandler
	// Service backs the bearer middleware on protected routes.
	Service *service.AuthService
}

func RegisterRoutes(api *gin.RouterGroup, deps RouterDeps) {
	api.GET("/healthz", Healthz)

	api.POST("/api/signup", deps.Auth.Signup)
	api.POST("/api/verify-email", deps.Auth.VerifyEmail)
	api.POST("/api/login", deps.Auth.Login)
	api.GET("/api/users", deps.Users.List)

	authGroup := api.Group("/api")
	authGroup.Use(middleware.BearerAuth(deps.Service))
	authGroup.GET("/dashboard", deps.Users.Dashboard)
}

func Healthz(c *gin.Context) {
	response.Success(c, gin.H{"status": "ok"})
}
