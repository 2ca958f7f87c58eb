package routes

import (
	"tagalong/internal/handlers"
	"tagalong/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up routes for authentication and profiles
func SetupAuthRoutes(r *gin.RouterGroup, authHandler *handlers.AuthHandler, jwtSecret string) {
	auth := r.Group("/auth")
	{
		auth.POST("/signin", authHandler.SignIn)
		auth.POST("/signup", authHandler.SignUp)
	}

	me := r.Group("/me")
	me.Use(middleware.AuthRequired(jwtSecret))
	{
		me.GET("", authHandler.Me)
	}

	users := r.Group("/users")
	{
		users.GET("/:id", authHandler.GetUser)
	}
}
