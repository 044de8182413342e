package http

import (
	"time"

	"github.com/feedbackhq/feedbackhq/internal/config"
	"github.com/feedbackhq/feedbackhq/internal/http/handlers"
	"github.com/feedbackhq/feedbackhq/internal/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRouter builds the gin engine with middleware and all API routes.
func NewRouter(conn *gorm.DB, cfg config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(RequestLogMiddleware())
	r.Use(cors.New(corsConfig(cfg.Server.AllowedOrigins)))

	RegisterRoutes(r, conn, cfg.JWT)
	return r
}

// RegisterRoutes wires handlers onto the engine.
func RegisterRoutes(r *gin.Engine, conn *gorm.DB, jwtCfg config.JWTConfig) {
	if r == nil || conn == nil {
		return
	}

	adminStore := store.NewAdminStore(conn)
	feedbackStore := store.NewFeedbackStore(conn)

	healthHandler := handlers.NewHealthHandler(conn)
	r.GET("/health", healthHandler.Health)

	configHandler := handlers.NewConfigHandler(conn)
	r.GET("/api/config", configHandler.GetPublic)

	authHandler := handlers.NewAuthHandler(adminStore, jwtCfg)
	auth := r.Group("/api/auth")
	auth.POST("/login", authHandler.Login)

	authProtected := auth.Group("")
	authProtected.Use(AdminAuthMiddleware(jwtCfg))
	authProtected.POST("/register", authHandler.Register)
	authProtected.GET("/admins", authHandler.ListAdmins)

	feedbackHandler := handlers.NewFeedbackHandler(feedbackStore)
	feedback := r.Group("/api/feedback")
	feedback.POST("", feedbackHandler.Submit)
	feedback.GET("", AdminAuthMiddleware(jwtCfg), feedbackHandler.List)

	statsHandler := handlers.NewStatsHandler(feedbackStore)
	r.GET("/api/stats", AdminAuthMiddleware(jwtCfg), statsHandler.Get)

	r.PUT("/api/config", AdminAuthMiddleware(jwtCfg), configHandler.Update)
}

// corsConfig builds the CORS policy from the configured origins.
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", RequestIDHeader},
		ExposeHeaders:    []string{RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	allowAll := len(origins) == 0
	for _, origin := range origins {
		if origin == "*" {
			allowAll = true
			break
		}
	}
	if allowAll {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
