package http

import (
	"github.com/amora-app/amora-backend/internal/delivery/http/handler"
	"github.com/amora-app/amora-backend/internal/delivery/http/middleware"
	"github.com/amora-app/amora-backend/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type Router struct {
	authHandler         *handler.AuthHandler
	profileHandler      *handler.ProfileHandler
	preferencesHandler  *handler.PreferencesHandler
	photoHandler        *handler.PhotoHandler
	discoverHandler     *handler.DiscoverHandler
	matchHandler        *handler.MatchHandler
	messageHandler      *handler.MessageHandler
	blockHandler        *handler.BlockHandler
	notificationHandler *handler.NotificationHandler
	authMiddleware      *middleware.AuthMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	preferencesHandler *handler.PreferencesHandler,
	photoHandler *handler.PhotoHandler,
	discoverHandler *handler.DiscoverHandler,
	matchHandler *handler.MatchHandler,
	messageHandler *handler.MessageHandler,
	blockHandler *handler.BlockHandler,
	notificationHandler *handler.NotificationHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		authHandler:         authHandler,
		profileHandler:      profileHandler,
		preferencesHandler:  preferencesHandler,
		photoHandler:        photoHandler,
		discoverHandler:     discoverHandler,
		matchHandler:        matchHandler,
		messageHandler:      messageHandler,
		blockHandler:        blockHandler,
		notificationHandler: notificationHandler,
		authMiddleware:      authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	registerValidators()

	router := gin.Default()

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/session", r.authHandler.CreateSession)
			auth.POST("/logout", r.authMiddleware.RequireAuth(), r.authHandler.Logout)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
		}

		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			profile := protected.Group("/profile")
			{
				profile.POST("", r.profileHandler.Create)
				profile.GET("/me", r.profileHandler.GetMe)
				profile.PUT("/me", r.profileHandler.UpdateMe)
				profile.POST("/me/complete", r.profileHandler.Complete)
				profile.GET("/:profile_id", r.profileHandler.GetByID)
			}

			preferences := protected.Group("/preferences")
			{
				preferences.GET("", r.preferencesHandler.Get)
				preferences.PUT("", r.preferencesHandler.Update)
			}

			photos := protected.Group("/photos")
			{
				photos.POST("", r.photoHandler.Upload)
				photos.GET("", r.photoHandler.List)
				photos.PUT("/:photo_id/primary", r.photoHandler.SetPrimary)
				photos.DELETE("/:photo_id", r.photoHandler.Delete)
			}

			protected.GET("/discover", r.discoverHandler.Discover)

			matches := protected.Group("/matches")
			{
				matches.GET("", r.matchHandler.List)
				matches.POST("/like/:profile_id", r.matchHandler.Like)
				matches.POST("/pass/:profile_id", r.matchHandler.Pass)
				matches.POST("/:match_id/messages", r.messageHandler.Send)
				matches.GET("/:match_id/messages", r.messageHandler.List)
			}

			protected.PUT("/messages/:message_id/status", r.messageHandler.UpdateStatus)

			blocks := protected.Group("/blocks")
			{
				blocks.GET("", r.blockHandler.List)
				blocks.POST("/:profile_id", r.blockHandler.Block)
				blocks.DELETE("/:profile_id", r.blockHandler.Unblock)
			}

			notifications := protected.Group("/notifications")
			{
				notifications.GET("", r.notificationHandler.List)
				notifications.PUT("/:notification_id/read", r.notificationHandler.MarkRead)
			}
		}
	}

	return router
}

// registerValidators adds the gender tag used by profile and
// preference request bindings.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("gender", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for _, g := range domain.Genders {
			if value == g {
				return true
			}
		}
		return false
	})
}
