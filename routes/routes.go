package routes

import (
	"submitease-api/controllers"
	"submitease-api/middleware"
	"submitease-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			public.POST("/register", controllers.Register)
			public.POST("/users", controllers.Register) // legacy SPA alias
			public.POST("/login", controllers.Login)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "SubmitEase API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("/refresh", controllers.RefreshToken)
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/profile", controllers.UpdateProfile)
			protected.PUT("/change-password", controllers.ChangePassword)

			// User directory and invitations
			protected.GET("/users/emails", controllers.GetUserEmails)
			protected.POST("/users/grant-roles",
				middleware.RequireRole(models.RoleConferenceHost), controllers.GrantRoles)

			// Notifications
			protected.GET("/notifications", controllers.GetNotifications)
			protected.PUT("/notifications/:id/read", controllers.MarkNotificationRead)

			// Conferences
			conferences := protected.Group("/conferences")
			{
				conferences.GET("", controllers.GetConferences)
				conferences.GET("/:id", controllers.GetConference)
				conferences.POST("",
					middleware.RequireRole(models.RoleConferenceHost), controllers.CreateConference)
				conferences.PUT("/:id",
					middleware.RequireRole(models.RoleConferenceHost), controllers.UpdateConference)
				conferences.POST("/:id/approve",
					middleware.RequireRole(models.RoleConferenceHost), controllers.ApproveConference)
				conferences.POST("/:id/close",
					middleware.RequireRole(models.RoleConferenceHost), controllers.CloseConference)

				conferences.POST("/:id/publication-chairs",
					middleware.RequireRole(models.RoleConferenceHost), controllers.AssignPublicationChairs)
				conferences.POST("/:id/registration-chairs",
					middleware.RequireRole(models.RoleConferenceHost), controllers.AssignRegistrationChairs)
				conferences.DELETE("/:id/chairs/:user_id",
					middleware.RequireRole(models.RoleConferenceHost), controllers.RemoveConferenceChair)
			}

			// Tracks
			protected.GET("/conference/tracks", controllers.GetTracks)
			protected.POST("/conference/tracks",
				middleware.RequireRole(models.RoleConferenceHost), controllers.CreateTrack)
			protected.POST("/conference/tracks/assign-chairs",
				middleware.RequireRole(models.RoleConferenceHost), controllers.AssignTrackChairs)
			protected.DELETE("/conference/tracks/:id/chairs/:user_id",
				middleware.RequireRole(models.RoleConferenceHost), controllers.RemoveTrackChair)

			// Papers
			protected.GET("/papers", controllers.GetPapers)
			protected.GET("/papers/:id", controllers.GetPaper)
			protected.POST("/savepaper",
				middleware.RequireRole(models.RoleAuthor), controllers.SavePaper)
			protected.POST("/submitpaper",
				middleware.RequireRole(models.RoleAuthor), controllers.SubmitPaper)
			protected.POST("/reorder-authors",
				middleware.RequireRole(models.RoleAuthor), controllers.ReorderAuthors)
			protected.POST("/papers/:id/documents", controllers.UploadPaperDocument)
			protected.POST("/resubmit-revision",
				middleware.RequireRole(models.RoleAuthor), controllers.ResubmitRevision)

			// Reviews
			protected.POST("/assign-reviewer",
				middleware.RequireRole(models.RoleTrackChair, models.RoleConferenceHost), controllers.AssignReviewer)
			protected.POST("/save-review",
				middleware.RequireRole(models.RoleReviewer), controllers.SaveReview)
			protected.POST("/submit-review",
				middleware.RequireRole(models.RoleReviewer), controllers.SubmitReview)
			protected.POST("/get-review",
				middleware.RequireRole(models.RoleReviewer), controllers.GetReview)
			protected.GET("/my-reviews",
				middleware.RequireRole(models.RoleReviewer), controllers.GetMyReviews)
			protected.GET("/papers/:id/reviews",
				middleware.RequireRole(models.RoleTrackChair, models.RoleConferenceHost), controllers.GetPaperReviews)
			protected.POST("/remind-reviewer",
				middleware.RequireRole(models.RoleTrackChair, models.RoleConferenceHost), controllers.RemindReviewer)

			// Decisions
			protected.POST("/final-paper-decision",
				middleware.RequireRole(models.RoleTrackChair, models.RoleConferenceHost), controllers.FinalPaperDecision)
			protected.POST("/bulk-paper-decision",
				middleware.RequireRole(models.RoleTrackChair, models.RoleConferenceHost), controllers.BulkDecision)
			protected.POST("/send-back-paper",
				middleware.RequireRole(models.RoleTrackChair, models.RoleConferenceHost), controllers.SendBackPaper)

			// Post-acceptance verification
			protected.POST("/papers/:id/verify-publication",
				middleware.RequireRole(models.RolePublicationChair, models.RoleConferenceHost), controllers.VerifyPublication)
			protected.POST("/papers/:id/verify-registration",
				middleware.RequireRole(models.RoleRegistrationChair, models.RoleConferenceHost), controllers.VerifyRegistration)
		}
	}
}
