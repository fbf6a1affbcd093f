package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/lfl-logistics/onboarding-service/internal/models"
	"github.com/lfl-logistics/onboarding-service/internal/services"
	"github.com/lfl-logistics/onboarding-service/internal/utils"
)

type HandlerManager struct {
	authHandler         *AuthHandler
	registrationHandler *RegistrationHandler
	onboardingHandler   *OnboardingHandler
	profileHandler      *ProfileHandler
	uploadHandler       *UploadHandler
	adminHandler        *AdminHandler
	authMiddleware      *JWTAuthMiddleware
	serviceManager      services.ServiceManager
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		authHandler:         NewAuthHandler(serviceManager.Auth(), logger),
		registrationHandler: NewRegistrationHandler(serviceManager.Registration(), logger),
		onboardingHandler:   NewOnboardingHandler(serviceManager.Onboarding(), logger),
		profileHandler:      NewProfileHandler(serviceManager.Profile(), logger),
		uploadHandler:       NewUploadHandler(serviceManager.Upload(), logger),
		adminHandler:        NewAdminHandler(serviceManager.Admin(), serviceManager.Export(), logger),
		authMiddleware:      NewJWTAuthMiddleware(serviceManager.Auth()),
		serviceManager:      serviceManager,
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1")
	{
		// Public routes: login, applications and the wizard run before
		// any account exists.
		v1.POST("/auth/login", hm.authHandler.Login)

		v1.POST("/carriers/onboard", hm.registrationHandler.OnboardCarrier)
		v1.POST("/shippers/onboard", hm.registrationHandler.OnboardShipper)

		onboarding := v1.Group("/onboarding")
		{
			onboarding.POST("/start", hm.onboardingHandler.StartSession)
			onboarding.GET("/:id", hm.onboardingHandler.GetSession)
			onboarding.POST("/:id/next", hm.onboardingHandler.NextStep)
			onboarding.POST("/:id/back", hm.onboardingHandler.BackStep)
		}

		// Authenticated routes
		authed := v1.Group("")
		authed.Use(hm.authMiddleware.AuthMiddleware())
		{
			carriers := authed.Group("/carriers")
			carriers.Use(hm.authMiddleware.RequireRoleMiddleware(models.RoleCarrier))
			{
				carriers.GET("/me", hm.profileHandler.GetCarrierProfile)
				carriers.PATCH("/me", hm.profileHandler.UpdateCarrierProfile)
			}

			shippers := authed.Group("/shippers")
			shippers.Use(hm.authMiddleware.RequireRoleMiddleware(models.RoleShipper))
			{
				shippers.GET("/me", hm.profileHandler.GetShipperProfile)
				shippers.PATCH("/me", hm.profileHandler.UpdateShipperProfile)
			}

			authed.POST("/uploads", hm.uploadHandler.Upload)

			admin := authed.Group("/admin")
			admin.Use(hm.authMiddleware.RequireRoleMiddleware(models.RoleAdmin))
			{
				admin.GET("/data", hm.adminHandler.GetDashboardData)
				admin.PATCH("/:type/:id", hm.adminHandler.SetStatus)
				admin.DELETE("/:type/:id", hm.adminHandler.DeleteAccount)
				admin.GET("/:type/:id/documents", hm.adminHandler.GetDocumentReview)
				admin.GET("/export", hm.adminHandler.ExportAccounts)
			}
		}
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		if err := hm.serviceManager.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(503, gin.H{
				"status":  "unhealthy",
				"service": "onboarding-service",
				"error":   err.Error(),
			})
			return
		}
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "onboarding-service",
		})
	})
}
