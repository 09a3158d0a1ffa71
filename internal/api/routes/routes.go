package routes

import (
	"log"

	"crm-portal-backend/internal/api/handlers"
	"crm-portal-backend/internal/api/middleware"
	"crm-portal-backend/internal/auth"
	"crm-portal-backend/internal/config"
	"crm-portal-backend/internal/notify"
	"crm-portal-backend/internal/repository"
	"crm-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, invalidator notify.Invalidator) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	workspaceRepo := repository.NewWorkspaceRepository(db)
	userRepo := repository.NewUserRepository(db)
	businessRepo := repository.NewBusinessRepository(db)
	contactRepo := repository.NewContactRepository(db)
	jobAppRepo := repository.NewJobApplicationRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	emailRepo := repository.NewInboundEmailRepository(db)

	// Initialize services
	businessService := service.NewBusinessService(businessRepo, validator, invalidator)
	contactService := service.NewContactService(contactRepo, businessRepo, validator, invalidator)
	ticketService := service.NewTicketService(ticketRepo, businessRepo, jobAppRepo, userRepo, validator, invalidator)
	activityService := service.NewActivityService(activityRepo, businessRepo, contactRepo, ticketRepo, jobAppRepo, validator, invalidator)
	emailService := service.NewEmailService(emailRepo, contactRepo, businessRepo, validator, invalidator)
	feedService := service.NewFeedService(activityRepo, ticketRepo, emailRepo)
	userService := service.NewUserService(userRepo, workspaceRepo)

	// Initialize auth configuration and services
	authConfig, err := auth.LoadAuthConfig("config/auth.yaml")
	if err != nil {
		log.Printf("Warning: Failed to load auth config: %v", err)
		authConfig = nil
	}

	var authMiddleware *auth.AuthMiddleware
	if authConfig != nil {
		authService, err := auth.NewAuthService(authConfig)
		if err != nil {
			log.Printf("Warning: Failed to initialize auth service: %v", err)
		} else {
			authMiddleware = auth.NewAuthMiddleware(authService)
		}
	}

	resolver := auth.NewScopeResolver(userRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	businessHandler := handlers.NewBusinessHandler(businessService, resolver)
	contactHandler := handlers.NewContactHandler(contactService, resolver)
	ticketHandler := handlers.NewTicketHandler(ticketService, resolver)
	activityHandler := handlers.NewActivityHandler(activityService, resolver)
	emailHandler := handlers.NewEmailHandler(emailService, resolver)
	feedHandler := handlers.NewFeedHandler(feedService, resolver)
	userHandler := handlers.NewUserHandler(userService, resolver)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")

	// Apply auth middleware to require authentication for all API endpoints
	if authMiddleware != nil {
		v1.Use(authMiddleware.RequireAuth())
	}

	{
		v1.GET("/me", userHandler.Me)

		// Business routes
		businesses := v1.Group("/businesses")
		{
			businesses.GET("", businessHandler.ListBusinesses)
			businesses.POST("", businessHandler.CreateBusiness)
			businesses.GET("/stages", businessHandler.GetStageCatalog)
			businesses.GET("/:id", businessHandler.GetBusiness)
			businesses.PUT("/:id", businessHandler.UpdateBusiness)
			businesses.PUT("/:id/stage", businessHandler.UpdateBusinessStage)
			businesses.DELETE("/:id", businessHandler.DeleteBusiness)
			businesses.GET("/:id/contacts", contactHandler.ListContacts)
			businesses.POST("/:id/contacts", contactHandler.CreateContact)
			businesses.GET("/:id/activities", activityHandler.ListActivitiesByBusiness)
		}

		// Contact routes
		contacts := v1.Group("/contacts")
		{
			contacts.PUT("/:id", contactHandler.UpdateContact)
			contacts.DELETE("/:id", contactHandler.DeleteContact)
		}

		// Ticket routes
		tickets := v1.Group("/tickets")
		{
			tickets.GET("", ticketHandler.ListTickets)
			tickets.POST("", ticketHandler.CreateTicket)
			tickets.GET("/:id", ticketHandler.GetTicket)
			tickets.PUT("/:id", ticketHandler.UpdateTicket)
			tickets.PUT("/:id/status", ticketHandler.UpdateTicketStatus)
			tickets.PUT("/:id/assignee", ticketHandler.AssignTicket)
			tickets.DELETE("/:id", ticketHandler.DeleteTicket)
			tickets.GET("/:id/comments", ticketHandler.ListTicketComments)
			tickets.POST("/:id/comments", ticketHandler.AddTicketComment)
			tickets.GET("/:id/activities", activityHandler.ListActivitiesByTicket)
		}

		// Activity routes
		activities := v1.Group("/activities")
		{
			activities.POST("", activityHandler.CreateActivity)
			activities.GET("/upcoming", activityHandler.UpcomingActivities)
			activities.POST("/:id/complete", activityHandler.CompleteActivity)
		}

		// Email routes
		emails := v1.Group("/emails")
		{
			emails.GET("", emailHandler.ListEmails)
			emails.POST("", emailHandler.IngestEmail)
			emails.GET("/:id", emailHandler.GetEmail)
			emails.POST("/:id/associate", emailHandler.AssociateEmail)
			emails.PUT("/:id/association", emailHandler.ManualAssociateEmail)
		}

		// Feed routes
		feed := v1.Group("/feed")
		{
			feed.GET("", feedHandler.GetFeed)
			feed.GET("/badges", feedHandler.GetBadgeCounts)
		}
	}

	return router
}
