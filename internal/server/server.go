package server

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/eventos-app/backend/config"
	"github.com/eventos-app/backend/internal/handlers"
	"github.com/eventos-app/backend/internal/middleware"
)

func Start() error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}
	logger.Info("connected to mongodb", zap.String("database", cfg.DatabaseName))

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	SetupRoutes(r, db)

	logger.Info("server listening", zap.String("port", cfg.Port))
	return r.Run(":" + cfg.Port)
}

func SetupRoutes(r *gin.Engine, db *mongo.Database) {
	r.Use(middleware.DatabaseMiddleware(db))

	api := r.Group("/api")

	user := api.Group("/user")
	{
		user.POST("", handlers.CreateUser)
		user.POST("/auth/login", handlers.Login)
		user.POST("/auth/login-backoffice", handlers.LoginBackoffice)
		user.POST("/auth/first-admin", handlers.CreateFirstAdmin)
		user.POST("/admin/create", handlers.CreateAdminUser)

		user.GET("", handlers.ListUsers)
		user.GET("/all/inactive-included", handlers.ListUsersWithInactive)
		user.GET("/:id", handlers.GetUser)
		user.GET("/username/:username", handlers.GetUserByUsername)

		user.PUT("/:id", handlers.UpdateUser)
		user.PUT("/username/:username", handlers.UpdateUserByUsername)

		user.PATCH("/:id/disable", handlers.DisableUser)
		user.PATCH("/username/:username/disable", handlers.DisableUserByUsername)
		user.PATCH("/:id/reactivate", handlers.ReactivateUser)
		user.PATCH("/username/:username/reactivate", handlers.ReactivateUserByUsername)
		user.PATCH("/:id/make-admin", handlers.MakeUserAdmin)
		user.PATCH("/:id/remove-admin", handlers.RemoveUserAdmin)

		user.PUT("/:id/events/:eventId", handlers.AddEventToUser)
		user.DELETE("/:id/events/:eventId", handlers.RemoveEventFromUser)

		user.DELETE("/hard/:id", handlers.DeleteUser)
		user.DELETE("/hard/username/:username", handlers.DeleteUserByUsername)
	}

	event := api.Group("/event")
	{
		event.POST("", handlers.CreateEvent)
		event.GET("", handlers.ListEvents)
		event.GET("/all/inactive-included", handlers.ListEventsWithInactive)
		event.GET("/:id", handlers.GetEvent)
		event.GET("/:id/participants", handlers.GetEventParticipants)

		event.PUT("/:id", handlers.UpdateEvent)
		event.PATCH("/:id/disable", handlers.DisableEvent)
		event.PATCH("/:id/reactivate", handlers.ReactivateEvent)

		event.PUT("/:id/user/:userId", handlers.AddUserToEvent)
		event.DELETE("/:id/user/:userId", handlers.RemoveUserFromEvent)

		event.DELETE("/hard/:id", handlers.DeleteEvent)
	}

	business := api.Group("/business")
	{
		business.POST("", handlers.CreateBusiness)
		business.GET("", handlers.ListBusinesses)
		business.GET("/all/inactive-included", handlers.ListBusinessesWithInactive)
		business.GET("/:id", handlers.GetBusiness)

		business.PUT("/:id", handlers.UpdateBusiness)
		business.PATCH("/:id/disable", handlers.DisableBusiness)
		business.PATCH("/:id/reactivate", handlers.ReactivateBusiness)

		business.PUT("/:id/event/:eventId", handlers.AddEventToBusiness)
		business.DELETE("/:id/event/:eventId", handlers.RemoveEventFromBusiness)
		business.PUT("/:id/manager/:managerId", handlers.AddManagerToBusiness)
		business.DELETE("/:id/manager/:managerId", handlers.RemoveManagerFromBusiness)

		business.DELETE("/hard/:id", handlers.DeleteBusiness)
	}
}
