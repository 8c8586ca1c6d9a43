package main

import (
	"fmt"
	"time"

	"slugpress/auth"
	"slugpress/config"
	"slugpress/controllers"
	"slugpress/database"
	"slugpress/repositories"
	"slugpress/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestLogger logs one line per request after it completes.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		logger.Info("Request",
			zap.String("request_id", c.Writer.Header().Get("X-Request-ID")),
			zap.String("client_ip", c.ClientIP()),
			zap.String("method", c.Request.Method),
			zap.Int("status_code", c.Writer.Status()),
			zap.Duration("latency", time.Since(startTime)),
			zap.String("user_agent", c.Request.UserAgent()),
			zap.String("path", c.Request.URL.Path),
		)
	}
}

// RequestID tags every request with a unique id, echoed back to the client.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

func main() {
	config.InitConfig()

	var logger *zap.Logger
	switch config.AppConfig.LogLevel {
	case "debug":
		logger, _ = zap.NewDevelopment()
	default:
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	auth.SetSigningKey([]byte(config.AppConfig.SessionSecret))

	db, err := database.Open(config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}
	if err := database.SeedAdmin(db, config.AppConfig.AdminUsername, config.AppConfig.AdminPassword); err != nil {
		logger.Fatal("Failed to seed admin user", zap.Error(err))
	}

	userRepo := repositories.NewUserRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	userService := services.NewUserService(userRepo)
	articleService := services.NewArticleService(articleRepo)

	userController := controllers.NewUserController(userService, articleService, logger)
	articleController := controllers.NewArticleController(articleService, logger)
	adminController := controllers.NewAdminController(userService, articleService, logger)

	r := gin.New()
	r.Use(RequestID())
	r.Use(RequestLogger(logger))
	r.Use(gin.Recovery())
	r.Use(auth.CurrentUser())

	r.LoadHTMLGlob("templates/*.html")

	controllers.RegisterRoutes(r, userController, articleController, adminController)

	addr := fmt.Sprintf(":%d", config.AppConfig.HTTPPort)
	if err := r.Run(addr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
