package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"crmlite/internal/config"
	"crmlite/internal/handlers"
	"crmlite/internal/pdf"
	"crmlite/internal/repositories"
	"crmlite/internal/routes"
	"crmlite/internal/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "crmlite/docs"
)

// @title                      crmlite API
// @version                    1.0
// @description                CRM backend: leads, clients, promotion, reports.
// @BasePath                   /api
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
func Run() {
	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		log.Fatal("config: ", err)
	}

	// === Mongo ===
	// The primary store is mandatory; failing here kills the process.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URL))
	if err != nil {
		log.Fatal("mongo connect: ", err)
	}
	if err := mongoClient.Ping(ctx, nil); err != nil {
		log.Fatal("mongo ping: ", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("mongo disconnect: %v", err)
		}
	}()
	db := mongoClient.Database(cfg.Mongo.Database)

	// === Repos ===
	clientRepo := repositories.NewClientRepository(db)
	leadRepo := repositories.NewLeadRepository(db)
	userRepo := repositories.NewUserRepository(db)
	if err := clientRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal("indexes: ", err)
	}
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal("indexes: ", err)
	}

	// Legacy source only when the flag is on; nil means the merge
	// sees an absent source.
	var legacy services.LegacySource
	if cfg.Legacy.Enabled {
		legacy = repositories.NewLegacyClientSource(cfg.Legacy)
	}

	// === Notifiers (both optional) ===
	var notifiers []services.Notifier
	if cfg.Email.SMTPHost != "" {
		notifiers = append(notifiers, services.NewEmailService(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.SMTPUser,
			cfg.Email.SMTPPassword,
			cfg.Email.FromEmail,
		))
	}
	if cfg.Telegram.BotToken != "" {
		tg, err := services.NewTelegramService(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			log.Printf("telegram disabled: %v", err)
		} else {
			notifiers = append(notifiers, tg)
		}
	}

	// === Services ===
	clientService := services.NewClientService(clientRepo, legacy)
	leadService := services.NewLeadService(leadRepo, clientService, notifiers...)
	userService := services.NewUserService(userRepo, []byte(cfg.Auth.JWTSecret))

	reportGen := pdf.NewReportGenerator(cfg.Files.RootDir)

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(userService)
	clientHandler := handlers.NewClientHandler(clientService)
	leadHandler := handlers.NewLeadHandler(leadService)
	reportHandler := handlers.NewReportHandler(clientService, reportGen)

	// === Gin ===
	router := gin.Default()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(
		router,
		[]byte(cfg.Auth.JWTSecret),
		authHandler,
		clientHandler,
		leadHandler,
		reportHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("server listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("server: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
