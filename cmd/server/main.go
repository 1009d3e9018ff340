package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/angelina-2003/HushHours/internal/cache"
	"github.com/angelina-2003/HushHours/internal/handlers"
	"github.com/angelina-2003/HushHours/internal/middleware"
	"github.com/angelina-2003/HushHours/internal/observability"
	"github.com/angelina-2003/HushHours/internal/repository"
	"github.com/angelina-2003/HushHours/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET is required")
	}

	app := fiber.New(fiber.Config{
		AppName: "HushHours Backend",
	})

	// Middleware
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(observability.HTTPMiddleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     os.Getenv("ALLOWED_ORIGINS"),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	// Database
	db, err := repository.InitDB()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Redis cache (optional; the server runs without it)
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	redisPassword := os.Getenv("REDIS_PASSWORD")
	redisDB := 0
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if parsedDB, err := strconv.Atoi(dbStr); err == nil {
			redisDB = parsedDB
		}
	}

	redisCache := cache.NewRedisCache(redisAddr, redisPassword, redisDB)
	if err := redisCache.Ping(); err != nil {
		log.Printf("WARNING: Redis connection failed: %v. Running without cache.", err)
		redisCache = nil
	} else {
		log.Println("Redis cache connected successfully")
	}

	summaryCache := cache.NewSummaryCache(redisCache)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	conversationRepo := repository.NewConversationRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	socialRepo := repository.NewSocialRepository(db)
	giftRepo := repository.NewGiftRepository(db)

	// Services
	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo, giftRepo)
	chatService := service.NewChatService(conversationRepo, messageRepo, userRepo)
	groupService := service.NewGroupService(groupRepo, userRepo)
	friendService := service.NewFriendService(socialRepo, groupRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	chatHandler := handlers.NewChatHandler(chatService, summaryCache)
	groupHandler := handlers.NewGroupHandler(groupService, summaryCache)
	friendHandler := handlers.NewFriendHandler(friendService, summaryCache)

	// Public routes, rate-limited
	authLimiter := limiter.New(limiter.Config{
		Max:        20,
		Expiration: time.Minute,
	})
	app.Post("/register", authLimiter, authHandler.Register)
	app.Post("/login", authLimiter, authHandler.Login)

	// Authenticated routes
	authed := middleware.AuthRequired()
	app.Get("/me", authed, userHandler.GetMe)
	app.Get("/users/search", authed, userHandler.SearchUsers)
	app.Get("/users/:id", authed, userHandler.GetUser)
	app.Post("/update-avatar", authed, userHandler.UpdateAvatar)
	app.Get("/message-color", authed, userHandler.GetMessageColor)
	app.Post("/message-color", authed, userHandler.SetMessageColor)

	app.Post("/conversations", authed, chatHandler.StartConversation)
	app.Get("/conversations", authed, chatHandler.GetConversations)
	app.Get("/conversations/:id/messages", authed, chatHandler.GetMessages)
	app.Post("/messages", authed, chatHandler.SendMessage)

	app.Get("/friends", authed, friendHandler.GetFriends)
	app.Delete("/friends/:id", authed, friendHandler.DeleteFriend)

	app.Post("/groups", authed, groupHandler.CreateGroup)
	app.Get("/groups", authed, groupHandler.GetGroups)
	app.Get("/groups/mine", authed, groupHandler.GetJoinedGroups)
	app.Get("/groups/:id", authed, groupHandler.GetGroup)
	app.Post("/groups/:id/members", authed, groupHandler.JoinGroup)
	app.Get("/groups/:id/messages", authed, groupHandler.GetGroupMessages)
	app.Post("/groups/:id/messages", authed, groupHandler.SendGroupMessage)
	app.Post("/groups/:id/like", authed, friendHandler.LikeGroup)
	app.Delete("/groups/:id/like", authed, friendHandler.UnlikeGroup)

	// Operational endpoints
	app.Get("/metrics", observability.MetricsHandler())
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "HushHours is running",
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s...", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
