package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"attempt-service/internal/db"
	"attempt-service/internal/event"
	"attempt-service/internal/generation"
	"attempt-service/internal/handlers"
	"attempt-service/internal/repository"
	"attempt-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	db.InitMongo(mongoURI)
	defer db.Close()

	mongoDB := os.Getenv("MONGO_DB")
	if mongoDB == "" {
		mongoDB = "attempt_service"
	}
	database := db.Client.Database(mongoDB)

	// RabbitMQ event publisher
	rabbitURL := os.Getenv("RABBITMQ_URI")
	eventExchange := os.Getenv("RABBITMQ_EXCHANGE")
	var publisher *event.Publisher
	if rabbitURL != "" && eventExchange != "" {
		var err error
		publisher, err = event.NewPublisher(rabbitURL, eventExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, domain events will not be published")
	}

	// Redis leaderboard cache
	var leaderboardService *service.LeaderboardService
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: redisAddr})
		leaderboardService = service.NewLeaderboardService(redisClient)
	} else {
		log.Println("Redis not configured, leaderboards are disabled")
	}

	// Gemini question generation
	var generator generation.ContentGenerator
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		var err error
		generator, err = generation.NewGeminiClient(context.Background(), apiKey)
		if err != nil {
			log.Fatalf("Failed to create Gemini client: %v", err)
		}
	} else {
		log.Println("GEMINI_API_KEY not set, quiz generation is disabled")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Repositories
	attemptRepo := repository.NewAttemptRepository(database)
	streakRepo := repository.NewStreakRepository(database)
	pointsRepo := repository.NewPointsRepository(database)
	userRepo := repository.NewUserRepository(database)
	savedRepo := repository.NewSavedQuizRepository(database)

	// Services
	attemptService := service.NewAttemptService(
		attemptRepo,
		streakRepo,
		pointsRepo,
		userRepo,
		repository.NewTxRunner(db.Client),
	)
	if leaderboardService != nil {
		attemptService.Leaderboard = leaderboardService
	}
	progressService := service.NewProgressService(attemptRepo, streakRepo, pointsRepo, userRepo, savedRepo)
	savedService := service.NewSavedQuizService(savedRepo, attemptRepo)

	// Handlers
	attemptHandler := handlers.NewAttemptHandler(attemptService, publisher)
	progressHandler := handlers.NewProgressHandler(progressService)
	savedHandler := handlers.NewSavedQuizHandler(savedService, publisher)
	generationHandler := handlers.NewGenerationHandler(generator, publisher)
	var leaderboardHandler *handlers.LeaderboardHandler
	if leaderboardService != nil {
		leaderboardHandler = handlers.NewLeaderboardHandler(leaderboardService)
	}

	// Public routes - user progress
	publicUser := r.Group("/public/quizz/user")
	{
		publicUser.GET("/:id/dashboard", progressHandler.GetDashboard)
		publicUser.GET("/:id/attempts", progressHandler.GetAttempts)
		publicUser.GET("/:id/streak", progressHandler.GetStreak)
		publicUser.GET("/:id/points", progressHandler.GetPoints)
		publicUser.GET("/:id/saved", savedHandler.GetSavedQuizzes)
	}

	publicAttempt := r.Group("/public/quizz/attempt")
	{
		publicAttempt.GET("/:id", attemptHandler.GetAttempt)
	}

	if leaderboardHandler != nil {
		publicLeaderboard := r.Group("/public/quizz/leaderboard")
		{
			publicLeaderboard.GET("/:board", leaderboardHandler.GetLeaderboard)
			publicLeaderboard.GET("/:board/user/:id", leaderboardHandler.GetUserRank)
		}
	}

	// Protected routes - attempt submission and generation
	protected := r.Group("/protected/quizz")
	protected.Use(requireUserID())
	{
		protected.POST("/attempt", attemptHandler.SubmitAttempt)
		protected.POST("/generate", generationHandler.GenerateQuiz)
		protected.POST("/saved", savedHandler.SaveQuiz)
		protected.DELETE("/saved/:id", savedHandler.DeleteSavedQuiz)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "6667"
	}
	r.Run(":" + port)
}

// requireUserID rejects protected requests that arrive without the gateway's
// X-User-ID header.
func requireUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-User-ID") == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "MISSING_USER_ID",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
