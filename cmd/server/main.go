package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"vowline/infrastructure/cache"
	"vowline/infrastructure/db"
	"vowline/infrastructure/mail"
	"vowline/infrastructure/storage"
	"vowline/infrastructure/ws"
	httpHandler "vowline/internal/delivery/http"
	"vowline/internal/delivery/websocket"
	"vowline/internal/repository"
	"vowline/internal/usecase"
	"vowline/pkg/jwt"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		fmt.Println("godotenv: error loading .env file")
	}

	ctx := context.Background()

	mongoDbHost := os.Getenv("MONGODB_URI")
	mongoDbName := os.Getenv("MONGODB_DATABASE")
	mongoDb, err := db.NewMongoStore(ctx, mongoDbHost, mongoDbName)
	if err != nil {
		panic(err)
	}

	log.Println("Connected to MongoDB")

	if err := mongoDb.EnsureIndexes(ctx); err != nil {
		log.Printf("Warning: ensure indexes: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(*mongoDb.DB)
	roomRepo := repository.NewRoomRepository(*mongoDb.DB)
	messageRepo := repository.NewMessageRepository(*mongoDb.DB)
	refreshTokenRepo := repository.NewRefreshTokenRepository(*mongoDb.DB)
	if err := refreshTokenRepo.DeleteExpired(ctx); err != nil {
		log.Printf("delete expired refresh tokens: %v", err)
	}
	eventRepo := repository.NewEventRepository(*mongoDb.DB)
	noteRepo := repository.NewNoteRepository(*mongoDb.DB)
	subscriberRepo := repository.NewSubscriberRepository(*mongoDb.DB)
	reviewRepo := repository.NewReviewRepository(*mongoDb.DB)
	billRepo := repository.NewBillRepository(*mongoDb.DB)
	scheduleRepo := repository.NewScheduleRepository(*mongoDb.DB)
	notificationRepo := repository.NewNotificationRepository(*mongoDb.DB)

	// Initialize JWT manager
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-this-in-production" // Default for development
		log.Println("Warning: Using default JWT secret. Set JWT_SECRET in .env for production")
	}

	// Access token: 15 minutes, Refresh token: 30 days
	jwtManager := jwt.NewJWTManager(jwtSecret, 15*time.Minute, 30*24*time.Hour)

	appBaseURL := os.Getenv("APP_BASE_URL")
	if appBaseURL == "" {
		appBaseURL = "http://localhost:8080"
	}

	var mailer usecase.Mailer
	if smtpHost := os.Getenv("SMTP_HOST"); smtpHost != "" {
		mailer = mail.NewSMTPSender(mail.Config{
			Host:        smtpHost,
			Port:        os.Getenv("SMTP_PORT"),
			Username:    os.Getenv("SMTP_USERNAME"),
			Password:    os.Getenv("SMTP_PASSWORD"),
			FromAddress: os.Getenv("SMTP_FROM"),
			AppBaseURL:  appBaseURL,
		})
	} else {
		log.Println("No SMTP host configured, verification links go to the log")
		mailer = &mail.LogSender{AppBaseURL: appBaseURL}
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	fileStore, err := storage.NewLocalFileStore(uploadDir, "/uploads")
	if err != nil {
		panic(err)
	}

	// Initialize use cases
	authUc := usecase.NewAuthUsecase(userRepo, refreshTokenRepo, jwtManager, mailer)
	userUc := usecase.NewUserUsecase(userRepo)
	messageUc := usecase.NewMessageUsecase(messageRepo)
	chatUc := usecase.NewChatUsecase(roomRepo, messageRepo)
	bookingUc := usecase.NewBookingUsecase(messageRepo)
	eventUc := usecase.NewEventUsecase(eventRepo)
	noteUc := usecase.NewNoteUsecase(noteRepo, notificationRepo)
	subscriberUc := usecase.NewSubscriberUsecase(subscriberRepo)
	reviewUc := usecase.NewReviewUsecase(reviewRepo)
	billUc := usecase.NewBillUsecase(billRepo)
	scheduleUc := usecase.NewScheduleUsecase(scheduleRepo, notificationRepo)
	notificationUc := usecase.NewNotificationUsecase(notificationRepo)

	// Check if Redis is enabled
	redisAddr := os.Getenv("REDIS_ADDR")

	var hub ws.IHub
	if redisAddr != "" {
		serverId := os.Getenv("SERVER_ID")
		if serverId == "" {
			serverId = "server-1" // Default
		}
		log.Printf("Using Redis hub at %s with server ID: %s", redisAddr, serverId)
		hub = ws.NewRedisHub(redisAddr, serverId)
	} else {
		log.Println("Using in-memory hub (single server)")
		hub = ws.NewHub()
	}
	defer hub.Close()

	presence := ws.NewPresence()
	userCache := cache.NewUserCache(5*time.Minute, time.Minute)
	defer userCache.Close()

	// CORS middleware
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "http://localhost:3000")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Allow-Credentials", "true")

			// Handle preflight requests
			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	})

	// Initialize handlers
	websocketH := websocket.NewHandler(hub, presence, chatUc, messageUc, bookingUc, userUc, userCache)
	chatH := httpHandler.NewChatHandler(chatUc, messageUc, bookingUc, userUc, fileStore, hub)
	marketplaceH := httpHandler.NewMarketplaceHandler(eventUc, noteUc, reviewUc, billUc, scheduleUc, notificationUc, subscriberUc)
	authH := httpHandler.NewAuthHandler(authUc)
	authMiddleware := httpHandler.NewAuthMiddleware(authUc)

	// Map routes
	httpHandler.MapHttpRoutes(router, chatH, marketplaceH, websocketH, authH, authMiddleware, uploadDir)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("HTTP server is running on :%s", port)

	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatal(err)
	}
}
