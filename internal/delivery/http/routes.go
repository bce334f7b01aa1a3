package http

import (
	"net/http"

	wsDelivery "vowline/internal/delivery/websocket"
	"vowline/internal/entity"
	"vowline/internal/observability"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func MapHttpRoutes(
	r *chi.Mux,
	chatHandler *ChatHandler,
	marketplaceHandler *MarketplaceHandler,
	websocketHandler *wsDelivery.Handler,
	authHandler *AuthHandler,
	authMiddleware *AuthMiddleware,
	uploadDir string,
) {
	r.Use(middleware.Recoverer)
	r.Use(observability.HTTPMetricsMiddleware)

	r.Handle("/ws", http.HandlerFunc(websocketHandler.HandleWebSocket))
	r.Handle("/metrics", promhttp.Handler())

	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	// Auth routes (public)
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Get("/verify", authHandler.VerifyEmail)
		r.Post("/refresh", authHandler.RefreshToken)
		r.Post("/logout", authHandler.Logout)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Post("/logout-all", authHandler.LogoutAllDevices)
		})
	})

	// Newsletter signup from the landing page (public)
	r.Post("/subscribe", marketplaceHandler.Subscribe)

	// Protected API
	r.Route("/api", func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Get("/subscribers", marketplaceHandler.ListSubscribers)

		r.Route("/chat", func(r chi.Router) {
			r.Post("/rooms", chatHandler.CreateRoom)
			r.Get("/rooms/{roomId}", chatHandler.GetRoom)
			r.Post("/rooms/{roomId}/join", chatHandler.JoinRoom)
			r.Post("/rooms/{roomId}/leave", chatHandler.LeaveRoom)
			r.Get("/rooms/{roomId}/messages", chatHandler.GetMessages)
			r.Get("/users/{userId}/rooms", chatHandler.ListUserRooms)

			r.Post("/messages", chatHandler.SaveMessage)
			r.Post("/messages/mark-read", chatHandler.MarkAsRead)
			r.Put("/messages/{messageId}", chatHandler.EditMessage)
			r.Delete("/messages/{messageId}", chatHandler.DeleteMessage)
			r.Post("/messages/{messageId}/reactions", chatHandler.AddReaction)
			r.Delete("/messages/{messageId}/reactions", chatHandler.RemoveReaction)

			r.With(authMiddleware.RequireRole(entity.UserRoleOfficiant)).
				Post("/rooms/{roomId}/booking-proposal", chatHandler.CreateBookingProposal)
			r.Post("/messages/{messageId}/booking-response", chatHandler.RespondBookingProposal)

			r.Post("/upload", chatHandler.UploadChatFile)
			r.Delete("/files/{filename}", chatHandler.DeleteChatFile)

			r.Get("/officiants", chatHandler.ListOfficiants)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/dashboard", marketplaceHandler.Dashboard)
			r.Get("/{id}", chatHandler.GetUser)
			r.Put("/{id}", chatHandler.UpdateUser)
		})

		r.Route("/events", func(r chi.Router) {
			r.Post("/", marketplaceHandler.CreateEvent)
			r.Get("/", marketplaceHandler.ListEvents)
			r.Get("/{eventId}", marketplaceHandler.GetEvent)
			r.Put("/{eventId}", marketplaceHandler.UpdateEvent)
			r.Delete("/{eventId}", marketplaceHandler.DeleteEvent)
		})

		r.Route("/notes", func(r chi.Router) {
			r.Post("/", marketplaceHandler.CreateNote)
			r.Get("/", marketplaceHandler.ListNotes)
			r.Patch("/{noteId}/read", marketplaceHandler.MarkNoteRead)
			r.Delete("/{noteId}", marketplaceHandler.DeleteNote)
		})

		r.Route("/reviews", func(r chi.Router) {
			r.Post("/", marketplaceHandler.CreateReview)
			r.Get("/officiant/{officiantId}", marketplaceHandler.ListOfficiantReviews)
			r.With(authMiddleware.RequireRole(entity.UserRoleOfficiant)).
				Patch("/{reviewId}/visibility", marketplaceHandler.SetReviewVisibility)
			r.Delete("/{reviewId}", marketplaceHandler.DeleteReview)
		})

		r.Route("/bills", func(r chi.Router) {
			r.Post("/", marketplaceHandler.CreateBill)
			r.Get("/", marketplaceHandler.ListBills)
			r.Post("/{billId}/pay", marketplaceHandler.PayBill)
		})

		r.Route("/schedules", func(r chi.Router) {
			r.Post("/", marketplaceHandler.CreateSchedule)
			r.Get("/", marketplaceHandler.ListSchedules)
			r.With(authMiddleware.RequireRole(entity.UserRoleOfficiant)).
				Patch("/{scheduleId}", marketplaceHandler.RespondSchedule)
			r.Delete("/{scheduleId}", marketplaceHandler.DeleteSchedule)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", marketplaceHandler.ListNotifications)
			r.Patch("/{notificationId}/read", marketplaceHandler.ToggleNotificationRead)
		})
	})
}
