package handlers

import (
	"net/http"

	"events-marketplace/internal/middleware"
	"events-marketplace/internal/models"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// NewRouter assembles the full HTTP API
func NewRouter(
	log *logrus.Logger,
	auth *middleware.AuthMiddleware,
	authHandler *AuthHandler,
	eventHandler *EventHandler,
	orderHandler *OrderHandler,
	adminHandler *AdminHandler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RecoveryMiddleware(log))
	r.Use(middleware.LoggingMiddleware(log))
	r.Use(auth.LoadUser)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireAuth)
				r.Get("/me", authHandler.Me)
				r.Put("/me", authHandler.UpdateProfile)
			})
		})

		// Public browsing
		r.Get("/events", eventHandler.ListPublished)
		r.Get("/events/{eventId}", eventHandler.GetEvent)

		// Client purchases
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireRole(models.RoleClient))
			r.Post("/orders", orderHandler.CreateOrder)
			r.Get("/orders", orderHandler.ListOrders)
			r.Get("/orders/{orderId}", orderHandler.GetOrder)
		})

		// Payment gateway callback
		r.Post("/payments/callback", orderHandler.PaymentCallback)

		// Organizer event management
		r.Route("/organizer/events", func(r chi.Router) {
			r.Use(auth.RequireRole(models.RoleOrganizer))
			r.Get("/", eventHandler.MyEvents)
			r.Post("/", eventHandler.CreateEvent)
			r.Put("/{eventId}", eventHandler.UpdateEvent)
			r.Post("/{eventId}/zones", eventHandler.AddZone)
			r.Post("/{eventId}/submit", eventHandler.SubmitEvent)
		})

		// Admin moderation and reports
		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.RequireRole(models.RoleAdmin))
			r.Get("/events/pending", adminHandler.PendingEvents)
			r.Post("/events/{eventId}/approve", adminHandler.ApproveEvent)
			r.Post("/events/{eventId}/reject", adminHandler.RejectEvent)
			r.Post("/events/{eventId}/cancel", adminHandler.CancelEvent)
			r.Get("/reports/sales", adminHandler.SalesReport)
			r.Get("/reports/actions", adminHandler.ActionReport)
		})
	})

	return r
}
