package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pluravita-pixel/Plataforma-v21012026-sub001/internal/config"
	"github.com/pluravita-pixel/Plataforma-v21012026-sub001/internal/handlers"
	"github.com/pluravita-pixel/Plataforma-v21012026-sub001/internal/payments"
	"github.com/pluravita-pixel/Plataforma-v21012026-sub001/internal/repository"
	"github.com/pluravita-pixel/Plataforma-v21012026-sub001/internal/services"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool, gateway *payments.StripeGateway) {
	userRepo := repository.NewUserRepository(db)
	psychologistRepo := repository.NewPsychologistRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	var confirmer services.BookingConfirmer
	if cfg.SupabaseURL != "" && cfg.SupabaseAnonKey != "" {
		confirmer = services.NewSupabaseConfirmationService(cfg.SupabaseURL, cfg.SupabaseAnonKey)
	}

	checkoutService := services.NewCheckoutService(appointmentRepo, gateway, cfg.AppBaseURL)
	accountService := services.NewAccountService(db, userRepo)
	statsService := services.NewStatsService(statsRepo)

	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	webhookHandler := handlers.NewWebhookHandler(gateway, appointmentRepo, confirmer, cfg.IsDevelopment())
	referralHandler := handlers.NewReferralHandler(psychologistRepo)
	accountHandler := handlers.NewAccountHandler(accountService)
	statsHandler := handlers.NewStatsHandler(statsService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentRepo)

	api := app.Group("/api")

	api.Post("/webhooks/stripe", webhookHandler.HandleStripeWebhook)
	api.Get("/ref/:code", referralHandler.Redirect)
	api.Get("/stats", statsHandler.GetGlobalStats)

	api.Post("/checkout/sessions", checkoutHandler.CreateCheckoutSession)

	users := api.Group("/users")
	users.Post("", accountHandler.CreateUser)
	users.Get("", accountHandler.ListUsers)
	users.Put("/:id/account", accountHandler.UpdateAccount)

	api.Get("/appointments/:id", appointmentHandler.GetAppointment)
}
