package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/cobra"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/voyagr/payment-service/docs"
	"github.com/voyagr/payment-service/internal/audit"
	"github.com/voyagr/payment-service/internal/config"
	"github.com/voyagr/payment-service/internal/database"
	"github.com/voyagr/payment-service/internal/handlers"
	mW "github.com/voyagr/payment-service/internal/middleware"
	"github.com/voyagr/payment-service/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the payment HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	ctx := cmd.Context()

	docs.SwaggerInfo.Host = "localhost:" + cfg.Port

	startupCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	db, err := database.Open(startupCtx, database.GetConfig())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.Migrate(startupCtx, db); err != nil {
		return err
	}

	redisClient := database.OpenRedis(startupCtx, database.GetRedisConfig())
	if redisClient != nil {
		defer redisClient.Close()
	}

	ledger := services.NewPaymentLedger(
		services.NewPostgresPaymentStore(db),
		services.NewTransactionIDGenerator(cfg.TransactionPrefix),
		services.WithPaymentCache(services.NewPaymentCache(redisClient, cfg.CacheTTL)),
		services.WithEventPublisher(services.NewEventPublisher(redisClient, cfg.EventQueue)),
		services.WithAuditLogger(audit.NewAuditLogger()),
	)
	paymentHandler := handlers.NewPaymentHandler(
		ledger,
		services.NewReceiptService(),
		services.NewISO20022Service(cfg.Currency, cfg.SettlementBIC),
	)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      newRouter(cfg, paymentHandler),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		log.Printf("[SERVER] Starting on :%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-errCh:
		return err
	}

	log.Println("[SERVER] Shutting down...")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Println("[SERVER] Stopped")
	return nil
}

func newRouter(cfg *config.ServiceConfig, payments *handlers.PaymentHandler) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(mW.SecurityHeaders)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "HEAD", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Health check
	r.Get("/health", handlers.Health)
	r.Head("/health", handlers.Health)

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/api/payments", func(r chi.Router) {
		if cfg.AuthEnabled {
			r.Use(mW.Auth(cfg.JWTSecret))
		}

		r.Post("/", payments.CreatePayment)
		r.Get("/user/{userId}", payments.ListUserPayments)
		r.Get("/transaction/{transactionId}", payments.GetPaymentByTransaction)
		r.Get("/transaction/{transactionId}/receipt", payments.GetReceipt)
		r.Get("/{paymentId}", payments.GetPayment)
		r.Get("/{paymentId}/settlement", payments.GetSettlement)

		r.Group(func(r chi.Router) {
			if cfg.AuthEnabled {
				r.Use(mW.RequireRole(mW.RoleAdmin))
			}
			r.Patch("/{paymentId}/refund", payments.RefundPayment)
		})
	})

	return r
}
