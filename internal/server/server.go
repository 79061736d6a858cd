// Package server assembles the Gin engine: middleware, the webhook ingestion
// endpoint, the account-facing API, and the operator surface.
package server

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quotienthq/quotient-api/internal/config"
	"github.com/quotienthq/quotient-api/internal/handlers"
	"github.com/quotienthq/quotient-api/internal/helpers"
	"github.com/quotienthq/quotient-api/internal/middleware"
	"github.com/quotienthq/quotient-api/internal/processor"
	"github.com/quotienthq/quotient-api/internal/services"
	"github.com/quotienthq/quotient-api/internal/webhook"
)

// Dependencies carries everything the HTTP layer needs.
type Dependencies struct {
	Config      *config.Config
	Pool        *pgxpool.Pool
	Router      *webhook.Router
	Verifier    handlers.EventVerifier
	Common      *handlers.CommonServices
	Sync        *services.SubscriptionSyncService
	Dedup       services.Deduplicator
	Batches     *services.BatchJobService
	DeadLetters *services.DeadLetterService
	Monitoring  *services.MonitoringService
}

// RegisterEventRoutes binds event types to sync-service handlers. State
// transitions that gate account access run on the critical tier; catalog
// updates can lag without harm and run on the low tier.
func RegisterEventRoutes(router *webhook.Router, sync *services.SubscriptionSyncService) {
	subscriptionHandler := func(ctx context.Context, event processor.Event) error {
		sub, ok := event.Data.(processor.Subscription)
		if !ok {
			return services.ErrMalformedPayload
		}
		return sync.ApplySubscription(ctx, sub)
	}
	for _, eventType := range []string{
		"customer.subscription.created",
		"customer.subscription.updated",
		"customer.subscription.deleted",
	} {
		router.Register(eventType, webhook.Route{
			Name:     "subscription_sync",
			Priority: webhook.PriorityCritical,
			Handler:  subscriptionHandler,
		})
	}

	customerHandler := func(ctx context.Context, event processor.Event) error {
		cust, ok := event.Data.(processor.Customer)
		if !ok {
			return services.ErrMalformedPayload
		}
		return sync.ApplyCustomer(ctx, cust)
	}
	router.Register("customer.created", webhook.Route{
		Name:     "customer_sync",
		Priority: webhook.PriorityNormal,
		Handler:  customerHandler,
	})
	router.Register("customer.updated", webhook.Route{
		Name:     "customer_sync",
		Priority: webhook.PriorityNormal,
		Handler:  customerHandler,
	})
	router.Register("customer.deleted", webhook.Route{
		Name:     "customer_delete",
		Priority: webhook.PriorityNormal,
		Handler: func(ctx context.Context, event processor.Event) error {
			cust, ok := event.Data.(processor.Customer)
			if !ok {
				return services.ErrMalformedPayload
			}
			return sync.ApplyCustomerDeleted(ctx, cust)
		},
	})

	router.Register("checkout.session.completed", webhook.Route{
		Name:     "checkout_completed",
		Priority: webhook.PriorityCritical,
		Handler: func(ctx context.Context, event processor.Event) error {
			session, ok := event.Data.(processor.CheckoutSession)
			if !ok {
				return services.ErrMalformedPayload
			}
			return sync.ApplyCheckoutSession(ctx, session)
		},
	})

	router.Register("payment_method.attached", webhook.Route{
		Name:     "payment_method_attached",
		Priority: webhook.PriorityCritical,
		Handler: func(ctx context.Context, event processor.Event) error {
			pm, ok := event.Data.(processor.PaymentMethod)
			if !ok {
				return services.ErrMalformedPayload
			}
			return sync.ApplyPaymentMethod(ctx, pm)
		},
	})

	priceHandler := func(ctx context.Context, event processor.Event) error {
		price, ok := event.Data.(processor.Price)
		if !ok {
			return services.ErrMalformedPayload
		}
		return sync.ApplyPrice(ctx, price)
	}
	router.Register("price.created", webhook.Route{Name: "price_sync", Priority: webhook.PriorityLow, Handler: priceHandler})
	router.Register("price.updated", webhook.Route{Name: "price_sync", Priority: webhook.PriorityLow, Handler: priceHandler})

	productHandler := func(ctx context.Context, event processor.Event) error {
		product, ok := event.Data.(processor.Product)
		if !ok {
			return services.ErrMalformedPayload
		}
		return sync.ApplyProduct(ctx, product)
	}
	router.Register("product.created", webhook.Route{Name: "product_sync", Priority: webhook.PriorityLow, Handler: productHandler})
	router.Register("product.updated", webhook.Route{Name: "product_sync", Priority: webhook.PriorityLow, Handler: productHandler})
}

// New builds the Gin engine with all routes registered.
func New(deps Dependencies) *gin.Engine {
	if deps.Config.Stage == helpers.StageProd {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.CorrelationIDMiddleware())
	engine.Use(middleware.RequestLoggingMiddleware())

	corsConfig := cors.DefaultConfig()
	if deps.Config.AllowedCORSOrigin != "" {
		corsConfig.AllowOrigins = []string{deps.Config.AllowedCORSOrigin}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders,
		handlers.AccountIDHeader, middleware.CorrelationIDHeader)
	corsConfig.MaxAge = 12 * time.Hour
	engine.Use(cors.New(corsConfig))

	healthHandler := handlers.NewHealthHandler(deps.Pool)
	webhookHandler := handlers.NewWebhookHandler(deps.Verifier, deps.Router)
	batchJobHandler := handlers.NewBatchJobHandler(deps.Common, deps.Batches)
	subscriptionHandler := handlers.NewSubscriptionHandler(deps.Common, deps.Sync, deps.Dedup)
	deadLetterHandler := handlers.NewDeadLetterHandler(deps.DeadLetters)
	monitoringHandler := handlers.NewMonitoringHandler(deps.Monitoring)

	engine.GET("/healthz", healthHandler.Healthz)

	webhookLimiter := middleware.NewRateLimiter(deps.Config.WebhookRateLimit, deps.Config.WebhookRateBurst)
	engine.POST("/webhooks/stripe", webhookLimiter.Middleware(), webhookHandler.HandleEvent)

	api := engine.Group("/api/v1")
	{
		api.POST("/subscriptions/free", subscriptionHandler.ProvisionFreePlan)
		api.GET("/subscriptions", subscriptionHandler.ListSubscriptions)
		api.POST("/customers/:account_id/dedup", subscriptionHandler.DedupCustomer)

		api.POST("/batch-jobs", batchJobHandler.CreateBatchJob)
		api.GET("/batch-jobs", batchJobHandler.ListBatchJobs)
		api.GET("/batch-jobs/:job_id", batchJobHandler.GetBatchJob)
		api.POST("/batch-jobs/:job_id/retry", batchJobHandler.RetryBatchJob)

		api.GET("/monitoring/overview", monitoringHandler.GetOverview)
		api.GET("/monitoring/performance", monitoringHandler.GetPerformance)
		api.GET("/monitoring/events", monitoringHandler.ListRecentEvents)

		api.GET("/dead-letters", deadLetterHandler.ListDeadLetters)
		api.GET("/dead-letters/:id", deadLetterHandler.GetDeadLetter)
		api.POST("/dead-letters/:id/resolve", deadLetterHandler.ResolveDeadLetter)
	}

	return engine
}
