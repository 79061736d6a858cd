package config

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	awsclient "github.com/quotienthq/quotient-api/internal/client/aws"
	"github.com/quotienthq/quotient-api/internal/helpers"
	"github.com/quotienthq/quotient-api/internal/logger"
)

// Config holds all configuration resolved at process start. Components
// receive it by injection and never read the environment directly.
type Config struct {
	Stage string
	Port  string

	DatabaseURL string

	StripeAPIKey        string
	StripeWebhookSecret string

	// Webhook ingress rate limit (requests per second with burst headroom).
	WebhookRateLimit  float64
	WebhookRateBurst  int
	AllowedCORSOrigin string
}

// Stage reads and validates the STAGE environment variable, loading a local
// .env file first so local development works without exported variables.
func Stage() (string, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: error loading .env file: %v\n", err)
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
	}
	if !helpers.IsValidStage(stage) {
		return "", fmt.Errorf("invalid STAGE %q: must be one of %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}
	return stage, nil
}

// Load resolves the full configuration for the given stage. Deployed stages
// fetch the database credentials and Stripe secrets from AWS Secrets Manager;
// local falls back to environment variables throughout.
func Load(ctx context.Context, stage string) (*Config, error) {
	cfg := &Config{
		Stage:             stage,
		Port:              getEnvWithDefault("API_PORT", "8000"),
		WebhookRateLimit:  50,
		WebhookRateBurst:  100,
		AllowedCORSOrigin: getEnvWithDefault("CORS_ALLOWED_ORIGIN", "*"),
	}

	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Secrets Manager client: %w", err)
	}

	cfg.DatabaseURL, err = resolveDatabaseURL(ctx, stage, secretsClient)
	if err != nil {
		return nil, err
	}

	cfg.StripeAPIKey, err = secretsClient.GetSecretString(ctx, "STRIPE_API_KEY_ARN", "STRIPE_API_KEY")
	if err != nil {
		return nil, fmt.Errorf("failed to get Stripe API key: %w", err)
	}

	cfg.StripeWebhookSecret, err = secretsClient.GetSecretString(ctx, "STRIPE_WEBHOOK_SECRET_ARN", "STRIPE_WEBHOOK_SECRET")
	if err != nil {
		return nil, fmt.Errorf("failed to get Stripe webhook secret: %w", err)
	}

	logger.Info("Configuration resolved",
		zap.String("stage", stage),
		zap.String("port", cfg.Port))

	return cfg, nil
}

// resolveDatabaseURL builds the Postgres DSN. Deployed stages compose it from
// DB_HOST/DB_NAME plus managed RDS credentials; local uses DATABASE_URL.
func resolveDatabaseURL(ctx context.Context, stage string, secretsClient *awsclient.SecretsManagerClient) (string, error) {
	if stage == helpers.StageProd || stage == helpers.StageDev {
		dbEndpoint := os.Getenv("DB_HOST")
		dbName := os.Getenv("DB_NAME")
		dbSSLMode := getEnvWithDefault("DB_SSLMODE", "require")

		if dbEndpoint == "" || dbName == "" {
			return "", fmt.Errorf("missing required DB environment variables for deployed stage (DB_HOST, DB_NAME)")
		}

		type rdsSecret struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		var secretData rdsSecret
		if err := secretsClient.GetSecretJSON(ctx, "RDS_SECRET_ARN", &secretData); err != nil {
			return "", fmt.Errorf("failed to retrieve RDS secret: %w", err)
		}
		if secretData.Username == "" || secretData.Password == "" {
			return "", fmt.Errorf("username or password missing from RDS secret")
		}

		return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
			url.QueryEscape(secretData.Username), url.QueryEscape(secretData.Password),
			dbEndpoint, dbName, dbSSLMode), nil
	}

	dsn, err := secretsClient.GetSecretString(ctx, "DATABASE_URL_ARN", "DATABASE_URL")
	if err != nil {
		return "", fmt.Errorf("DATABASE_URL is required for local development: %w", err)
	}
	return dsn, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
