package http

import (
	"context"
	"fmt"

	"github.com/contracthub-inc/contracthub/internal/infrastructure/auth"
	"github.com/contracthub-inc/contracthub/internal/infrastructure/email"
	"github.com/contracthub-inc/contracthub/internal/infrastructure/permission"
	"github.com/contracthub-inc/contracthub/internal/infrastructure/ratelimit"
	"github.com/contracthub-inc/contracthub/internal/infrastructure/session"
	"github.com/contracthub-inc/contracthub/internal/infrastructure/storage"
	"github.com/contracthub-inc/contracthub/internal/interfaces/http/middleware"
	"github.com/contracthub-inc/contracthub/internal/shared/authorization"
	"github.com/contracthub-inc/contracthub/internal/shared/db"
	"github.com/contracthub-inc/contracthub/internal/shared/goroutine"
	"github.com/contracthub-inc/contracthub/internal/shared/services/markdown"
)

const loginRateLimitScope = "login"

// ============================================================
// Section 1: Infrastructure
// ============================================================

func (c *Container) initInfrastructure(ctx context.Context) error {
	cfg := c.cfg
	log := c.log

	c.repos = newRepositories(c.db, log)

	// Authentication
	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	c.hasher = auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	c.sessions = session.NewRedisStore(c.redis, cfg.Auth.Session.KeyPrefix, cfg.Auth.Session.TTL())

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.sessions, log)
	c.loginLimiter = middleware.NewRateLimiter(
		ratelimit.NewRedisRateLimiter(c.redis),
		loginRateLimitScope,
		ratelimit.RateLimitConfig{
			RequestsPerMinute: cfg.Auth.LoginRateLimit.PerMinute,
			RequestsPerHour:   cfg.Auth.LoginRateLimit.PerHour,
		},
		log,
	)

	// Authorization: casbin policies live in the database and are seeded
	// from the policy file on first start.
	enforcer, err := permission.NewEnforcer(c.db, cfg.Authorization.ModelPath, log)
	if err != nil {
		return fmt.Errorf("failed to initialize permission enforcer: %w", err)
	}
	if cfg.Authorization.PolicyFile != "" {
		if err := permission.NewPolicySync(enforcer, log).SeedIfEmpty(cfg.Authorization.PolicyFile); err != nil {
			return fmt.Errorf("failed to seed authorization policies: %w", err)
		}
	}
	c.authorizer = authorization.NewAuthorizer(enforcer, log)

	// Object storage
	objects, err := storage.NewMinioStorage(ctx, &cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("failed to initialize object storage: %w", err)
	}
	c.assets = storage.NewAssetService(
		c.repos.assetRepo,
		objects,
		db.NewTransactionManager(c.db),
		cfg.Storage.PresignExpiry(),
		log,
	)

	// Ticket rendering and reply notifications
	c.renderer = markdown.NewRenderer()
	if cfg.Email.Enabled {
		c.notifier = email.NewSMTPEmailService(email.NewSMTPConfig(&cfg.Email, cfg.Server.BaseURL))
	} else {
		c.notifier = email.NewDisabledEmailService(log)
	}
	c.tasks = goroutine.NewGroup(log)

	log.Infow("infrastructure initialized",
		"storage_bucket", cfg.Storage.Bucket,
		"email_enabled", cfg.Email.Enabled)

	return nil
}
