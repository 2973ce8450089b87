package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	ticketUsecases "github.com/contracthub-inc/contracthub/internal/application/ticket/usecases"
	"github.com/contracthub-inc/contracthub/internal/infrastructure/auth"
	"github.com/contracthub-inc/contracthub/internal/infrastructure/config"
	"github.com/contracthub-inc/contracthub/internal/infrastructure/session"
	"github.com/contracthub-inc/contracthub/internal/infrastructure/storage"
	"github.com/contracthub-inc/contracthub/internal/interfaces/http/middleware"
	"github.com/contracthub-inc/contracthub/internal/shared/authorization"
	"github.com/contracthub-inc/contracthub/internal/shared/goroutine"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
	"github.com/contracthub-inc/contracthub/internal/shared/services/markdown"
)

// Container holds all infrastructure components, repositories, use cases and
// handlers, and wires them together.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	authMiddleware *middleware.AuthMiddleware
	loginLimiter   *middleware.RateLimiter

	// Services shared across sections
	jwtSvc     *auth.JWTService
	hasher     *auth.BcryptPasswordHasher
	sessions   *session.RedisStore
	authorizer *authorization.Authorizer
	assets     *storage.AssetService
	notifier   ticketUsecases.ReplyNotifier
	renderer   markdown.Renderer

	// tasks tracks reply notification mails still in flight
	tasks *goroutine.Group
}

// NewContainer wires every component. The Redis client is owned by the
// caller; the container only closes what it opened.
func NewContainer(ctx context.Context, db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
		redis:  redisClient,
	}

	// Section 1: Infrastructure - repositories, auth, authorization, storage
	if err := c.initInfrastructure(ctx); err != nil {
		return nil, err
	}

	// Section 2: Use cases
	c.initUseCases()

	// Section 3: Handlers
	c.initHandlers()

	return c, nil
}
