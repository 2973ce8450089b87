package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/contracthub-inc/contracthub/internal/infrastructure/config"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	*Container
}

// NewRouter creates a new HTTP router with all dependencies wired.
func NewRouter(ctx context.Context, db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Router, error) {
	container, err := NewContainer(ctx, db, redisClient, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to build container: %w", err)
	}
	return &Router{Container: container}, nil
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
