package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/contracthub-inc/contracthub/internal/infrastructure/ratelimit"
	"github.com/contracthub-inc/contracthub/internal/interfaces/http/handlers"
	contracthandlers "github.com/contracthub-inc/contracthub/internal/interfaces/http/handlers/contract"
	tickethandlers "github.com/contracthub-inc/contracthub/internal/interfaces/http/handlers/ticket"
	"github.com/contracthub-inc/contracthub/internal/interfaces/http/middleware"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.NewNopLogger()
	engine := gin.New()

	authMiddleware := middleware.NewAuthMiddleware(nil, nil, log)
	contractHandler := contracthandlers.NewHandler(contracthandlers.UseCases{}, 1<<20, log)
	ticketHandler := tickethandlers.NewTicketHandler(nil, nil, nil, nil, nil, nil, nil, 1<<20, log)

	SetupAuthRoutes(engine, &AuthRouteConfig{
		AuthHandler:    handlers.NewAuthHandler(nil, nil, false, log),
		AuthMiddleware: authMiddleware,
		LoginLimiter:   middleware.NewRateLimiter(nil, "login", ratelimit.RateLimitConfig{}, log),
	})
	SetupPanelRoutes(engine, &PanelRouteConfig{
		DashboardHandler:    handlers.NewDashboardHandler(nil, nil, log),
		NotificationHandler: handlers.NewNotificationHandler(nil, log),
		ContractHandler:     contractHandler,
		TicketHandler:       ticketHandler,
		AuthMiddleware:      authMiddleware,
	})
	SetupAdminRoutes(engine, &AdminRouteConfig{
		ContractHandler: contractHandler,
		TicketHandler:   ticketHandler,
		AuthMiddleware:  authMiddleware,
		Logger:          log,
	})
	return engine
}

func TestRoutesAreRegistered(t *testing.T) {
	engine := newTestEngine()

	registered := make(map[string]bool)
	for _, r := range engine.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	expected := []string{
		"POST /auth/login",
		"POST /auth/logout",
		"GET /panel/dashboard",
		"GET /panel/activities",
		"GET /panel/notifications/unread",
		"GET /panel/contracts",
		"GET /panel/contracts/:id",
		"GET /panel/tickets",
		"POST /panel/tickets",
		"POST /panel/tickets/files",
		"GET /panel/tickets/:id",
		"POST /panel/tickets/:id/messages",
		"POST /admin/contracts",
		"PATCH /admin/contracts/:id",
		"DELETE /admin/contracts/:id",
		"POST /admin/contracts/:id/stages",
		"PATCH /admin/contracts/:id/stages/:stage",
		"PATCH /admin/contracts/:id/stages/:stage/status",
		"PATCH /admin/contracts/:id/stages/:stage/title",
		"DELETE /admin/contracts/:id/stages/:stage",
		"POST /admin/contracts/:id/stages/:stage/files",
		"DELETE /admin/contracts/:id/stages/:stage/files/:file",
		"POST /admin/tickets/:id/messages",
		"PATCH /admin/tickets/:id/status",
		"POST /admin/tickets/:id/messages/:messageId/read",
	}
	for _, route := range expected {
		assert.True(t, registered[route], "missing route %s", route)
	}
	assert.Len(t, registered, len(expected))
}

func TestProtectedGroupsRequireAuthentication(t *testing.T) {
	engine := newTestEngine()

	requests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/panel/dashboard"},
		{http.MethodPost, "/panel/tickets"},
		{http.MethodPatch, "/admin/contracts/1"},
		{http.MethodPost, "/auth/logout"},
	}

	for _, r := range requests {
		t.Run(r.method+" "+r.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(r.method, r.path, nil))

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
		})
	}
}
