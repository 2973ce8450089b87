package constants

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys set by the auth middleware
	ContextKeyUserID    = "user_id"
	ContextKeyRole      = "user_role"
	ContextKeySessionID = "session_id"
	ContextKeyRequestID = "request_id"
	ContextKeyIdentity  = "identity"
	ContextKeyCSRFToken = "csrf_token"

	// Database table names
	TableUsers     = "users"
	TableContracts = "contracts"
	TableTickets   = "tickets"
	TableAssets    = "assets"
	TableCasbin    = "casbin_rule"

	// Object key folders inside the asset bucket
	FolderContracts = "contracts"
	FolderTickets   = "tickets"

	// RecentActivityLimit and RecentActivityWindowDays bound the client feed.
	RecentActivityLimit      = 10
	RecentActivityWindowDays = 90
)
