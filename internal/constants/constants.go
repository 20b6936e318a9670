package constants

// Context keys
const (
	ContextKeyUserID = "user_id"
	ContextKeyUser   = "current_user"
)

// Password rules
const (
	MinPasswordLength = 8
)

// Pagination limits
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Token sizes (bytes of entropy before hex encoding)
const (
	AuthTokenBytes  = 20
	ResetTokenBytes = 32
)

// DueSoonWindowDays is the dashboard lookahead for in-progress tasks.
const DueSoonWindowDays = 7
