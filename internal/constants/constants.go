package constants

// Context and session keys
const (
	ContextKeyUserID = "user_id"
	ContextKeyUser   = "user"
)

// Session settings
const (
	SessionCookieName = "todo_session"
	SessionMaxAge     = 86400 * 7 // 7 days
)

// Route paths used as redirect targets
const (
	PathIndex  = "/"
	PathLogin  = "/login"
	PathSignup = "/signup"
)

// NextQueryParam carries the originally requested page through login.
const NextQueryParam = "next"

// ContextKeyTaskID holds the parsed :id route parameter.
const ContextKeyTaskID = "task_id"
