package contextkeys

type contextKey string

const (
	UserIDKey    contextKey = "UserID"
	ClaimsKey    contextKey = "SessionClaims"
	RequestIDKey contextKey = "RequestID"
)
