package auth

// HTTP header names
const (
	HeaderAuthorization = "Authorization"
	BearerPrefix        = "Bearer "
)

// Error messages written to unauthenticated callers
const (
	ErrMsgMissingToken = "missing bearer token"
	ErrMsgInvalidToken = "invalid or expired token"
)

// Log messages
const (
	LogMsgTokenRejected = "Bearer token rejected"
)

// Defaults for the verified-token cache
const (
	DefaultCacheSize = 1024
)
