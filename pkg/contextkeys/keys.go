package contextkeys

type contextKey string

const (
	IdentityKey    contextKey = "Identity"
	RequestConnKey contextKey = "RequestConn"
	LoggerKey      contextKey = "Logger"
)
