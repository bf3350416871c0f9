package constant

type contextKey string

const (
	UserIDKey    contextKey = "user_id"
	SessionIDKey contextKey = "session_id"
	RequestIDKey contextKey = "request_id"
)

// HeaderRequestID carries the request id in and out of the API.
const HeaderRequestID = "X-Request-Id"
