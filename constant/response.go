package constant

const (
	ResponseTypeSuccess = "success"
	ResponseTypeError   = "error"
)

const TokenTypeBearer = "Bearer"

// DateTimeLayout matches the expires_at format returned by login.
const DateTimeLayout = "2006-01-02 15:04:05"
