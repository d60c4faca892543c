package constants

const (
	ROLE_USER  = "user"
	ROLE_ADMIN = "admin"
)

var ROLES = []string{ROLE_USER, ROLE_ADMIN}

const (
	OTP_LENGTH         = 6
	OTP_TTL_MINUTES    = 10
	ORDER_CODE_PREFIX  = "SVK"
	ORDER_CODE_RETRIES = 3
)
