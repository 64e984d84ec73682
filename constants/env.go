package constants

const (
	EnvLogLevel = "KGX_LOG_LEVEL"
	EnvLogFile  = "KGX_LOG_FILE"
)
