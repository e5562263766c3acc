package consts

const (
	ParamApiKey = "api_key"
	ParamDate   = "date"
	ParamHd     = "hd"

	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
	HeaderRateLimitLimit     = "X-RateLimit-Limit"

	DefaultBaseURL = "https://api.nasa.gov/planetary/apod"

	TimeFormat = "2006-01-02"

	// config keys, also read from the environment with the APOD_ prefix
	KeyApiKey    = "api_key"
	KeyBaseURL   = "base_url"
	KeyPort      = "port"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"

	EnvPrefix = "APOD"
)
