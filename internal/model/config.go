package model

// ----------------------------------------------------
// ================ Config ================
// LogConfig controls the global zerolog logger.
type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	Format     string `envconfig:"LOG_FORMAT" default:"console"`
	Output     string `envconfig:"LOG_OUTPUT" default:"stdout"`
	FilePath   string `envconfig:"LOG_FILE_PATH" default:"logs/agents.log"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"rfc3339"`
}

// SessionConfig holds transcript store settings. RedisURL empty means the
// in-memory store is used.
type SessionConfig struct {
	RedisURL   string `envconfig:"REDIS_URL"`
	TTLSeconds int    `envconfig:"SESSION_TTL_SECONDS" default:"3600"`
}
