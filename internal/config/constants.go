package config

// Environment names accepted in APP_ENV
const (
	EnvDev        = "dev"
	EnvStaging    = "staging"
	EnvProduction = "prod"
	EnvTest       = "test"
)

// ValidationTagGame is the custom validator tag for game names
const ValidationTagGame = "game"

// Error messages
const (
	ErrMsgLoadConfig     = "failed to load config: %w"
	ErrMsgValidateConfig = "invalid config: %s"
)
