package config

// this holds the resolved configuration values from CLI
var (
	Addr      string // UDP listen address for telemetry packets
	LogLevel  string // sets the log level (zap log level values)
	LogFormat string // text vs json
	LogFile   string // when set, logs are written here instead of stderr
)
