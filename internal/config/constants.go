package config

const (
	// Format Defaults
	DefaultFormatMode              = ModeHuman
	DefaultFormatMaxLength         = 50
	DefaultFormatSlashesDenoteHost = false

	// Batch Defaults
	DefaultBatchSize          = 500
	DefaultMaxConcurrentBatch = 4
	DefaultBatchThresholdSize = 1000

	// Output Defaults
	DefaultOutputFormat = OutputFormatText

	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// ConfigPathEnvVar overrides the config file location
	ConfigPathEnvVar = "MDURL_CONFIG_PATH"

	maxConfigFileSize = 10 * 1024 * 1024
)

// Modes select what the CLI does with each input
const (
	ModeHuman    = "human"
	ModeComputer = "computer"
	ModeParse    = "parse"
	ModeCheck    = "check"
	ModeLinks    = "links"
)

// Output formats for printed results
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)
