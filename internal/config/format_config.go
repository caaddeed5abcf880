package config

// FormatConfig defines how each input URL is processed
type FormatConfig struct {
	// Mode is one of human, computer, parse, check or links
	Mode string `json:"mode,omitempty" yaml:"mode,omitempty" validate:"required,mode"`
	// MaxLength is the character budget for human output
	MaxLength int `json:"max_length,omitempty" yaml:"max_length,omitempty" validate:"min=0"`
	// SlashesDenoteHost makes a leading "//" start a host in parse and check modes
	SlashesDenoteHost bool `json:"slashes_denote_host,omitempty" yaml:"slashes_denote_host,omitempty"`
}

// NewDefaultFormatConfig creates default format configuration
func NewDefaultFormatConfig() FormatConfig {
	return FormatConfig{
		Mode:              DefaultFormatMode,
		MaxLength:         DefaultFormatMaxLength,
		SlashesDenoteHost: DefaultFormatSlashesDenoteHost,
	}
}
