package config

// OutputConfig defines where and how results are written
type OutputConfig struct {
	Format      string `json:"format,omitempty" yaml:"format,omitempty" validate:"omitempty,outputformat"`
	ParquetPath string `json:"parquet_path,omitempty" yaml:"parquet_path,omitempty"`
	SQLitePath  string `json:"sqlite_path,omitempty" yaml:"sqlite_path,omitempty"`
}

// NewDefaultOutputConfig creates default output configuration
func NewDefaultOutputConfig() OutputConfig {
	return OutputConfig{
		Format: DefaultOutputFormat,
	}
}
