package storage

import "errors"

// DefaultFilePath is the backing file used when nothing else is configured.
const DefaultFilePath = "file.json"

// Config selects the backing file of a FileStorage.
type Config struct {
	FilePath string `json:"file_path" yaml:"file_path" mapstructure:"file_path"`
}

// Config validation errors.
var (
	ErrFilePathEmpty = errors.New("file path must not be empty")
)

// Validate checks that the Config is usable.
func (c Config) Validate() error {
	if c.FilePath == "" {
		return ErrFilePathEmpty
	}
	return nil
}
