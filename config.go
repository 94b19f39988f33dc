package csvtable

import (
	"github.com/tablekit/go-csvtable/io"
)

// DefaultExtension is the expected file extension tag, compared
// case-insensitively against the path's extension.
const DefaultExtension = "CSV"

// Config holds the parser configuration.
type Config struct {
	// Delimiter is the field delimiter for all loads. Zero means
	// auto-detection.
	Delimiter rune

	// Extension is the expected file extension tag (default "CSV").
	Extension string

	// S3Config configures access to s3:// sources.
	S3Config *S3Config

	// FileIO overrides source access for all paths. When set, scheme
	// dispatch is skipped entirely.
	FileIO io.FileIO
}

// S3Config holds S3-specific configuration.
type S3Config struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	Endpoint        string // For MinIO, LocalStack, etc.
	ForcePathStyle  bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Extension: DefaultExtension,
	}
}

// Option is a functional option for parser configuration.
type Option func(*Config)

// WithDelimiter sets an explicit field delimiter, disabling
// auto-detection. Any single character is accepted as-is.
func WithDelimiter(r rune) Option {
	return func(c *Config) {
		c.Delimiter = r
	}
}

// WithExtension sets the expected file extension tag.
func WithExtension(ext string) Option {
	return func(c *Config) {
		c.Extension = ext
	}
}

// WithS3 configures access to s3:// sources.
func WithS3(cfg *S3Config) Option {
	return func(c *Config) {
		c.S3Config = cfg
	}
}

// WithFileIO sets a custom source access layer for all paths.
func WithFileIO(fio io.FileIO) Option {
	return func(c *Config) {
		c.FileIO = fio
	}
}
