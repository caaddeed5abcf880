package filemanager

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/aleister1102/mdurl/internal/common/errorwrapper"
	"github.com/rs/zerolog"
)

// FileReadOptions controls how files are read
type FileReadOptions struct {
	// MaxSize rejects files larger than this many bytes. Zero means no limit.
	MaxSize   int64
	TrimLines bool
	SkipEmpty bool
}

// DefaultFileReadOptions returns options for reading small text files
func DefaultFileReadOptions() FileReadOptions {
	return FileReadOptions{
		MaxSize:   10 * 1024 * 1024,
		TrimLines: true,
		SkipEmpty: true,
	}
}

// FileManager provides file operations with standardized error handling and logging
type FileManager struct {
	logger zerolog.Logger
}

// NewFileManager creates a new FileManager instance
func NewFileManager(logger zerolog.Logger) *FileManager {
	return &FileManager{
		logger: logger.With().Str("component", "FileManager").Logger(),
	}
}

// FileExists checks if a file or directory exists
func (fm *FileManager) FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// ReadFile reads a whole file, enforcing opts.MaxSize
func (fm *FileManager) ReadFile(path string, opts FileReadOptions) ([]byte, error) {
	if err := fm.validateFileForReading(path, opts); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errorwrapper.WrapError(err, fmt.Sprintf("failed to read file content: %s", path))
	}

	fm.logger.Debug().Str("path", path).Int("bytes", len(content)).Msg("File read")
	return content, nil
}

// ReadLines reads path line by line. A path of "-" reads standard input.
func (fm *FileManager) ReadLines(path string, opts FileReadOptions) ([]string, error) {
	if path == "-" {
		return fm.ReadLinesFrom(os.Stdin, opts)
	}

	if err := fm.validateFileForReading(path, opts); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errorwrapper.WrapError(err, fmt.Sprintf("failed to open file: %s", path))
	}
	defer func() {
		if err := file.Close(); err != nil {
			fm.logger.Error().Err(err).Str("path", path).Msg("Failed to close file.")
		}
	}()

	lines, err := fm.ReadLinesFrom(file, opts)
	if err != nil {
		return nil, errorwrapper.WrapError(err, fmt.Sprintf("failed to read file content: %s", path))
	}

	return lines, nil
}

// ReadLinesFrom reads lines from r, applying the trimming options
func (fm *FileManager) ReadLinesFrom(r io.Reader, opts FileReadOptions) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		line := scanner.Text()

		if opts.TrimLines {
			line = strings.TrimSpace(line)
		}

		if opts.SkipEmpty && strings.TrimSpace(line) == "" {
			continue
		}

		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// EnsureDirectory creates a directory and its parents if they don't exist
func (fm *FileManager) EnsureDirectory(path string, perm fs.FileMode) error {
	if path == "" || path == "." {
		return nil
	}

	if info, err := os.Stat(path); err == nil {
		if !info.IsDir() {
			return errorwrapper.NewValidationError("path", path, "exists but is not a directory")
		}
		return nil
	}

	if err := os.MkdirAll(path, perm); err != nil {
		return errorwrapper.WrapError(err, "failed to create directory: "+path)
	}

	fm.logger.Debug().Str("path", path).Msg("Created directory")
	return nil
}

// validateFileForReading checks the file exists, is regular and fits opts.MaxSize
func (fm *FileManager) validateFileForReading(path string, opts FileReadOptions) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errorwrapper.WrapError(errorwrapper.ErrNotFound, fmt.Sprintf("file not found: %s", path))
		}
		return errorwrapper.WrapError(err, fmt.Sprintf("failed to get file info for: %s", path))
	}

	if info.IsDir() {
		return errorwrapper.NewValidationError("path", path, "is a directory, not a file")
	}

	if opts.MaxSize > 0 && info.Size() > opts.MaxSize {
		return errorwrapper.NewValidationError("file_size", info.Size(), fmt.Sprintf("exceeds maximum size of %d bytes", opts.MaxSize))
	}

	return nil
}
