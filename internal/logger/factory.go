package logger

import (
	"io"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// WriterFactory creates writers based on format
type WriterFactory struct {
	strategies map[LogFormat]WriterStrategy
	console    io.Writer
}

// NewWriterFactory creates a new writer factory writing console output to stderr
func NewWriterFactory() *WriterFactory {
	return &WriterFactory{
		strategies: map[LogFormat]WriterStrategy{
			FormatJSON:    &JSONWriterStrategy{},
			FormatConsole: &ConsoleWriterStrategy{NoColor: false},
			FormatText:    &TextWriterStrategy{},
		},
		console: os.Stderr,
	}
}

// CreateConsoleWriter creates a console writer
func (wf *WriterFactory) CreateConsoleWriter(format LogFormat) io.Writer {
	strategy, exists := wf.strategies[format]
	if !exists {
		strategy = &ConsoleWriterStrategy{NoColor: false}
	}
	return strategy.CreateWriter(wf.console)
}

// CreateFileWriter creates a file writer with rotation. The returned closer
// releases the underlying file.
func (wf *WriterFactory) CreateFileWriter(file FileOutput, format LogFormat) (io.Writer, io.Closer) {
	// Ensure directory exists; lumberjack reports the failure on first write otherwise
	_ = os.MkdirAll(filepath.Dir(file.Path), 0755)

	lumberjackLogger := &lumberjack.Logger{
		Filename:   file.Path,
		MaxSize:    file.MaxSizeMB,
		LocalTime:  true,
		MaxBackups: file.MaxBackups,
	}

	// colors never go to files
	if format == FormatConsole {
		return (&ConsoleWriterStrategy{NoColor: true}).CreateWriter(lumberjackLogger), lumberjackLogger
	}

	strategy, exists := wf.strategies[format]
	if !exists {
		strategy = &JSONWriterStrategy{}
	}

	return strategy.CreateWriter(lumberjackLogger), lumberjackLogger
}
