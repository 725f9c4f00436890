package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

const (
	permission = 0664
)

// LogBuild collects the outputs a logger should write to
type LogBuild struct {
	writer io.Writer
	path   string
	level  string
}

// LogData is a built logger and the file it owns, if any
type LogData struct {
	LogFile *os.File
	Logger  zerolog.Logger
}

func New() *LogBuild {
	return &LogBuild{}
}

func (build *LogBuild) FromPath(path string) *LogBuild {
	build.path = path
	return build
}

func (build *LogBuild) FromBuffer(w io.Writer) *LogBuild {
	build.writer = w
	return build
}

// WithLevel sets the minimum level by name ("debug", "info", ...)
func (build *LogBuild) WithLevel(level string) *LogBuild {
	build.level = level
	return build
}

// Make builds the logger. A path takes precedence over a buffer; stdout is the default.
func (build *LogBuild) Make() (logData *LogData, err error) {
	logData = new(LogData)
	var writer io.Writer = os.Stdout
	if build.writer != nil {
		writer = build.writer
	}
	if build.path != "" {
		logData.LogFile, err = os.OpenFile(build.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
		if err != nil {
			return nil, err
		}
		writer = zerolog.SyncWriter(logData.LogFile)
	}

	level := zerolog.InfoLevel
	if build.level != "" {
		if level, err = zerolog.ParseLevel(build.level); err != nil {
			return nil, err
		}
	}

	logData.Logger = zerolog.New(writer).Level(level).With().Timestamp().Logger()
	return logData, nil
}

// Close releases the log file, if one was opened
func (logData *LogData) Close() error {
	if logData.LogFile != nil {
		return logData.LogFile.Close()
	}
	return nil
}
