package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/turbot/kgx-ingest-sdk/constants"
	pfconstants "github.com/turbot/pipe-fittings/constants"
	"github.com/turbot/pipe-fittings/sanitize"
	"gopkg.in/natefinch/lumberjack.v2"
)

// rotating log file, if KGX_LOG_FILE is set
var logFile *lumberjack.Logger

func Initialize(appName string) {
	slog.SetDefault(kgxLogger(appName))
}

// Close closes the log file, if one is open
func Close() error {
	if logFile == nil {
		return nil
	}
	return logFile.Close()
}

// kgxLogger returns a logger that writes to stderr (or the log file) and sanitizes log entries
func kgxLogger(appName string) *slog.Logger {
	level := getLogLevel()
	if level == pfconstants.LogLevelOff {
		return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	}

	handlerOptions := &slog.HandlerOptions{
		Level: level,

		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			sanitized := sanitize.Instance.SanitizeKeyValue(a.Key, a.Value.Any())

			return slog.Attr{
				Key:   a.Key,
				Value: slog.AnyValue(sanitized),
			}
		},
	}
	return slog.New(slog.NewJSONHandler(logOutput(), handlerOptions)).With("source", appName)
}

func logOutput() io.Writer {
	path := os.Getenv(constants.EnvLogFile)
	if path == "" {
		return os.Stderr
	}
	logFile = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    50, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
	return logFile
}

func getLogLevel() slog.Leveler {
	levelEnv := os.Getenv(constants.EnvLogLevel)

	switch strings.ToLower(levelEnv) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return pfconstants.LogLevelOff
	}
}
