package logger

import (
	"strings"

	"github.com/gookit/slog"
	"github.com/gookit/slog/handler"
)

// Fields carries structured key/value pairs for a single log line.
type Fields map[string]any

// Log is the process-wide logger. It starts at info level so packages can log
// before Init runs (tests, early start-up).
var Log = New("info")

// Init replaces the global logger with one at the given level. Unknown or
// empty levels fall back to info.
func Init(level string) {
	Log = New(level)
}

// New builds a gookit/slog logger writing JSON lines to the console.
func New(level string) *slog.Logger {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		level = "info"
	}
	logLevel := slog.LevelByName(level)

	var levels slog.Levels
	for _, lv := range slog.AllLevels {
		if lv <= logLevel {
			levels = append(levels, lv)
		}
	}

	h := handler.NewConsoleHandler(levels)
	formatter := slog.NewJSONFormatter(func(f *slog.JSONFormatter) {
		f.Fields = []string{
			slog.FieldKeyDatetime,
			slog.FieldKeyLevel,
			slog.FieldKeyMessage,
		}
		f.Aliases = slog.StringMap{
			slog.FieldKeyDatetime: "datetime",
			slog.FieldKeyLevel:    "level",
			slog.FieldKeyMessage:  "message",
		}
		f.TimeFormat = "2006-01-02T15:04:05"
	})
	h.SetFormatter(formatter)

	return slog.NewWithHandlers(h)
}

func InfoWithFields(msg string, fields Fields) {
	Log.WithFields(slog.M(fields)).Info(msg)
}

func DebugWithFields(msg string, fields Fields) {
	Log.WithFields(slog.M(fields)).Debug(msg)
}

func WarnWithFields(msg string, fields Fields) {
	Log.WithFields(slog.M(fields)).Warn(msg)
}

func ErrorWithFields(msg string, fields Fields) {
	Log.WithFields(slog.M(fields)).Error(msg)
}
