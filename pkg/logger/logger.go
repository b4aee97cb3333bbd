package logger

import (
	"log/slog"
	"os"
)

var log *slog.Logger

// Init sets up the process logger. Production logs JSON, everything else gets
// the text handler with debug enabled.
func Init(env string) {
	var handler slog.Handler

	if env == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	log = slog.New(handler)
	slog.SetDefault(log)
}

func get() *slog.Logger {
	if log == nil {
		Init("development")
	}
	return log
}

func Debug(msg string, args ...any) {
	get().Debug(msg, normalize(args)...)
}

func Info(msg string, args ...any) {
	get().Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	get().Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	get().Error(msg, normalize(args)...)
}

func Fatal(msg string, args ...any) {
	get().Error(msg, normalize(args)...)
	os.Exit(1)
}

// normalize lets call sites pass bare errors or values without key pairing.
func normalize(args []any) []any {
	out := make([]any, 0, len(args))
	var loose []any

	for _, arg := range args {
		switch v := arg.(type) {
		case slog.Attr:
			out = append(out, v)
		case error:
			out = append(out, slog.Any("error", v))
		default:
			loose = append(loose, arg)
		}
	}

	for len(loose) >= 2 {
		if key, ok := loose[0].(string); ok {
			out = append(out, slog.Any(key, loose[1]))
			loose = loose[2:]
			continue
		}
		out = append(out, slog.Any("detail", loose[0]))
		loose = loose[1:]
	}
	if len(loose) == 1 {
		out = append(out, slog.Any("detail", loose[0]))
	}

	return out
}
