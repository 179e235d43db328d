package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/recruitment-backend/internal/config"
)

// emailAttrKeys are attribute keys whose values are recipient addresses.
// They are masked in every handler so mail logs never carry full addresses.
var emailAttrKeys = map[string]bool{
	"email": true,
	"to":    true,
}

// NewLogger creates a *slog.Logger based on the provided LogConfig
// and sets it as the default logger via slog.SetDefault.
//
// Format "json" produces structured JSON output (production).
// Format "text" produces human-readable output with source info (development).
// Level is one of: debug, info, warn, error (case-insensitive); defaults to info.
// Output is always os.Stderr.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := slog.New(newHandler(os.Stderr, cfg))
	slog.SetDefault(logger)
	return logger
}

func newHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		AddSource:   strings.EqualFold(cfg.Format, "text"),
		ReplaceAttr: maskEmails,
	}

	if strings.EqualFold(cfg.Format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func maskEmails(_ []string, a slog.Attr) slog.Attr {
	if !emailAttrKeys[a.Key] || a.Value.Kind() != slog.KindString {
		return a
	}
	return slog.String(a.Key, MaskEmail(a.Value.String()))
}

// MaskEmail keeps the first character of the local part and the domain:
// "jane.doe@example.com" becomes "j***@example.com".
func MaskEmail(addr string) string {
	at := strings.LastIndexByte(addr, '@')
	if at <= 0 {
		return "***"
	}
	return addr[:1] + "***" + addr[at:]
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
