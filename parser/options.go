package parser

import (
	"log/slog"
	"os"
)

// Option configures a Parser at construction time.
type Option func(*Parser)

// WithBase supplies the base path imported file paths are resolved
// relative to. Without it, import paths are validated as given.
func WithBase(base string) Option {
	return func(p *Parser) { p.base = base }
}

// WithoutImportRewrite disables the one-shot "contracts/contracts" →
// "contracts" heuristic rewrite applied to localized import paths.
func WithoutImportRewrite() Option {
	return func(p *Parser) { p.disableImportRewrite = true }
}

// WithLogger supplies a logger the parser emits progress and failure
// diagnostics to. Without it, the parser builds its own from
// HUFF_PARSER_DEBUG.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) { p.logger = logger }
}

// defaultLogger builds a stderr text handler with the timestamp key
// stripped. It logs at Warn and above (so Error records still appear)
// unless HUFF_PARSER_DEBUG is set, which lowers the level to Debug.
func defaultLogger() *slog.Logger {
	level := slog.LevelWarn
	if os.Getenv("HUFF_PARSER_DEBUG") != "" {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})

	return slog.New(handler)
}
