package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

var (
	jwtPattern    = regexp.MustCompile(`^eyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*$`)
	bearerPattern = regexp.MustCompile(`(?i)^(bearer|basic)\s+.+$`)
)

// DefaultRedactOptions returns the masq options applied to every log sink.
// The service handles no credentials itself, but request headers and exporter
// settings can still reach the logs.
func DefaultRedactOptions() []masq.Option {
	opts := make([]masq.Option, 0, 16)

	for _, name := range []string{
		"password", "token", "apiKey", "api_key", "accessToken", "access_token",
		"authorization", "Authorization", "auth", "cookie", "Cookie", "credentials",
	} {
		opts = append(opts, masq.WithFieldName(name))
	}

	return append(opts,
		masq.WithFieldPrefix("secret"),
		masq.WithFieldPrefix("private"),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(bearerPattern),
	)
}

// NewReplaceAttr returns a slog ReplaceAttr hook that redacts sensitive values.
// Extra options extend DefaultRedactOptions.
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(append(DefaultRedactOptions(), opts...)...)
}
