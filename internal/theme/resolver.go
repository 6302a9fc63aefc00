package theme

import (
	"strconv"
	"strings"
	"time"
)

// Theme is the resolved token table. It is built once at widget mount and is
// read-only afterwards; token sources are not watched for later changes.
type Theme struct {
	mode   Mode
	values map[Token]string
}

// Resolve reads every recognized token from the source, trimming whitespace
// and substituting the mode's fallback when the value is absent or empty.
func Resolve(mode Mode, src Source) Theme {
	values := make(map[Token]string, len(Tokens()))
	for _, token := range Tokens() {
		value := ""
		if src != nil {
			if raw, ok := src.Lookup(string(token)); ok {
				value = strings.TrimSpace(raw)
			}
		}
		if value == "" {
			value = Fallback(mode, token)
		}
		values[token] = value
	}
	return Theme{mode: mode, values: values}
}

// Default resolves a theme with no host overrides.
func Default(mode Mode) Theme {
	return Resolve(mode, nil)
}

// Mode reports which fallback palette the theme was resolved against.
func (t Theme) Mode() Mode {
	return t.mode
}

// Value returns the resolved string for a token. Unresolved themes (the zero
// value) answer with dark-mode fallbacks so partially wired widgets still
// render legibly.
func (t Theme) Value(token Token) string {
	if t.values == nil {
		return Fallback(ModeDark, token)
	}
	return t.values[token]
}

// Spacing returns the spacing token as a cell count. Malformed values fall
// back to the default spacing rather than propagating an error.
func (t Theme) Spacing() int {
	n, err := strconv.Atoi(t.Value(TokenSpacing))
	if err != nil || n < 0 {
		n, _ = strconv.Atoi(Fallback(t.mode, TokenSpacing))
	}
	return n
}

// FrameInterval returns the duration token parsed as the animation frame
// interval. Malformed durations fall back to the built-in default.
func (t Theme) FrameInterval() time.Duration {
	d, err := time.ParseDuration(t.Value(TokenDuration))
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(Fallback(t.mode, TokenDuration))
	}
	return d
}
