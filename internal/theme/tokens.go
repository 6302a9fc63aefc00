package theme

// Token names a design token recognized by the resolver. Tokens carry string
// values (colors, border variant names, durations) supplied by the embedding
// host; every token has a hard-coded fallback per mode.
type Token string

const (
	TokenPrimary  Token = "primary"
	TokenAccent   Token = "accent"
	TokenSuccess  Token = "success"
	TokenWarning  Token = "warning"
	TokenDanger   Token = "danger"
	TokenSurface  Token = "surface"
	TokenText     Token = "text"
	TokenMuted    Token = "muted"
	TokenBorder   Token = "border"
	TokenSpacing  Token = "spacing"
	TokenDuration Token = "duration"
	TokenEasing   Token = "easing"
)

// Tokens lists every recognized token in resolution order.
func Tokens() []Token {
	return []Token{
		TokenPrimary,
		TokenAccent,
		TokenSuccess,
		TokenWarning,
		TokenDanger,
		TokenSurface,
		TokenText,
		TokenMuted,
		TokenBorder,
		TokenSpacing,
		TokenDuration,
		TokenEasing,
	}
}

// Mode selects the fallback palette. It mirrors the host's theme-mode
// attribute; any value other than "light" selects the dark palette.
type Mode string

const (
	ModeDark  Mode = "dark"
	ModeLight Mode = "light"
)

// ParseMode normalizes a theme-mode attribute value.
func ParseMode(raw string) Mode {
	if raw == string(ModeLight) {
		return ModeLight
	}
	return ModeDark
}

var darkFallbacks = map[Token]string{
	TokenPrimary:  "#6c5ce7",
	TokenAccent:   "#00d2ff",
	TokenSuccess:  "#22c55e",
	TokenWarning:  "#eab308",
	TokenDanger:   "#ef4444",
	TokenSurface:  "#111827",
	TokenText:     "#f9fafb",
	TokenMuted:    "#64748b",
	TokenBorder:   "rounded",
	TokenSpacing:  "1",
	TokenDuration: "33ms",
	TokenEasing:   "ease-out",
}

var lightFallbacks = map[Token]string{
	TokenPrimary:  "#4c3fb1",
	TokenAccent:   "#0891b2",
	TokenSuccess:  "#16a34a",
	TokenWarning:  "#ca8a04",
	TokenDanger:   "#dc2626",
	TokenSurface:  "#f9fafb",
	TokenText:     "#111827",
	TokenMuted:    "#475569",
	TokenBorder:   "rounded",
	TokenSpacing:  "1",
	TokenDuration: "33ms",
	TokenEasing:   "ease-out",
}

// Fallback returns the built-in default for a token under the given mode.
// Unknown tokens fall back to the empty string.
func Fallback(mode Mode, token Token) string {
	if mode == ModeLight {
		return lightFallbacks[token]
	}
	return darkFallbacks[token]
}
