package runtime

// Shared configuration attributes recognized on every widget tag. Unknown
// attributes are ignored.
const (
	AttrAPIURL      = "api-url"
	AttrSocketURL   = "ws-url"
	AttrUserID      = "user-id"
	AttrThemeMode   = "theme-mode"
	AttrAutoConnect = "auto-connect"
)

// Config is the per-instance configuration surface, populated once from the
// host attributes at mount and re-derived per key when an attribute changes
// later.
type Config struct {
	APIURL      string
	SocketURL   string
	UserID      string
	ThemeMode   string
	AutoConnect bool
}

// defaultConfig returns the mount defaults. Auto-connect is enabled unless
// the attribute is the literal string "false".
func defaultConfig() Config {
	return Config{AutoConnect: true}
}

// isConfigAttr reports whether an attribute belongs to the shared surface.
func isConfigAttr(name string) bool {
	switch name {
	case AttrAPIURL, AttrSocketURL, AttrUserID, AttrThemeMode, AttrAutoConnect:
		return true
	}
	return false
}

// withAttr re-derives one configuration key from an attribute value.
func (c Config) withAttr(name, value string) Config {
	switch name {
	case AttrAPIURL:
		c.APIURL = value
	case AttrSocketURL:
		c.SocketURL = value
	case AttrUserID:
		c.UserID = value
	case AttrThemeMode:
		c.ThemeMode = value
	case AttrAutoConnect:
		c.AutoConnect = value != "false"
	}
	return c
}
