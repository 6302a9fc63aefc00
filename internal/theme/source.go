package theme

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Source supplies raw token values from the embedding host. Lookup returns
// the raw value and whether the token was present at all.
type Source interface {
	Lookup(name string) (string, bool)
}

// MapSource serves tokens from a fixed map.
type MapSource map[string]string

// Lookup implements Source.
func (m MapSource) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// EnvSource reads tokens from environment variables of the form
// IV_TOKEN_<NAME>, with dashes mapped to underscores.
type EnvSource struct{}

// Lookup implements Source.
func (EnvSource) Lookup(name string) (string, bool) {
	key := "IV_TOKEN_" + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
	return os.LookupEnv(key)
}

// FileSource loads a flat YAML document of token overrides. A missing or
// unreadable file yields an empty source rather than an error: token
// resolution always succeeds by falling back to defaults.
func FileSource(path string) Source {
	data, err := os.ReadFile(path)
	if err != nil {
		return MapSource{}
	}
	values := map[string]string{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return MapSource{}
	}
	return MapSource(values)
}

// MultiSource tries each source in order and returns the first present value.
type MultiSource []Source

// Lookup implements Source.
func (ms MultiSource) Lookup(name string) (string, bool) {
	for _, s := range ms {
		if v, ok := s.Lookup(name); ok {
			return v, true
		}
	}
	return "", false
}
