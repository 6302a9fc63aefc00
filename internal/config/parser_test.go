package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	iverrors "github.com/intentvault/widgets/pkg/errors"
)

func allowAll(string) bool { return true }

func TestParseManifest(t *testing.T) {
	t.Parallel()

	validYAML := `version: "1.0"
theme_mode: dark
widgets:
  - tag: iv-energy-gauge
    attributes:
      ws-url: ws://localhost:9300/telemetry
      threshold-warning: "60"
  - tag: iv-wallet-orb
`

	invalidYAML := `version: [1, 0]
widgets:
  - tag: iv-wallet-orb
`

	missingWidgets := `version: "1.0"
theme_mode: dark
`

	badVersion := `version: "beta"
widgets:
  - tag: iv-wallet-orb
`

	badMode := `version: "1.0"
theme_mode: solarized
widgets:
  - tag: iv-wallet-orb
`

	badTag := `version: "1.0"
widgets:
  - tag: notanelement
`

	cases := []struct {
		name     string
		contents string
		defined  func(string) bool
		assert   func(t *testing.T, m *Manifest, err error)
	}{
		{
			name:     "valid manifest is parsed",
			contents: validYAML,
			defined:  allowAll,
			assert: func(t *testing.T, m *Manifest, err error) {
				require.NoError(t, err)
				require.NotNil(t, m)
				require.Equal(t, "dark", m.ThemeMode)
				require.Len(t, m.Widgets, 2)
				require.Equal(t, "iv-energy-gauge", m.Widgets[0].Tag)
				require.Equal(t, "60", m.Widgets[0].Attributes["threshold-warning"])
			},
		},
		{
			name:     "invalid yaml returns manifest error",
			contents: invalidYAML,
			defined:  allowAll,
			assert: func(t *testing.T, m *Manifest, err error) {
				require.Error(t, err)
				var manifestErr *iverrors.ManifestError
				require.ErrorAs(t, err, &manifestErr)
				require.Contains(t, manifestErr.Message, "invalid YAML")
			},
		},
		{
			name:     "missing widgets returns validation error",
			contents: missingWidgets,
			defined:  allowAll,
			assert: func(t *testing.T, m *Manifest, err error) {
				require.Error(t, err)
				var manifestErr *iverrors.ManifestError
				require.ErrorAs(t, err, &manifestErr)
				require.Contains(t, manifestErr.Path, "widgets")
			},
		},
		{
			name:     "bad version is rejected",
			contents: badVersion,
			defined:  allowAll,
			assert: func(t *testing.T, m *Manifest, err error) {
				require.Error(t, err)
			},
		},
		{
			name:     "unknown theme mode is rejected",
			contents: badMode,
			defined:  allowAll,
			assert: func(t *testing.T, m *Manifest, err error) {
				require.Error(t, err)
			},
		},
		{
			name:     "tag without hyphen is rejected",
			contents: badTag,
			defined:  allowAll,
			assert: func(t *testing.T, m *Manifest, err error) {
				require.Error(t, err)
			},
		},
		{
			name:     "tag unknown to the registry is rejected",
			contents: validYAML,
			defined:  func(tag string) bool { return tag == "iv-wallet-orb" },
			assert: func(t *testing.T, m *Manifest, err error) {
				require.Error(t, err)
				var manifestErr *iverrors.ManifestError
				require.ErrorAs(t, err, &manifestErr)
				require.Contains(t, manifestErr.Message, "unknown widget tag")
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "manifest.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.contents), 0o644))

			m, err := ParseManifest(path, tc.defined)
			tc.assert(t, m, err)
		})
	}
}

func TestParseManifestMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseManifest(filepath.Join(t.TempDir(), "nope.yaml"), allowAll)
	require.Error(t, err)
	var manifestErr *iverrors.ManifestError
	require.ErrorAs(t, err, &manifestErr)
}

func TestValidateManifestNil(t *testing.T) {
	t.Parallel()

	require.Error(t, ValidateManifest(nil, allowAll))
}

func TestValidateManifestNilDefinedSkipsTagCheck(t *testing.T) {
	t.Parallel()

	m := &Manifest{
		Version: "1.0",
		Widgets: []Widget{{Tag: "iv-made-up"}},
	}
	require.NoError(t, ValidateManifest(m, nil))
}
