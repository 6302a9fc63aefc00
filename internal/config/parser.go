package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	iverrors "github.com/intentvault/widgets/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseManifest loads an embed manifest from disk, validates it against the
// set of defined widget tags, and returns the resulting model.
func ParseManifest(path string, defined func(tag string) bool) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, iverrors.NewManifestError(path, "cannot read manifest", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, iverrors.NewManifestError(path, fmt.Sprintf("invalid YAML near line %d", extractLine(err)), err)
	}

	if err := ValidateManifest(&m, defined); err != nil {
		return nil, err
	}

	return &m, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
