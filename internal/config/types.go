package config

// Manifest is the embed manifest: which widgets the host mounts, with what
// attributes, under which theme.
type Manifest struct {
	Version   string            `yaml:"version" validate:"required,semver"`
	ThemeMode string            `yaml:"theme_mode,omitempty" validate:"omitempty,oneof=dark light"`
	Theme     map[string]string `yaml:"theme,omitempty"`
	Widgets   []Widget          `yaml:"widgets" validate:"required,min=1,dive"`
}

// Widget declares one mounted widget instance.
type Widget struct {
	Tag        string            `yaml:"tag" validate:"required,widget_tag"`
	Attributes map[string]string `yaml:"attributes,omitempty"`
}
