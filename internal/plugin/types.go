package plugin

// Manifest is the decoded plugin.yaml.
type Manifest struct {
	Name           string         `yaml:"name" json:"name" validate:"required"`
	Version        string         `yaml:"version" json:"version" validate:"required"`
	Description    string         `yaml:"description,omitempty" json:"description,omitempty"`
	Author         string         `yaml:"author,omitempty" json:"author,omitempty"`
	MinHostVersion string         `yaml:"min_host_version,omitempty" json:"min_host_version,omitempty"`
	Kinds          []KindManifest `yaml:"kinds" json:"kinds" validate:"required,min=1,unique=Name,dive"`

	// Path is the file the manifest was read from; empty for in-memory manifests.
	Path string `yaml:"-" json:"-"`
}

// KindManifest declares one contributed kind.
type KindManifest struct {
	Name     string `yaml:"name" json:"name" validate:"required"`
	Label    string `yaml:"label,omitempty" json:"label,omitempty"`
	Icon     string `yaml:"icon,omitempty" json:"icon,omitempty"`
	Base     string `yaml:"base" json:"base" validate:"required"`
	Shortcut string `yaml:"shortcut,omitempty" json:"shortcut,omitempty"`
}
