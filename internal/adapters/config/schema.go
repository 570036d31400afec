package config

// Goldfile represents the structure of the gold.yaml project manifest.
type Goldfile struct {
	Version   string                 `yaml:"version"`
	Compiler  string                 `yaml:"compiler"`
	Targets   map[string]TargetDTO   `yaml:"targets"`
	Externals map[string]ExternalDTO `yaml:"externals"`
}

// TargetDTO represents a target definition in the manifest.
type TargetDTO struct {
	Kind        string   `yaml:"kind"`
	Sources     []string `yaml:"sources"`
	IncludeDirs []string `yaml:"include_dirs"`
	Deps        []string `yaml:"deps"`
	CFlags      []string `yaml:"cflags"`
	LDFlags     []string `yaml:"ldflags"`
	OutputDir   string   `yaml:"output_dir"`
}

// ExternalDTO represents an external dependency definition in the manifest.
type ExternalDTO struct {
	Kind string `yaml:"kind"`
	Path string `yaml:"path"`
}
