package config

// Rlinkfile represents the structure of the rlink.yaml options file.
type Rlinkfile struct {
	Version        string   `yaml:"version"`
	Keys           []string `yaml:"keys"`
	Flavor         string   `yaml:"flavor"`
	RerunIfChanged string   `yaml:"rerunIfChanged"`
}
