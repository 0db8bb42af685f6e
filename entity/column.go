package entity

// Column describes one project table column in layout.yaml.
type Column struct {
	Field  string `yaml:"field"`
	Title  string `yaml:"title,omitempty"`
	Width  int    `yaml:"width"`
	Format string `yaml:"format,omitempty"`
	Hidden bool   `yaml:"hidden,omitempty"`
}
