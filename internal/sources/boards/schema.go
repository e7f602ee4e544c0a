package boards

// BoardEntry is one board in boards.yaml
type BoardEntry struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// BoardsConfig represents the top-level structure of boards.yaml
type BoardsConfig struct {
	Boards []BoardEntry `yaml:"boards"`
}
