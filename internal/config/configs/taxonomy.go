package configs

// Taxonomy selects where the mapping tables come from. With an empty Dir the
// tables embedded in the binary are used and Watch is ignored.
type Taxonomy struct {
	Dir   string `env:"DIR"`
	Watch bool   `env:"WATCH" envDefault:"false"`
}
