package configs

// Engine tunes the compilation engine.
type Engine struct {
	// Concurrency bounds how many platforms of one request compile at once.
	// Zero or less means one goroutine per platform.
	Concurrency int `env:"CONCURRENCY" envDefault:"0"`
}
