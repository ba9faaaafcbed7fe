package minicube

// Option configures a Tracker.
type Option func(*config)

type config struct {
	moveHistory bool
	table       *Table
	start       State
}

func defaultConfig() *config {
	return &config{
		moveHistory: true,
		table:       standardTable,
		start:       Identity(),
	}
}

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), applied moves are stored and accessible via Moves()
// and can be undone. Disable this for long sessions to reduce memory usage.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}

// WithTable sets the move table used to resolve moves.
func WithTable(t *Table) Option {
	return func(c *config) {
		if t != nil {
			c.table = t
		}
	}
}

// WithStart sets the state the tracker starts from and returns to on Reset.
func WithStart(s State) Option {
	return func(c *config) {
		c.start = s
	}
}
