package game

import "time"

// Config holds game configuration options.
type Config struct {
	// QuestionsPerRoom is the number of rounds played in each room.
	QuestionsPerRoom int

	// TickInterval is how often the level timer counts down one unit.
	TickInterval time.Duration

	// Seed for random number generation. Used for reproducible questions.
	// A seed of 0 means a random seed will be generated.
	Seed int64
}

// DefaultConfig returns the options used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		QuestionsPerRoom: 5,
		TickInterval:     time.Second,
	}
}
