package state

// Option applies a configuration option to the InMemoryTracker.
type Option func(*InMemoryTracker)

// WithIDGenerator overrides the id generator used when minting
// partnerships. Tests use this for deterministic ids.
func WithIDGenerator(gen func() string) Option {
	return func(t *InMemoryTracker) {
		if gen != nil {
			t.newID = gen
		}
	}
}
