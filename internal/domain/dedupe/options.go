package dedupe

type options struct {
	capacityHint int
}

// Option applies a configuration option to a Tracker.
type Option func(*options)

// WithCapacityHint pre-sizes the tracker for about n players.
// Non-positive values are ignored.
func WithCapacityHint(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacityHint = n
		}
	}
}
