package remap

// Option configures a single conversion call.
type Option[A, B any] func(*config[A, B])

type config[A, B any] struct {
	dropSrc func(A)
	dropDst func(B)
}

func newConfig[A, B any](opts []Option[A, B]) config[A, B] {
	var cfg config[A, B]
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSourceDrop registers a cleanup hook for source elements. If the
// conversion aborts, the hook receives every source element that was never
// read, in index order. Elements already consumed by the conversion
// function are not re-dropped.
func WithSourceDrop[A, B any](drop func(A)) Option[A, B] {
	return func(c *config[A, B]) {
		c.dropSrc = drop
	}
}

// WithResultDrop registers a cleanup hook for produced elements. If the
// conversion aborts, the hook receives every result produced before the
// failure, in index order.
func WithResultDrop[A, B any](drop func(B)) Option[A, B] {
	return func(c *config[A, B]) {
		c.dropDst = drop
	}
}
