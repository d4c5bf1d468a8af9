package libdiff

const (
	DefaultMaxDepth     = 256
	DefaultSeqThreshold = 10_000_000
)

type DiffConfig struct {
	// MaxDepth bounds recursion: dispatching deeper fails with a
	// DepthError and orphan expansion stops adding children.
	MaxDepth int
	// SeqThreshold is the largest len(left)*len(right) for which sequences
	// are aligned exactly. Larger pairs are compared by position.
	SeqThreshold int
	// Stats, if non-nil, is filled in by Diff.
	Stats *Stats
}

type DiffOption func(*DiffConfig)

func MaxDepth(n int) DiffOption {
	return func(c *DiffConfig) {
		c.MaxDepth = n
	}
}

func SeqThreshold(n int) DiffOption {
	return func(c *DiffConfig) {
		c.SeqThreshold = n
	}
}

func WithStats(st *Stats) DiffOption {
	return func(c *DiffConfig) {
		c.Stats = st
	}
}

func newConfig(opts []DiffOption) *DiffConfig {
	cfg := &DiffConfig{
		MaxDepth:     DefaultMaxDepth,
		SeqThreshold: DefaultSeqThreshold,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
