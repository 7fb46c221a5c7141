package searcher

type settings struct {
	depth   int
	model   Model
	metrics Collector
}

type Option func(s *settings)

// WithDepth sets the depth limit D. Children of the root are searched at
// depth 0 and a node deeper than D is evaluated instead of expanded.
func WithDepth(depth int) Option {
	return func(s *settings) {
		if depth >= Greedy {
			s.depth = depth
		}
	}
}

func WithModel(model Model) Option {
	return func(s *settings) {
		s.model = model
	}
}

func WithMetrics() Option {
	return func(s *settings) {
		s.metrics = NewCollector()
	}
}
