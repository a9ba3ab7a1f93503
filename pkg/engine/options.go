package engine

type Options struct {
	// Depth is the full-width search depth used by Analyze and FullSearch.
	Depth int
	// QuietLimit, DropLimit and SuccessionLimit cap the candidates the
	// one-ply selector looks at. Captures are never capped.
	QuietLimit      int
	DropLimit       int
	SuccessionLimit int
	// Jitter is the upper bound of the random tie breaker.
	Jitter float64
	// FullSearch makes TryBestMove play the negamax best action instead of
	// the one-ply heuristic choice.
	FullSearch bool
}

func NewOptions() Options {
	return Options{
		Depth:           3,
		QuietLimit:      15,
		DropLimit:       5,
		SuccessionLimit: 3,
		Jitter:          0.5,
		FullSearch:      false,
	}
}
