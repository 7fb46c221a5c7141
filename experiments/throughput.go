package experiments

import (
	"context"
	"time"

	"blokus/experiments/metrics"
	"blokus/game"
	"blokus/meta"
	"blokus/searcher"

	"github.com/rs/zerolog/log"
)

type Throughput struct {
	Agent    int // AgentConfig.ID
	Depth    int
	Searches int
	Nodes    int
	Leaves   int
	Duration time.Duration
}

// PerSecond returns the searched positions, interior and cutoff, per second.
func (t Throughput) PerSecond() float64 {
	if t.Duration <= 0 {
		return 0
	}
	return float64(t.Nodes+t.Leaves) / t.Duration.Seconds()
}

// RunThroughputExperiment measures search speed per depth. Every game seats
// four copies of one config so all players search at the same depth.
func RunThroughputExperiment(ctx context.Context, cfg meta.Config) ([]Throughput, error) {
	exp := FromConfig("throughput", cfg)
	for depth := searcher.Greedy; depth <= cfg.Depth; depth++ {
		config, err := SearchConfig(len(exp.Configs)+1, cfg)
		if err != nil {
			return nil, err
		}
		config.Depth = depth
		config.Budget = 0
		exp.Configs = append(exp.Configs, config)
		exp.MatchUps = append(exp.MatchUps, [game.Players]metrics.AgentConfig{config, config, config, config})
	}

	collector, err := Run(ctx, exp)
	if err != nil {
		return nil, err
	}
	summary := Summarize(exp.Configs, collector.Moves())
	for _, t := range summary {
		log.Info().Msgf("depth %d: %d searches, %.0f positions/s", t.Depth, t.Searches, t.PerSecond())
	}
	return summary, nil
}

// Summarize adds up the searches of each config. Passes and moves played
// without searching are left out.
func Summarize(configs []metrics.AgentConfig, moves []metrics.MoveRecord) []Throughput {
	summary := make([]Throughput, len(configs))
	index := make(map[int]int, len(configs))
	for i, c := range configs {
		summary[i] = Throughput{Agent: c.ID, Depth: c.Depth}
		index[c.ID] = i
	}
	for _, m := range moves {
		i, ok := index[m.Agent]
		if !ok || m.Pass || m.Nodes+m.Leaves == 0 {
			continue
		}
		summary[i].Searches++
		summary[i].Nodes += m.Nodes
		summary[i].Leaves += m.Leaves
		summary[i].Duration += m.Duration
	}
	return summary
}
