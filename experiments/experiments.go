package experiments

import (
	"context"
	"fmt"

	"blokus/agent"
	"blokus/engine"
	"blokus/experiments/metrics"
	"blokus/game"
	"blokus/gamemaster"
	"blokus/meta"
	"blokus/player"
	"blokus/searcher"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// Experiment is a set of match ups, each played Games times. Seats rotate
// between games so every config gets to start.
type Experiment struct {
	Name         string
	Configs      []metrics.AgentConfig
	MatchUps     [][game.Players]metrics.AgentConfig
	Games        int // Per match up
	Parallel     int
	Dimension    int
	BonusSquares int
	Seed         uint64
	OutDir       string // Records are not written when empty
	// Protocol referees games over the line protocol, each seat running
	// its agent behind a client, instead of calling the agents directly.
	Protocol bool
}

// FromConfig fills the shared settings of an experiment from cfg.
func FromConfig(name string, cfg meta.Config) Experiment {
	return Experiment{
		Name:         name,
		Games:        cfg.Games,
		Parallel:     cfg.Parallel,
		Dimension:    cfg.Dimension,
		BonusSquares: cfg.BonusSquares,
		Seed:         cfg.Seed,
		OutDir:       cfg.OutDir,
	}
}

// SearchConfig describes the search agent cfg configures.
func SearchConfig(id int, cfg meta.Config) (metrics.AgentConfig, error) {
	model, err := searcher.ParseModel(cfg.Model)
	if err != nil {
		return metrics.AgentConfig{}, err
	}
	return metrics.AgentConfig{ID: id, Kind: "search", Depth: cfg.Depth, Model: model, Budget: cfg.Budget, K: cfg.K, Radius: cfg.Radius}, nil
}

// RunSelfPlay plays the configured agent against copies of itself.
func RunSelfPlay(ctx context.Context, cfg meta.Config) (*metrics.Collector, error) {
	config, err := SearchConfig(1, cfg)
	if err != nil {
		return nil, err
	}
	exp := FromConfig("selfplay", cfg)
	exp.Configs = []metrics.AgentConfig{config}
	exp.MatchUps = [][game.Players]metrics.AgentConfig{{config, config, config, config}}
	return Run(ctx, exp)
}

// RunProtocolExperiment is RunSelfPlay with every move passing through the
// driver protocol.
func RunProtocolExperiment(ctx context.Context, cfg meta.Config) (*metrics.Collector, error) {
	config, err := SearchConfig(1, cfg)
	if err != nil {
		return nil, err
	}
	exp := FromConfig("protocol", cfg)
	exp.Protocol = true
	exp.Configs = []metrics.AgentConfig{config}
	exp.MatchUps = [][game.Players]metrics.AgentConfig{{config, config, config, config}}
	return Run(ctx, exp)
}

// RunDepthExperiment pits search agents of increasing depth, up to the
// configured one, against three random agents.
func RunDepthExperiment(ctx context.Context, cfg meta.Config) (*metrics.Collector, error) {
	baseline := metrics.AgentConfig{ID: 0, Kind: "random"}
	exp := FromConfig("depth", cfg)
	exp.Configs = []metrics.AgentConfig{baseline}
	for depth := searcher.Greedy; depth <= cfg.Depth; depth++ {
		config, err := SearchConfig(len(exp.Configs), cfg)
		if err != nil {
			return nil, err
		}
		config.Depth = depth
		config.Budget = 0
		exp.Configs = append(exp.Configs, config)
		exp.MatchUps = append(exp.MatchUps, [game.Players]metrics.AgentConfig{config, baseline, baseline, baseline})
	}
	return Run(ctx, exp)
}

// RunModelExperiment seats two max^n agents against two paranoid agents of
// the configured depth.
func RunModelExperiment(ctx context.Context, cfg meta.Config) (*metrics.Collector, error) {
	maxn, err := SearchConfig(1, cfg)
	if err != nil {
		return nil, err
	}
	maxn.Model = searcher.MaxN
	paranoid := maxn
	paranoid.ID = 2
	paranoid.Model = searcher.Paranoid

	exp := FromConfig("model", cfg)
	exp.Configs = []metrics.AgentConfig{maxn, paranoid}
	exp.MatchUps = [][game.Players]metrics.AgentConfig{
		{maxn, paranoid, maxn, paranoid},
		{maxn, maxn, paranoid, paranoid},
	}
	return Run(ctx, exp)
}

type task struct {
	index int
	seats [game.Players]metrics.AgentConfig
	seed  uint64
}

// Run plays every game of exp, at most exp.Parallel at a time, and writes
// the records under exp.OutDir. The first failing game cancels the rest.
func Run(ctx context.Context, exp Experiment) (*metrics.Collector, error) {
	log.Info().Msgf("starting %s experiment...", exp.Name)

	var tasks []task
	for _, matchUp := range exp.MatchUps {
		for i := 0; i < exp.Games; i++ {
			var seats [game.Players]metrics.AgentConfig
			for p := range seats {
				seats[p] = matchUp[(p+i)%game.Players]
			}
			tasks = append(tasks, task{index: len(tasks), seats: seats, seed: exp.Seed + uint64(len(tasks))})
		}
	}

	collector := metrics.NewCollector()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(exp.Parallel, 1))
	for _, t := range tasks {
		t := t
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			record, moves, err := playGame(t, exp)
			if err != nil {
				return fmt.Errorf("game %d: %w", t.index, err)
			}
			collector.Add(record, moves)
			log.Info().Msgf("completed game %d of %d with winners %v", t.index+1, len(tasks), record.Winners)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return collector, err
	}
	log.Info().Msgf("completed %s experiment", exp.Name)

	if exp.OutDir == "" {
		return collector, nil
	}
	if err := store(exp, collector); err != nil {
		return collector, err
	}
	return collector, nil
}

func store(exp Experiment, collector *metrics.Collector) error {
	writer, err := metrics.NewWriter(exp.OutDir, exp.Name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(exp.Configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(collector.Games()); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(collector.Moves()); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored records in %s", writer.Dir())
	return nil
}

func playGame(t task, exp Experiment) (metrics.GameRecord, []metrics.MoveRecord, error) {
	rng := rand.New(rand.NewSource(t.seed))

	var agents [game.Players]agent.Agent
	for p, config := range t.seats {
		agents[p] = newAgent(config, rng.Uint64())
	}
	state := game.NewGame(exp.Dimension, randomBonus(rng, exp.Dimension, exp.BonusSquares), game.StandardPieces())

	var e engine.Engine = engine.LocalEngine(state, agents)
	if exp.Protocol {
		var seats [game.Players]gamemaster.Seat
		for p, a := range agents {
			seats[p] = player.NewPlayer(a)
		}
		e = gamemaster.NewGameMaster(state, seats)
	}
	result, err := e.Run()
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	record := metrics.GameRecord{
		ID:    uuid.NewString(),
		Index: t.index,
		GameMetric: metrics.GameMetric{
			Scores:    result.Scores,
			Winners:   result.Winners,
			Moves:     result.Moves,
			Passes:    result.Passes,
			StartTime: result.StartTime,
			EndTime:   result.EndTime,
			Duration:  result.Duration,
		},
	}
	for p, config := range t.seats {
		record.Seats[p] = config.ID
	}
	moves := make([]metrics.MoveRecord, len(result.Records))
	for i, r := range result.Records {
		moves[i] = metrics.MoveRecord{
			Game:         record.ID,
			Step:         r.Step,
			Player:       r.Player,
			Agent:        record.Seats[r.Player],
			Pass:         r.Pass,
			SearchMetric: r.Metric,
		}
	}
	return record, moves, nil
}

func newAgent(config metrics.AgentConfig, seed uint64) agent.Agent {
	if config.Kind == "random" {
		return agent.NewRandomAgent(seed)
	}
	return agent.NewSearchAgent(
		agent.WithDepth(config.Depth),
		agent.WithModel(config.Model),
		agent.WithBudget(config.Budget),
		agent.WithEvaluator(game.Evaluator{K: config.K, Radius: config.Radius}),
		agent.WithMetrics(),
	)
}

// randomBonus draws n distinct squares, avoiding the home corners.
func randomBonus(rng *rand.Rand, dimension, n int) *game.BonusSquares {
	board := game.NewBoard(dimension)
	corners := make(map[game.Point]bool, game.Players)
	for p := 0; p < game.Players; p++ {
		corners[board.HomeCorner(p)] = true
	}
	var cells []game.Point
	for _, i := range rng.Perm(dimension * dimension) {
		if len(cells) == n {
			break
		}
		p := game.Point{X: i / dimension, Y: i % dimension}
		if !corners[p] {
			cells = append(cells, p)
		}
	}
	return game.NewBonusSquares(cells...)
}
