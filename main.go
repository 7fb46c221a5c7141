package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"blokus/agent"
	"blokus/communication"
	"blokus/experiments"
	"blokus/meta"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	experiment := flag.String("experiment", "", "Run self-play instead of the client: selfplay, protocol, depth, model or throughput")
	depth := flag.Int("depth", meta.DefaultDepth, "Search depth limit, -1 for greedy")
	model := flag.String("model", "maxn", "Search model: maxn or paranoid")
	budget := flag.Duration("budget", meta.DefaultBudget, "Time budget per move, 0 searches at the depth limit only")
	games := flag.Int("games", meta.GAMES, "Games per match up")
	logLevel := flag.String("log-level", "info", "Log level")
	flag.Parse()

	cfg := meta.Default()
	if *configPath != "" {
		loaded, err := meta.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		cfg = loaded
	}
	// Flags given explicitly win over the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "depth":
			cfg.Depth = *depth
		case "model":
			cfg.Model = *model
		case "budget":
			cfg.Budget = *budget
		case "games":
			cfg.Games = *games
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *experiment != "" {
		runExperiment(ctx, *experiment, cfg)
		return
	}
	runClient(ctx, cfg)
}

// runClient plays one seat against the driver on stdin and stdout. Logs go
// to stdout as DEBUG lines, which the driver ignores.
func runClient(ctx context.Context, cfg meta.Config) {
	stream := communication.NewStream(os.Stdin, os.Stdout)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: stream.Debug(), NoColor: true, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()

	options, err := agent.FromConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid agent config")
	}
	client := communication.NewClient(stream, agent.NewSelector(agent.NewSearchAgent(options...)))
	if err := client.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client stopped")
	}
}

func runExperiment(ctx context.Context, name string, cfg meta.Config) {
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	}

	var err error
	switch name {
	case "selfplay":
		_, err = experiments.RunSelfPlay(ctx, cfg)
	case "protocol":
		_, err = experiments.RunProtocolExperiment(ctx, cfg)
	case "depth":
		_, err = experiments.RunDepthExperiment(ctx, cfg)
	case "model":
		_, err = experiments.RunModelExperiment(ctx, cfg)
	case "throughput":
		_, err = experiments.RunThroughputExperiment(ctx, cfg)
	default:
		err = fmt.Errorf("unknown experiment %q", name)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s experiment failed", name)
	}
}
