package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"war/config"
	"war/engine"
	"war/game"
	"war/gamemaster"
	"war/metrics"
)

type options struct {
	scenario  string
	seed      uint64
	mission   string
	logLevel  string
	reportDir string
}

func main() {
	var opts options
	flag.StringVar(&opts.scenario, "scenario", "", "YAML scenario with the board and the player's color; prompts for them when empty")
	flag.Uint64Var(&opts.seed, "seed", 0, "Random seed, 0 picks one")
	flag.StringVar(&opts.mission, "mission", "", "Play this mission instead of drawing one")
	flag.StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	flag.StringVar(&opts.reportDir, "report", "", "Directory for the CSV battle report, none when empty")
	flag.Parse()

	level, err := zerolog.ParseLevel(opts.logLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := run(opts); err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
}

func run(opts options) error {
	var sc *config.Scenario
	if opts.scenario != "" {
		var err error
		sc, err = config.Load(opts.scenario)
		if err != nil {
			return err
		}
		if opts.seed == 0 {
			opts.seed = sc.Seed
		}
		if opts.mission == "" {
			opts.mission = sc.Mission
		}
	}

	if opts.seed == 0 {
		seed, err := game.NewSeed()
		if err != nil {
			return err
		}
		opts.seed = seed
	}
	log.Info().Msgf("using seed %d", opts.seed)

	sessionOptions := []gamemaster.Option{
		gamemaster.WithSource(game.NewSource(opts.seed)),
		gamemaster.WithMission(opts.mission),
		gamemaster.WithMetrics(),
	}

	var e *engine.Engine
	if sc != nil {
		board, err := sc.Board()
		if err != nil {
			return err
		}
		session, err := gamemaster.NewSession(board, sc.PlayerColor, sessionOptions...)
		if err != nil {
			return err
		}
		e = engine.LocalEngine(session, os.Stdin, os.Stdout)
	} else {
		var err error
		e, err = engine.Setup(os.Stdin, os.Stdout, sessionOptions...)
		if err != nil {
			return err
		}
	}

	if err := e.Run(); err != nil {
		return err
	}

	if opts.reportDir == "" {
		return nil
	}
	return writeReport(opts.reportDir, e.Session)
}

func writeReport(dir string, session *gamemaster.Session) error {
	w, err := metrics.NewWriter(dir)
	if err != nil {
		return err
	}
	if err := w.WriteAttackRecords(session.Log()); err != nil {
		return err
	}
	if err := w.WriteSessionMetric(session.Stats()); err != nil {
		return err
	}
	fmt.Printf("Battle report written to %s\n", w.Dir())
	return nil
}
