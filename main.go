package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"gameplayer/engine"
	"gameplayer/experiments"
	"gameplayer/game"
	"gameplayer/meta"
	"gameplayer/player"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	second := flag.Bool("second", false, "Play as O, the computer opens")
	depth := flag.Int("depth", meta.MaxDepth, "Search depth of the computer player")
	experiment := flag.Bool("experiment", false, "Run the depth experiment instead of a game")
	numGames := flag.Int("games", meta.NumGames, "Number of games per experiment matchup")
	out := flag.String("out", "experiments", "Directory for experiment records")
	verbose := flag.Bool("v", false, "Log search details")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *experiment {
		if err := experiments.RunDepthExperiment(*out, *numGames); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		return
	}

	if err := play(*second, *depth); err != nil {
		log.Fatal().Err(err).Msg("game failed")
	}
}

// play runs a console game between a human and the computer.
func play(second bool, depth int) error {
	humanID := game.First
	if second {
		humanID = game.Second
	}
	human := player.NewHumanPlayer(humanID, os.Stdin, os.Stdout)
	computer := player.NewComputerPlayer(humanID.Other(), player.WithDepth(depth), player.WithMetrics())

	var e *engine.LocalGame
	if second {
		e = engine.LocalEngine(computer, printing{human})
	} else {
		e = engine.LocalEngine(printing{human}, computer)
	}

	if _, _, err := e.Run(); err != nil {
		return err
	}
	fmt.Print(e.State.Board())
	fmt.Println(e.Result())
	log.Debug().Msg(computer.TableStats())
	return nil
}
