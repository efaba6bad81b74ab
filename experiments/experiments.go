package experiments

import (
	"runtime"

	"gameplayer/engine"
	"gameplayer/experiments/metrics"
	"gameplayer/game"
	"gameplayer/meta"
	"gameplayer/player"
	"gameplayer/tictactoe"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Depth: 0},
	{ID: 2, Depth: 1},
	{ID: 3, Depth: 2},
	{ID: 4, Depth: 4},
}

// RunDepthExperiment pairs shallow searchers against a full depth baseline and
// writes the records under dir.
func RunDepthExperiment(dir string, numGames int) error {
	baseline := metrics.AgentConfig{ID: 0, Depth: meta.MaxDepth}
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	return runExperiment("depth", dir, numGames, append(depthConfigs, baseline), matchUps)
}

type matchUpResult struct {
	games []metrics.GameRecord
	moves [][]metrics.MoveMetric
}

func runExperiment(name, dir string, numGames int, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) error {
	log.Info().Msgf("starting %s experiment...", name)

	// Matchups run concurrently, the games of one matchup in order
	results := make([]matchUpResult, len(matchUps))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for mi, matchUp := range matchUps {
		mi, matchUp := mi, matchUp
		g.Go(func() error {
			config1, config2 := matchUp[0], matchUp[1]
			log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

			for i := 0; i < numGames; i++ {
				// Alternate which agent opens
				x, o := config1, config2
				if i%2 == 1 {
					x, o = config2, config1
				}
				record, moveMetrics, err := runGame(x, o, meta.Seed+uint64(mi*numGames+i))
				if err != nil {
					return errors.Wrapf(err, "matchup %d game %d", mi+1, i+1)
				}
				results[mi].games = append(results[mi].games, record)
				results[mi].moves = append(results[mi].moves, moveMetrics)

				log.Info().Msgf("completed matchup %d of %d game %d with winner: %q", mi+1, len(matchUps), i+1, record.Winner)
			}
			log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	log.Info().Msgf("completed %s experiment", name)

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	for _, result := range results {
		for i, record := range result.games {
			count++
			record.ID = count
			gameRecords = append(gameRecords, record)
			for _, mm := range result.moves[i] {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}
		}
	}

	return writeRecords(name, dir, configs, gameRecords, moveRecords)
}

func writeRecords(name, dir string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(dir, name)
	if err != nil {
		return errors.Wrap(err, "failed to create experiment writer")
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return errors.Wrap(err, "failed to store agent configs")
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return errors.Wrap(err, "failed to write game records")
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return errors.Wrap(err, "failed to write move records")
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}

// runGame plays one game from a random opening move by x. The opening is not
// part of the move records.
func runGame(x, o metrics.AgentConfig, seed uint64) (metrics.GameRecord, []metrics.MoveMetric, error) {
	rng := rand.New(rand.NewSource(seed))
	opening := rng.Intn(tictactoe.Cells)

	state := tictactoe.NewState()
	row, column := tictactoe.ToPosition(opening)
	if err := state.Move(row, column); err != nil {
		return metrics.GameRecord{}, nil, err
	}

	e := engine.LocalEngineFrom(state, createPlayer(game.First, x), createPlayer(game.Second, o))
	gameMetric, moveMetrics, err := e.Run()
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	return metrics.GameRecord{
		AgentX:     x.ID,
		AgentO:     o.ID,
		Opening:    opening,
		GameMetric: gameMetric,
	}, moveMetrics, nil
}

func createPlayer(id game.PlayerID, config metrics.AgentConfig) *player.ComputerPlayer {
	return player.NewComputerPlayer(id, player.WithDepth(config.Depth), player.WithMetrics())
}
