package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/pracucci/tetrisengine/pkg/engine"
	"github.com/pracucci/tetrisengine/pkg/logging"
)

var (
	playGamemode string
	playRotation string
	playSeed     int64
	playPieces   int
	playVerbose  bool
)

var PlayCmd = &cobra.Command{
	Use:   "play",
	Short: "Run a scripted hard-drop session against the engine and print feedback",
	Run: func(cmd *cobra.Command, args []string) {
		logger := logging.WithComponent(logging.NewLogger(playVerbose), "play")
		if err := runPlay(logger); err != nil {
			fmt.Printf("error: %v\n", err)
		}
	},
}

func init() {
	PlayCmd.Flags().StringVar(&playGamemode, "gamemode", "marathon", "Gamemode: marathon, sprint, ultra, master, endless")
	PlayCmd.Flags().StringVar(&playRotation, "rotation", "ocular", "Rotation system: ocular, classic, super")
	PlayCmd.Flags().Int64Var(&playSeed, "seed", 1, "Random seed for the piece source")
	PlayCmd.Flags().IntVar(&playPieces, "pieces", 100, "Maximum number of pieces to hard-drop before stopping")
	PlayCmd.Flags().BoolVar(&playVerbose, "verbose", false, "Enable verbose debug logging")
}

func parseGamemode(name string) engine.Gamemode {
	switch name {
	case "sprint":
		return engine.Sprint(1)
	case "ultra":
		return engine.Ultra(1)
	case "master":
		return engine.Master()
	case "endless":
		return engine.Endless()
	default:
		return engine.Marathon()
	}
}

func parseRotation(name string) engine.RotationSystem {
	switch name {
	case "classic":
		return engine.RotationClassic
	case "super":
		return engine.RotationSuper
	default:
		return engine.RotationOcular
	}
}

func runPlay(logger log.Logger) error {
	cfg := engine.DefaultConfig()
	cfg.Gamemode = parseGamemode(playGamemode)
	cfg.RotationSystem = parseRotation(playRotation)

	rng := rand.New(rand.NewSource(playSeed))
	game := engine.New(cfg, rng)

	level.Info(logger).Log("msg", "game started", "gamemode", cfg.Gamemode.Name, "rotation", playRotation, "seed", playSeed)

	var t engine.GameTime
	buttons := engine.ButtonsPressed{}
	for i := 0; i < playPieces && game.State.Finish == engine.FinishPlaying; i++ {
		buttons[engine.ButtonDropHard] = true
		t += time.Millisecond
		fb, err := game.Update(&buttons, t)
		logFeedback(logger, fb)
		if err != nil {
			return err
		}

		buttons[engine.ButtonDropHard] = false
		t += 500 * time.Millisecond
		fb, err = game.Update(&buttons, t)
		logFeedback(logger, fb)
		if err != nil {
			return err
		}
	}

	level.Info(logger).Log(
		"msg", "game ended",
		"finish", finishName(game.State.Finish, game.State.GameOverReason),
		"level", game.State.Level,
		"score", game.State.Score,
		"lines_cleared", len(game.State.LinesCleared),
	)
	return nil
}

func finishName(f engine.Finish, reason engine.GameOver) string {
	switch f {
	case engine.FinishCompleted:
		return "completed"
	case engine.FinishGameOver:
		return reason.String()
	default:
		return "playing"
	}
}

func logFeedback(logger log.Logger, events []engine.FeedbackEvent) {
	for _, fb := range events {
		switch fb.Kind {
		case engine.FeedbackPieceLocked:
			level.Info(logger).Log("msg", "piece locked", "shape", fb.PieceLocked.Shape, "time", fb.Time)
		case engine.FeedbackLineClears:
			level.Info(logger).Log("msg", "line clear", "rows", fmt.Sprint(fb.LinesCleared), "delay", fb.LineClearDelay)
		case engine.FeedbackHardDrop:
			level.Debug(logger).Log("msg", "hard drop", "from_y", fb.HardDropFrom.Y, "to_y", fb.HardDropTo.Y)
		case engine.FeedbackAccolade:
			level.Info(logger).Log(
				"msg", "accolade",
				"shape", fb.Accolade.Shape,
				"score_bonus", fb.Accolade.ScoreBonus,
				"spin", fb.Accolade.Spin,
				"perfect_clear", fb.Accolade.PerfectClear,
				"combo", fb.Accolade.Combo,
			)
		case engine.FeedbackDebug:
			level.Debug(logger).Log("msg", fb.Debug)
		}
	}
}
