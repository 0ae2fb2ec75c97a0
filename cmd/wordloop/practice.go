package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordloop/internal/cli"
	"github.com/at-ishikawa/wordloop/internal/game"
	"github.com/at-ishikawa/wordloop/internal/practice"
	"github.com/at-ishikawa/wordloop/internal/srs"
)

func newPracticeCommand() *cobra.Command {
	var learnerID string
	var count int

	command := &cobra.Command{
		Use:   "practice",
		Short: "Practice today's words interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			s, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = s.Close()
			}()
			engine, closeEngine := newEngine(cfg, s)
			defer closeEngine()

			practiceCLI := cli.NewPracticeCLI(
				engine,
				game.NewScorer(cfg.Games.Bundles()),
				learnerOrDefault(cfg, learnerID),
				cmd.InOrStdin(),
				cmd.OutOrStdout(),
			)
			questionCount, err := practiceCLI.Prepare(cmd.Context(), count)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Starting practice with %d questions. Answer with the option number or the text.\n\n", questionCount)
			return practiceCLI.Run(cmd.Context(), practiceCLI)
		},
	}
	command.Flags().StringVar(&learnerID, "learner", "", "learner id (defaults to learner.id in the config)")
	command.Flags().IntVar(&count, "count", 0, "number of words to practice (defaults to engine.target_count)")
	return command
}

func newPlanCommand() *cobra.Command {
	var learnerID string
	var count int

	command := &cobra.Command{
		Use:   "plan",
		Short: "Show the words planned for today",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			s, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = s.Close()
			}()
			engine, closeEngine := newEngine(cfg, s)
			defer closeEngine()

			plan, err := engine.PlanDailyPractice(cmd.Context(), learnerOrDefault(cfg, learnerID), count)
			if err != nil {
				return fmt.Errorf("engine.PlanDailyPractice > %w", err)
			}
			return writePlan(cmd.OutOrStdout(), plan)
		},
	}
	command.Flags().StringVar(&learnerID, "learner", "", "learner id (defaults to learner.id in the config)")
	command.Flags().IntVar(&count, "count", 0, "number of words to plan (defaults to engine.target_count)")
	return command
}

func writePlan(w io.Writer, plan *practice.DailyPractice) error {
	if _, err := fmt.Fprintf(w, "Plan for %s on %s: %d words\n",
		plan.LearnerID, plan.Date.Format(time.DateOnly), plan.TotalTarget); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "\nReviews (%d):\n", len(plan.ReviewItems))
	for _, item := range plan.ReviewItems {
		due := "now"
		if item.NextReview != nil {
			due = srs.Date(*item.NextReview).Format(time.DateOnly)
		}
		_, _ = fmt.Fprintf(w, "  - %s (%s, due %s)\n", item.Word, item.MasteryLevel, due)
	}
	_, _ = fmt.Fprintf(w, "\nNew words (%d):\n", len(plan.NewItems))
	for _, item := range plan.NewItems {
		_, _ = fmt.Fprintf(w, "  - %s\n", item.Word)
	}
	return nil
}

func newScoreCommand() *cobra.Command {
	gameType := game.GameTypeQuiz
	var correct, total, bestStreak int
	var seconds float64

	command := &cobra.Command{
		Use:   "score",
		Short: "Score a completed game session",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			points, err := game.NewScorer(cfg.Games.Bundles()).ScoreGameSession(gameType, correct, total, seconds, bestStreak)
			if err != nil {
				return fmt.Errorf("ScoreGameSession > %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d\n", points)
			return err
		},
	}
	flags := command.Flags()
	flags.Var(&gameType, "game-type", "game type: quiz or matching")
	flags.IntVar(&correct, "correct", 0, "number of correct answers")
	flags.IntVar(&total, "total", 0, "number of questions")
	flags.Float64Var(&seconds, "time", 0, "time spent in seconds")
	flags.IntVar(&bestStreak, "streak", 0, "longest run of correct answers")
	_ = command.MarkFlagRequired("total")
	return command
}
