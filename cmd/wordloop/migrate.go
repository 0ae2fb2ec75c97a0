package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordloop/internal/cli"
	"github.com/at-ishikawa/wordloop/internal/database"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database schema migrations",
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

			applied, err := database.Migrate(cmd.Context(), s.db)
			if err != nil {
				return fmt.Errorf("database.Migrate > %w", err)
			}
			for _, version := range applied {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Applied: %s\n", version)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Migration complete! %d applied\n", len(applied))
			return err
		},
	}
}

func newReplayCommand() *cobra.Command {
	var learnerID string

	command := &cobra.Command{
		Use:   "replay [word]",
		Short: "Rebuild learning states from the practice records",
		Args:  cobra.MaximumNArgs(1),
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

			var word string
			if len(args) > 0 {
				word = args[0]
			}
			return cli.ReplayLearningState(cmd.Context(), s.items, engine, learnerOrDefault(cfg, learnerID), word, cmd.OutOrStdout())
		},
	}
	command.Flags().StringVar(&learnerID, "learner", "", "learner id (defaults to learner.id in the config)")
	return command
}
