package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordloop/internal/datasync"
	"github.com/at-ishikawa/wordloop/internal/vocabulary"
)

func newVocabCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "vocab",
		Short: "Manage the vocabulary of a learner",
	}
	command.PersistentFlags().String("learner", "", "learner id (defaults to learner.id in the config)")

	command.AddCommand(
		newVocabAddCommand(),
		newVocabImportCommand(),
		newVocabExportCommand(),
	)
	return command
}

func newVocabAddCommand() *cobra.Command {
	var item vocabulary.Item
	var synonyms, antonyms []string
	var difficulty string

	command := &cobra.Command{
		Use:   "add <word>",
		Short: "Add a word to the vocabulary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			learnerFlag, _ := cmd.Flags().GetString("learner")
			learnerID := learnerOrDefault(cfg, learnerFlag)

			newItem, err := vocabulary.NewItem(learnerID, args[0], vocabulary.OriginManual)
			if err != nil {
				return err
			}
			newItem.Definition = item.Definition
			newItem.Translation = item.Translation
			newItem.Example = item.Example
			newItem.PartOfSpeech = item.PartOfSpeech
			newItem.Synonyms = synonyms
			newItem.Antonyms = antonyms
			newItem.Difficulty = vocabulary.Difficulty(difficulty)

			s, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = s.Close()
			}()

			result, err := datasync.NewImporter(s.items, cmd.OutOrStdout()).
				ImportItems(cmd.Context(), learnerID, []vocabulary.Item{*newItem}, datasync.ImportOptions{
					KeepLearningState: true,
					Origin:            vocabulary.OriginManual,
				})
			if err != nil {
				return fmt.Errorf("ImportItems > %w", err)
			}
			if result.ItemsRejected > 0 {
				return fmt.Errorf("word %q was rejected", args[0])
			}
			return nil
		},
	}
	flags := command.Flags()
	flags.StringVar(&item.Definition, "definition", "", "meaning of the word")
	flags.StringVar(&item.Translation, "translation", "", "translation in the learner's language")
	flags.StringVar(&item.Example, "example", "", "example sentence using the word")
	flags.StringVar(&item.PartOfSpeech, "part-of-speech", "", "part of speech")
	flags.StringSliceVar(&synonyms, "synonyms", nil, "comma separated synonyms")
	flags.StringSliceVar(&antonyms, "antonyms", nil, "comma separated antonyms")
	flags.StringVar(&difficulty, "difficulty", string(vocabulary.DifficultyIntermediate), "beginner, intermediate or advanced")
	return command
}

func newVocabImportCommand() *cobra.Command {
	var format datasync.Format
	var opts datasync.ImportOptions

	command := &cobra.Command{
		Use:   "import <file>",
		Short: "Import words from a YAML or XLSX file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if format == "" {
				var err error
				if format, err = datasync.FormatFromPath(path); err != nil {
					return err
				}
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			learnerFlag, _ := cmd.Flags().GetString("learner")
			learnerID := learnerOrDefault(cfg, learnerFlag)

			items, err := datasync.ReadFile(path, format)
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

			opts.Origin = vocabulary.OriginSystem
			result, err := datasync.NewImporter(s.items, cmd.OutOrStdout()).ImportItems(cmd.Context(), learnerID, items, opts)
			if err != nil {
				return fmt.Errorf("ImportItems > %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Imported %s: %d new, %d updated, %d skipped, %d rejected\n",
				filepath.Base(path), result.ItemsNew, result.ItemsUpdated, result.ItemsSkipped, result.ItemsRejected)
			return err
		},
	}
	flags := command.Flags()
	flags.Var(&format, "format", "file format: yaml or xlsx (defaults to the file extension)")
	flags.BoolVar(&opts.DryRun, "dry-run", false, "show what would be imported without writing")
	flags.BoolVar(&opts.UpdateExisting, "update-existing", false, "update the content of words already in the vocabulary")
	flags.BoolVar(&opts.KeepLearningState, "keep-learning-state", false, "keep the learning state stored in the file")
	return command
}

func newVocabExportCommand() *cobra.Command {
	var format datasync.Format

	command := &cobra.Command{
		Use:   "export [file]",
		Short: "Export the vocabulary to a YAML or XLSX file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			learnerFlag, _ := cmd.Flags().GetString("learner")
			learnerID := learnerOrDefault(cfg, learnerFlag)

			if format == "" {
				format = datasync.FormatYAML
			}
			path := filepath.Join(cfg.Outputs.ExportDirectory, learnerID+"."+string(format))
			if len(args) > 0 {
				path = args[0]
				if !cmd.Flags().Changed("format") {
					if format, err = datasync.FormatFromPath(path); err != nil {
						return err
					}
				}
			}

			s, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = s.Close()
			}()

			items, err := datasync.NewExporter(s.items).Export(cmd.Context(), learnerID)
			if err != nil {
				return fmt.Errorf("Export > %w", err)
			}
			if err := datasync.WriteFile(path, format, items); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d words to %s\n", len(items), path)
			return err
		},
	}
	command.Flags().Var(&format, "format", "file format: yaml or xlsx")
	return command
}
