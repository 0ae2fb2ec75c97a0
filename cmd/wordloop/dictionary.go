package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/wordloop/internal/dictionary"
)

type API string

func (a *API) Set(val string) error {
	for _, api := range allAPIs {
		if val == string(api) {
			*a = api
			return nil
		}
	}
	return fmt.Errorf("invalid API: %s", val)
}

func (a API) String() string {
	return string(a)
}

func (a *API) Type() string {
	return "API"
}

const (
	APIWordsAPIInRapidAPI API = "words_api"
)

var (
	_       pflag.Value = (*API)(nil)
	allAPIs             = []API{APIWordsAPIInRapidAPI}
)

func newDictionaryCommand() *cobra.Command {
	rootCommand := cobra.Command{
		Use:   "dictionary",
		Short: "Look up words in an online dictionary",
	}
	flags := rootCommand.PersistentFlags()

	api := APIWordsAPIInRapidAPI
	flags.Var(&api, "api", fmt.Sprintf("API to use. Possible values are %v", allAPIs))

	var enrich bool
	var learnerID string
	lookupCommand := &cobra.Command{
		Use:   "lookup <word>",
		Short: "Show the definitions of a word, optionally filling in the stored word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := args[0]

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			var reader *dictionary.Reader
			switch api {
			case APIWordsAPIInRapidAPI:
				fallthrough
			default:
				reader = dictionary.NewReader(cfg.Dictionaries.RapidAPI.CacheDirectory, dictionary.Config{
					RapidAPIHost: cfg.Dictionaries.RapidAPI.Host,
					RapidAPIKey:  cfg.Dictionaries.RapidAPI.Key,
				})
			}

			definitions, err := reader.Lookup(ctx, word)
			if err != nil {
				return fmt.Errorf("dictionary.NewReader.Lookup > %w", err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), definitions.Format())
			if !enrich {
				return nil
			}

			s, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = s.Close()
			}()
			item, changed, err := dictionary.NewEnricher(reader, s.items).EnrichWord(ctx, learnerOrDefault(cfg, learnerID), word)
			if err != nil {
				return fmt.Errorf("EnrichWord > %w", err)
			}
			if !changed {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%q already has every field the dictionary provides\n", item.Word)
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Filled in %q from the dictionary\n", item.Word)
			return err
		},
	}
	lookupCommand.Flags().BoolVar(&enrich, "enrich", false, "fill empty fields of the stored word with the dictionary entry")
	lookupCommand.Flags().StringVar(&learnerID, "learner", "", "learner id (defaults to learner.id in the config)")

	rootCommand.AddCommand(lookupCommand)
	return &rootCommand
}
