package main

import (
	"context"
	"fmt"

	"github.com/learnkick/learnkick-admin/internal/config"
	"github.com/learnkick/learnkick-admin/internal/container"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app carries what every subcommand needs once the root pre-run has loaded
// settings and built the container.
type app struct {
	configFile string
	logLevel   string
	output     string

	docsCorpus   string
	docsLanguage string

	ctx       context.Context
	container *container.Container
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "learnkick",
		Short: "LearnKick admin tooling",
		Long: `Work with LearnKick question banks and the admin documentation:
export and import questions as CSV, filter question collections and search
the help articles.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.configFile, "config", "c", "", "config file (default: ./learnkick.yaml or $HOME/.learnkick/learnkick.yaml)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVarP(&a.output, "output", "o", "", "output format (table, json)")

	cmd.AddCommand(newQuestionsCmd(a), newDocsCmd(a))
	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	settings, err := config.Load(a.configFile)
	if err != nil {
		return err
	}

	if a.logLevel != "" {
		settings.Log.Level = a.logLevel
	}
	if a.output != "" {
		if err := config.ValidateOutputFormat(a.output); err != nil {
			return err
		}
		settings.Output.Format = a.output
	}
	if a.docsCorpus != "" {
		settings.Docs.Corpus = a.docsCorpus
	}
	if a.docsLanguage != "" {
		settings.Docs.Language = a.docsLanguage
	}

	c, err := container.New(settings)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	config.SetOutput(cmd.ErrOrStderr())

	a.container = c
	a.ctx = config.NewRunContext(cmd.Context(), cmd.CommandPath())

	config.WithContext(a.ctx).WithFields(logrus.Fields{
		"output":   settings.Output.Format,
		"language": settings.Docs.Language,
	}).Debug("Settings loaded")
	return nil
}

func (a *app) jsonOutput() bool {
	return a.container.Settings.Output.Format == config.OutputJSON
}
