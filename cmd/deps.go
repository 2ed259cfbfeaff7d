package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/viralquiz/internal/config"
	"github.com/abhisek/viralquiz/internal/llm"
	"github.com/abhisek/viralquiz/internal/logging"
	"github.com/abhisek/viralquiz/internal/quizscript"
)

// deps is everything a command needs, built from the config file, the
// environment and flags, in increasing priority.
type deps struct {
	cfg       config.Config
	log       *logrus.Logger
	llmCfg    llm.Config
	provider  llm.Provider
	generator *quizscript.LLMGenerator

	logCloser io.Closer
}

func (d *deps) Close() error {
	return d.logCloser.Close()
}

// loadDeps builds the shared dependencies. When quietLogs is set and no
// log file is configured, log output is discarded so it cannot draw over
// the terminal UI.
func loadDeps(cmd *cobra.Command, quietLogs bool) (*deps, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if v, _ := flags.GetString("log-level"); v != "" {
		cfg.Log.Level = v
	}
	if v, _ := flags.GetString("log-format"); v != "" {
		cfg.Log.Format = v
	}
	if v, _ := flags.GetString("log-file"); v != "" {
		cfg.Log.File = v
	}
	if v, _ := flags.GetString("language"); v != "" {
		cfg.Quiz.Language = v
	}
	if flags.Changed("strict") {
		cfg.Quiz.Strict, _ = flags.GetBool("strict")
	}
	if quietLogs && cfg.Log.File == "" {
		cfg.Log.Output = io.Discard
	}

	log, closer, err := logging.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	llmCfg := llm.ConfigFromEnv()
	cfg.ApplyLLM(&llmCfg)
	if err := llmCfg.Validate(); err != nil {
		log.WithError(err).Warn("LLM provider not configured; generation will fail until a key is set")
	}

	provider, err := llm.NewProvider(cmd.Context(), llmCfg, log)
	if err != nil {
		closer.Close()
		return nil, fmt.Errorf("LLM provider: %w", err)
	}

	return &deps{
		cfg:       cfg,
		log:       log,
		llmCfg:    llmCfg,
		provider:  provider,
		generator: quizscript.New(provider, cfg.QuizConfig(), log),
		logCloser: closer,
	}, nil
}
