package main

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/germanamz/evalbridge/pkg/config"
	"github.com/germanamz/evalbridge/pkg/modeladapter"
)

// defaultConfigFile is used when -config is not given and the file exists.
const defaultConfigFile = "evalbridge.yaml"

// setup is the composition root: it loads the .env file, reads the
// environment and config, and returns a logging adapter.
func setup(opts options, logOut io.Writer) (modeladapter.Model, error) {
	if err := config.LoadDotEnv(opts.envFile); err != nil {
		return nil, err
	}

	env, err := config.ReadEnvironment()
	if err != nil {
		return nil, err
	}

	cfg, err := resolveConfig(opts, env)
	if err != nil {
		return nil, err
	}

	level := cfg.Level()
	if opts.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))

	adapter, err := cfg.NewAdapter()
	if err != nil {
		return nil, err
	}

	if cfg.APIKey == "" {
		log.Warn("no API key configured; requests will fail authentication", "env", "OPENROUTER_API_KEY")
	}
	log.Debug("adapter ready", "model", adapter.GetModelName(), "base_url", adapter.BaseURL())

	return modeladapter.WithLogging(adapter, log), nil
}

// resolveConfig applies, from lowest to highest precedence: defaults, the
// config file, the environment, and the -model flag.
func resolveConfig(opts options, env config.Environment) (config.Config, error) {
	cfg := config.Default()

	path := opts.configPath
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			path = defaultConfigFile
		} else if !errors.Is(err, os.ErrNotExist) {
			return config.Config{}, err
		}
	}

	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	cfg.Apply(env)

	if opts.model != "" {
		cfg.Model = opts.model
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}
