package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/tOgg1/planproof/internal/config"
	"github.com/tOgg1/planproof/internal/dashboard"
	"github.com/tOgg1/planproof/internal/logging"
	"github.com/tOgg1/planproof/internal/planapi"
)

// session is everything a command needs after flags and config are merged.
type session struct {
	cfg      *config.Config
	location *time.Location
	logFile  io.Closer
}

// loadSession merges defaults, the config file, PLANPROOF_* env vars and
// flags, then configures logging. quietConsole keeps logs off the terminal
// unless a log file is configured, which the full-screen UI needs.
func loadSession(opts *globalOptions, quietConsole bool) (*session, error) {
	loader := config.NewLoader()
	if opts.configFile != "" {
		loader.SetConfigFile(opts.configFile)
	}
	if opts.apiURL != "" {
		loader.Set("api.base_url", opts.apiURL)
	}
	if opts.logLevel != "" {
		loader.Set("logging.level", opts.logLevel)
	}
	if opts.logFormat != "" {
		loader.Set("logging.format", opts.logFormat)
	}

	cfg, err := loader.Load()
	if err != nil {
		return nil, &ExitError{Code: 2, Err: err}
	}
	loc, err := cfg.DisplayLocation()
	if err != nil {
		return nil, &ExitError{Code: 2, Err: err}
	}

	s := &session{cfg: cfg, location: loc}
	logCfg := logging.Config{
		Level:        cfg.Logging.Level,
		Format:       cfg.Logging.Format,
		Output:       os.Stderr,
		EnableCaller: cfg.Logging.EnableCaller,
	}
	switch {
	case cfg.Logging.File != "":
		file, err := logging.OpenFile(cfg.Logging.File)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		logCfg.Output = file
		logCfg.Format = "json"
		s.logFile = file
	case quietConsole:
		logCfg.Level = "disabled"
	}
	logging.Init(logCfg)

	logging.Debug().
		Str("config_file", loader.ConfigFileUsed()).
		Str("plan_url", logging.RedactURL(cfg.PlanURL())).
		Msg("configuration loaded")
	return s, nil
}

func (s *session) close() {
	closeQuietly(s.logFile)
}

func (s *session) client() *planapi.Client {
	return planapi.NewClient(s.cfg.PlanURL(),
		planapi.WithTimeout(s.cfg.API.Timeout),
		planapi.WithSchemaCheck(s.cfg.API.SchemaCheck),
	)
}

func (s *session) defaults() dashboard.Defaults {
	return dashboard.Defaults{
		Timezone: s.cfg.Plan.Timezone,
		Variant:  s.cfg.Plan.Variant,
	}
}
