package main

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/i474232898/weather-station/internal/config"
	"github.com/i474232898/weather-station/internal/station"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	script := station.DefaultScript()
	if cfg.ScriptPath != "" {
		script, err = station.LoadScript(cfg.ScriptPath)
		if err != nil {
			sugar.Fatalw("failed to load script", "path", cfg.ScriptPath, "error", err)
		}
	}

	// Displays render to stdout; logs go to stderr.
	s := station.New(os.Stdout, sugar)
	if err := s.Run(script); err != nil {
		sugar.Fatalw("station run failed", "error", err)
	}
}

func newLogger(cfg *config.AppConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	zcfg := zap.NewProductionConfig()
	if cfg.Env == "dev" {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	return zcfg.Build()
}
