package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mendeleevdice/mendeleev-go/internal/cards"
	"github.com/mendeleevdice/mendeleev-go/internal/config"
	"github.com/mendeleevdice/mendeleev-go/internal/game"
	"github.com/mendeleevdice/mendeleev-go/internal/game/dice"
)

var version = "dev" // set via ldflags during build

func main() {
	flags := pflag.NewFlagSet("mendeleev", pflag.ExitOnError)
	configPath := flags.String("config", "", "path to configuration file")
	flags.Int("game.players", 2, "number of players")
	flags.Int64("game.seed", 0, "dice seed (0 = random)")
	flags.String("cards.path", "", "card table TSV (empty = embedded table)")
	flags.String("logging.level", "info", "log level: debug, info, warn, error")
	flags.String("logging.format", "console", "log format: console or json")
	_ = flags.Parse(os.Args[1:])

	// Load configuration
	cfg, err := config.Load(*configPath, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting mendeleev",
		zap.String("version", version),
		zap.String("config", *configPath),
	)

	rules, err := cfg.Game.Rules(logger)
	if err != nil {
		logger.Fatal("invalid game rules", zap.Error(err))
	}

	table, err := cards.Load(cfg.Cards.Path, logger)
	if err != nil {
		logger.Fatal("failed to load card table", zap.Error(err))
	}

	engine := game.NewEngine(logger, rules, dice.NewSource(cfg.Game.Seed))
	gameID, err := engine.CreateGame(cfg.Game.Players, table.Basic, table.Advanced)
	if err != nil {
		logger.Fatal("failed to create game", zap.Error(err))
	}

	r := &repl{engine: engine, gameID: gameID, in: os.Stdin, out: os.Stdout}
	if err := r.run(); err != nil {
		logger.Error("session ended with error", zap.Error(err))
	}
	if err := engine.EndGame(gameID); err != nil {
		logger.Warn("failed to end game", zap.Error(err))
	}
}

func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)
	// keep stdout for the board
	zapCfg.OutputPaths = []string{"stderr"}

	return zapCfg.Build()
}
