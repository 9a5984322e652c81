// Package config loads runtime settings for the mendeleev binary.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mendeleevdice/mendeleev-go/internal/game"
	"github.com/mendeleevdice/mendeleev-go/internal/game/dice"
)

// EnvPrefix is prepended to every environment override, e.g.
// MENDELEEV_GAME_WINNING_SCORE.
const EnvPrefix = "MENDELEEV"

type Config struct {
	Game    GameConfig    `mapstructure:"game"`
	Cards   CardsConfig   `mapstructure:"cards"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type GameConfig struct {
	Players            int      `mapstructure:"players"`
	MinPlayers         int      `mapstructure:"min_players"`
	MaxPlayers         int      `mapstructure:"max_players"`
	MaxCubes           int      `mapstructure:"max_cubes"`
	MaxDice            int      `mapstructure:"max_dice"`
	StartingDice       []string `mapstructure:"starting_dice"`
	WinningScore       int      `mapstructure:"winning_score"`
	MarketSize         int      `mapstructure:"market_size"`
	TopCardPurchasable bool     `mapstructure:"top_card_purchasable"`
	ScoreTrack         []string `mapstructure:"score_track"`
	Seed               int64    `mapstructure:"seed"`
}

type CardsConfig struct {
	// Path to a TSV card table. Empty uses the embedded table.
	Path string `mapstructure:"path"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func setDefaults(v *viper.Viper) {
	d := game.DefaultRules()

	starting := make([]string, len(d.StartingDice))
	for i, t := range d.StartingDice {
		starting[i] = string(t)
	}
	track := make([]string, len(d.ScoreTrack))
	for i, step := range d.ScoreTrack {
		track[i] = fmt.Sprintf("%d:%s", step.Threshold, step.Kind)
	}

	v.SetDefault("game.players", d.MinPlayers)
	v.SetDefault("game.min_players", d.MinPlayers)
	v.SetDefault("game.max_players", d.MaxPlayers)
	v.SetDefault("game.max_cubes", d.MaxCubes)
	v.SetDefault("game.max_dice", d.MaxDice)
	v.SetDefault("game.starting_dice", starting)
	v.SetDefault("game.winning_score", d.WinningScore)
	v.SetDefault("game.market_size", d.MarketSize)
	v.SetDefault("game.top_card_purchasable", d.TopCardPurchasable)
	v.SetDefault("game.score_track", track)
	v.SetDefault("game.seed", 0)
	v.SetDefault("cards.path", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Load reads configuration from path (optional), the environment, and flags.
// An empty path skips the file. Flags may be nil; otherwise each flag whose
// name matches a key (e.g. "game.seed") overrides the file and environment.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// Rules converts the game section into engine rules. Unknown die types are
// skipped with a warning; a malformed score track entry is an error.
func (c GameConfig) Rules(logger *zap.Logger) (game.Rules, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	rules := game.Rules{
		MinPlayers:         c.MinPlayers,
		MaxPlayers:         c.MaxPlayers,
		MaxCubes:           c.MaxCubes,
		MaxDice:            c.MaxDice,
		WinningScore:       c.WinningScore,
		MarketSize:         c.MarketSize,
		TopCardPurchasable: c.TopCardPurchasable,
	}

	for _, raw := range c.StartingDice {
		t, err := dice.ParseType(raw)
		if err != nil {
			logger.Warn("skipping starting die", zap.String("die", raw), zap.Error(err))
			continue
		}
		rules.StartingDice = append(rules.StartingDice, t)
	}

	for _, raw := range c.ScoreTrack {
		step, err := parseReward(raw)
		if err != nil {
			return game.Rules{}, err
		}
		rules.ScoreTrack = append(rules.ScoreTrack, step)
	}

	return rules, nil
}

// parseReward reads "threshold:kind", e.g. "10:die".
func parseReward(raw string) (game.Reward, error) {
	threshold, kind, ok := strings.Cut(strings.TrimSpace(raw), ":")
	if !ok {
		return game.Reward{}, fmt.Errorf("score track entry %q: want threshold:kind", raw)
	}
	n, err := strconv.Atoi(strings.TrimSpace(threshold))
	if err != nil {
		return game.Reward{}, fmt.Errorf("score track entry %q: %w", raw, err)
	}
	return game.Reward{
		Threshold: n,
		Kind:      game.RewardKind(strings.ToLower(strings.TrimSpace(kind))),
	}, nil
}

// Validate reports configuration that cannot start a game.
func (c *Config) Validate() error {
	var errs []error

	rules, err := c.Game.Rules(nil)
	if err != nil {
		errs = append(errs, err)
	} else if err := rules.Validate(); err != nil {
		errs = append(errs, err)
	}

	if c.Game.Players < c.Game.MinPlayers || c.Game.Players > c.Game.MaxPlayers {
		errs = append(errs, fmt.Errorf("players %d outside [%d, %d]", c.Game.Players, c.Game.MinPlayers, c.Game.MaxPlayers))
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Logging.Format))
	}

	return errors.Join(errs...)
}
