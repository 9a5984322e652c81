package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/mendeleevdice/mendeleev-go/internal/game"
	"github.com/mendeleevdice/mendeleev-go/internal/game/dice"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	rules, err := cfg.Game.Rules(zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Equal(t, game.DefaultRules(), rules)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Empty(t, cfg.Cards.Path)
}

func TestLoadFileAndEnvironment(t *testing.T) {
	path := writeConfig(t, `
game:
  players: 3
  winning_score: 30
  starting_dice: [d4, d20]
  score_track: ["5:skill", "15:die"]
  top_card_purchasable: true
logging:
  level: debug
  format: json
`)
	t.Setenv("MENDELEEV_GAME_WINNING_SCORE", "40")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 3, cfg.Game.Players)
	assert.Equal(t, 40, cfg.Game.WinningScore, "environment beats file")
	assert.Equal(t, "json", cfg.Logging.Format)

	rules, err := cfg.Game.Rules(nil)
	require.NoError(t, err)
	assert.Equal(t, []dice.Type{dice.D4, dice.D20}, rules.StartingDice)
	assert.Equal(t, []game.Reward{
		{Threshold: 5, Kind: game.RewardSkill},
		{Threshold: 15, Kind: game.RewardDie},
	}, rules.ScoreTrack)
	assert.True(t, rules.TopCardPurchasable)
	assert.Equal(t, 6, rules.MaxPlayers)
}

func TestLoadFlagsOverride(t *testing.T) {
	path := writeConfig(t, "game:\n  seed: 7\n")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int64("game.seed", 0, "")
	flags.String("logging.level", "info", "")
	require.NoError(t, flags.Parse([]string{"--game.seed=42"}))

	cfg, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Game.Seed)
	assert.Equal(t, "info", cfg.Logging.Level, "unchanged flag keeps the default")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestRulesSkipsUnknownDice(t *testing.T) {
	gc := GameConfig{StartingDice: []string{"d6", "d7", "8"}}
	rules, err := gc.Rules(zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Equal(t, []dice.Type{dice.D6, dice.D8}, rules.StartingDice)
}

func TestRulesRejectsMalformedTrack(t *testing.T) {
	for _, raw := range []string{"10", "ten:die"} {
		gc := GameConfig{ScoreTrack: []string{raw}}
		_, err := gc.Rules(nil)
		assert.Error(t, err, raw)
	}
}

func TestValidate(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	cfg.Game.MinPlayers = 5
	cfg.Game.MaxPlayers = 3
	cfg.Logging.Format = "xml"
	cfg.Game.ScoreTrack = []string{"10:coins"}

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max players 3 is below min players 5")
	assert.Contains(t, err.Error(), "unknown log format")
	assert.Contains(t, err.Error(), "unknown reward kind")
}
