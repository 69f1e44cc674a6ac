package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ratel-online/rummy/config"
	"github.com/ratel-online/rummy/consts"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("missing_file_gives_defaults", func(t *testing.T) {
		cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		require.Equal(t, config.Default(), *cfg)
	})

	t.Run("file_overrides_defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rummy.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
rules:
  max_rounds: 5
knock_window:
  hard: 1500ms
ai:
  knock_threshold: 4
save:
  backend: memory
`), 0o644))

		cfg, err := config.Load(path)
		require.NoError(t, err)
		require.Equal(t, 5, cfg.Rules.MaxRounds)
		require.Equal(t, consts.StartingCards, cfg.Rules.StartingCards)
		require.Equal(t, 1500*time.Millisecond, cfg.KnockWindow.Hard)
		require.Equal(t, consts.KnockWindowEasy, cfg.KnockWindow.Easy)
		require.Equal(t, 4, cfg.AI.KnockThreshold)
		require.Equal(t, config.BackendMemory, cfg.Save.Backend)
		require.Equal(t, consts.SaveKey, cfg.Save.Key)
	})

	t.Run("environment_overrides_file", func(t *testing.T) {
		t.Setenv("RUMMY_SAVE_BACKEND", "redis")
		t.Setenv("RUMMY_REDIS_ADDR", "cache:6379")
		cfg, err := config.Load("")
		require.NoError(t, err)
		require.Equal(t, config.BackendRedis, cfg.Save.Backend)
		require.Equal(t, "cache:6379", cfg.Redis.Addr)
	})

	t.Run("rejects_invalid_values", func(t *testing.T) {
		tests := map[string]string{
			"unknown_backend": "save:\n  backend: floppy\n",
			"zero_rounds":     "rules:\n  max_rounds: 0\n",
			"too_many_cards":  "rules:\n  starting_cards: 20\n",
			"negative_window": "knock_window:\n  easy: -1s\n",
			"malformed_yaml":  "rules: [\n",
		}
		for name, content := range tests {
			t.Run(name, func(t *testing.T) {
				path := filepath.Join(t.TempDir(), "rummy.yaml")
				require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
				_, err := config.Load(path)
				require.Error(t, err)
			})
		}
	})
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rummy.yaml")
	cfg := config.Default()
	cfg.AI.ThinkingDelay = 0
	cfg.UI.PlayerName = "Ada"
	require.NoError(t, config.Write(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "easy: 3s")

	loaded, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, *loaded)
}

func TestKnockWindowFor(t *testing.T) {
	cfg := config.Default()
	require.Equal(t, consts.KnockWindowEasy, cfg.KnockWindowFor(consts.DifficultyEasy))
	require.Equal(t, consts.KnockWindowHard, cfg.KnockWindowFor(consts.DifficultyHard))
}
