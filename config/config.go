package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ratel-online/rummy/consts"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

type Config struct {
	Rules       RulesConfig       `mapstructure:"rules"`
	KnockWindow KnockWindowConfig `mapstructure:"knock_window"`
	AI          AIConfig          `mapstructure:"ai"`
	Save        SaveConfig        `mapstructure:"save"`
	Redis       RedisConfig       `mapstructure:"redis"`
	UI          UIConfig          `mapstructure:"ui"`
}

type RulesConfig struct {
	MaxRounds     int `mapstructure:"max_rounds"`
	StartingCards int `mapstructure:"starting_cards"`
}

type KnockWindowConfig struct {
	Easy time.Duration `mapstructure:"easy"`
	Hard time.Duration `mapstructure:"hard"`
}

type AIConfig struct {
	MinUsefulnessToDrawDiscard float64       `mapstructure:"min_usefulness_to_draw_discard"`
	KnockThreshold             int           `mapstructure:"knock_threshold"`
	ThinkingDelay              time.Duration `mapstructure:"thinking_delay"`
}

type SaveConfig struct {
	Backend string `mapstructure:"backend"`
	Path    string `mapstructure:"path"`
	Key     string `mapstructure:"key"`
}

type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type UIConfig struct {
	Delay        time.Duration `mapstructure:"delay"`
	PlayerName   string        `mapstructure:"player_name"`
	PlayerAvatar string        `mapstructure:"player_avatar"`
}

func Default() Config {
	return Config{
		Rules: RulesConfig{
			MaxRounds:     consts.MaxRounds,
			StartingCards: consts.StartingCards,
		},
		KnockWindow: KnockWindowConfig{
			Easy: consts.KnockWindowEasy,
			Hard: consts.KnockWindowHard,
		},
		AI: AIConfig{
			MinUsefulnessToDrawDiscard: consts.MinUsefulnessToDrawDiscard,
			KnockThreshold:             0,
			ThinkingDelay:              consts.ThinkingDelay,
		},
		Save: SaveConfig{
			Backend: consts.SaveBackend,
			Path:    consts.SaveDir,
			Key:     consts.SaveKey,
		},
		Redis: RedisConfig{
			Addr: "127.0.0.1:6379",
			TTL:  30 * 24 * time.Hour,
		},
		UI: UIConfig{
			Delay: 500 * time.Millisecond,
		},
	}
}

// settings is the nested key tree of cfg, as read and written in YAML.
func settings(cfg Config) map[string]interface{} {
	return map[string]interface{}{
		"rules": map[string]interface{}{
			"max_rounds":     cfg.Rules.MaxRounds,
			"starting_cards": cfg.Rules.StartingCards,
		},
		"knock_window": map[string]interface{}{
			"easy": cfg.KnockWindow.Easy.String(),
			"hard": cfg.KnockWindow.Hard.String(),
		},
		"ai": map[string]interface{}{
			"min_usefulness_to_draw_discard": cfg.AI.MinUsefulnessToDrawDiscard,
			"knock_threshold":                cfg.AI.KnockThreshold,
			"thinking_delay":                 cfg.AI.ThinkingDelay.String(),
		},
		"save": map[string]interface{}{
			"backend": cfg.Save.Backend,
			"path":    cfg.Save.Path,
			"key":     cfg.Save.Key,
		},
		"redis": map[string]interface{}{
			"addr":     cfg.Redis.Addr,
			"password": cfg.Redis.Password,
			"db":       cfg.Redis.DB,
			"ttl":      cfg.Redis.TTL.String(),
		},
		"ui": map[string]interface{}{
			"delay":         cfg.UI.Delay.String(),
			"player_name":   cfg.UI.PlayerName,
			"player_avatar": cfg.UI.PlayerAvatar,
		},
	}
}

func setDefaults(v *viper.Viper, prefix string, tree map[string]interface{}) {
	for key, value := range tree {
		if subtree, ok := value.(map[string]interface{}); ok {
			setDefaults(v, prefix+key+".", subtree)
			continue
		}
		v.SetDefault(prefix+key, value)
	}
}

// Load reads the YAML file at path over the defaults. A missing file or an
// empty path yields the defaults. RUMMY_* environment variables override both,
// e.g. RUMMY_SAVE_BACKEND=redis.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, "", settings(Default()))
	v.SetEnvPrefix("rummy")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Rules.MaxRounds < 1:
		return fmt.Errorf("%w: rules.max_rounds must be positive", consts.ErrorsConfigInvalid)
	case c.Rules.StartingCards < 1:
		return fmt.Errorf("%w: rules.starting_cards must be positive", consts.ErrorsConfigInvalid)
	case 2*(c.Rules.StartingCards+c.Rules.MaxRounds-1)+1 > consts.CardsInDeck:
		return fmt.Errorf("%w: the last round deals more cards than the deck holds", consts.ErrorsConfigInvalid)
	case c.KnockWindow.Easy < 0 || c.KnockWindow.Hard < 0:
		return fmt.Errorf("%w: knock windows cannot be negative", consts.ErrorsConfigInvalid)
	}
	switch c.Save.Backend {
	case BackendFile, BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("%w: unknown save.backend '%s'", consts.ErrorsConfigInvalid, c.Save.Backend)
	}
	return nil
}

func (c Config) KnockWindowFor(difficulty consts.Difficulty) time.Duration {
	if difficulty == consts.DifficultyHard {
		return c.KnockWindow.Hard
	}
	return c.KnockWindow.Easy
}

// Write dumps cfg as YAML, for -init-config.
func Write(path string, cfg Config) error {
	data, err := yaml.Marshal(settings(cfg))
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
