package env

import (
	"errors"
	"fmt"
	"os"
	"time"

	"arcade_backend/internal/config"
	"arcade_backend/internal/model"

	"gopkg.in/yaml.v3"
)

// Файловая часть конфигурации: правила игр, бонуса и лидерборда
// лежат в config.yaml рядом с бинарником

type gamesYAML struct {
	Games struct {
		MinStake           int64 `yaml:"min_stake"`
		MaxStake           int64 `yaml:"max_stake"`
		SlotsSymbols       int   `yaml:"slots_symbols"`
		MaxFishingCasts    int   `yaml:"max_fishing_casts"`
		MaxPowerMultiplier int   `yaml:"max_power_multiplier"`
		FishTable          []struct {
			Type        string  `yaml:"type"`
			Value       int     `yaml:"value"`
			Probability float64 `yaml:"probability"`
		} `yaml:"fish_table"`
	} `yaml:"games"`
	Bonus struct {
		BaseReward        int64 `yaml:"base_reward"`
		StepReward        int64 `yaml:"step_reward"`
		StreakCap         int   `yaml:"streak_cap"`
		ClaimCooldownHrs  int   `yaml:"claim_cooldown_hours"`
		StreakWindowHrs   int   `yaml:"streak_window_hours"`
	} `yaml:"bonus"`
	Leaderboard struct {
		TTLSeconds int `yaml:"ttl_seconds"`
		Limit      int `yaml:"limit"`
	} `yaml:"leaderboard"`
}

func parseYAML(path string) (*gamesYAML, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var parsed gamesYAML
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &parsed, nil
}

type gamesConfig struct {
	minStake           int64
	maxStake           int64
	slotsSymbols       int
	maxFishingCasts    int
	maxPowerMultiplier int
	fishTable          []model.FishSpecies
}

func NewGamesConfigFromYAML(path string) (config.GamesConfig, error) {
	parsed, err := parseYAML(path)
	if err != nil {
		return nil, err
	}

	g := parsed.Games
	if g.MinStake <= 0 || g.MaxStake < g.MinStake {
		return nil, errors.New("invalid stake bounds")
	}
	if g.SlotsSymbols < 2 {
		return nil, errors.New("slots needs at least 2 symbols")
	}
	if g.MaxPowerMultiplier < 1 {
		return nil, errors.New("max power multiplier must be at least 1")
	}
	if len(g.FishTable) == 0 {
		return nil, errors.New("fish table is empty")
	}

	// Сумма вероятностей не должна превышать 1
	var sum float64
	table := make([]model.FishSpecies, 0, len(g.FishTable))
	for _, f := range g.FishTable {
		if f.Probability <= 0 || f.Value <= 0 {
			return nil, fmt.Errorf("invalid fish entry %q", f.Type)
		}
		sum += f.Probability
		table = append(table, model.FishSpecies{
			Type:        f.Type,
			Value:       f.Value,
			Probability: f.Probability,
		})
	}
	if sum > 1.0+1e-9 {
		return nil, errors.New("fish probabilities sum above 1")
	}

	return &gamesConfig{
		minStake:           g.MinStake,
		maxStake:           g.MaxStake,
		slotsSymbols:       g.SlotsSymbols,
		maxFishingCasts:    g.MaxFishingCasts,
		maxPowerMultiplier: g.MaxPowerMultiplier,
		fishTable:          table,
	}, nil
}

func (cfg *gamesConfig) MinStake() int64 {
	return cfg.minStake
}

func (cfg *gamesConfig) MaxStake() int64 {
	return cfg.maxStake
}

func (cfg *gamesConfig) SlotsSymbols() int {
	return cfg.slotsSymbols
}

func (cfg *gamesConfig) MaxFishingCasts() int {
	return cfg.maxFishingCasts
}

func (cfg *gamesConfig) MaxPowerMultiplier() int {
	return cfg.maxPowerMultiplier
}

func (cfg *gamesConfig) FishTable() []model.FishSpecies {
	return cfg.fishTable
}

type bonusConfig struct {
	baseReward    int64
	stepReward    int64
	streakCap     int
	claimCooldown time.Duration
	streakWindow  time.Duration
}

func NewBonusConfigFromYAML(path string) (config.BonusConfig, error) {
	parsed, err := parseYAML(path)
	if err != nil {
		return nil, err
	}

	b := parsed.Bonus
	if b.BaseReward <= 0 || b.StreakCap < 1 {
		return nil, errors.New("invalid bonus config")
	}
	if b.StreakWindowHrs <= b.ClaimCooldownHrs {
		return nil, errors.New("streak window must exceed claim cooldown")
	}

	return &bonusConfig{
		baseReward:    b.BaseReward,
		stepReward:    b.StepReward,
		streakCap:     b.StreakCap,
		claimCooldown: time.Duration(b.ClaimCooldownHrs) * time.Hour,
		streakWindow:  time.Duration(b.StreakWindowHrs) * time.Hour,
	}, nil
}

func (cfg *bonusConfig) BaseReward() int64 {
	return cfg.baseReward
}

func (cfg *bonusConfig) StepReward() int64 {
	return cfg.stepReward
}

func (cfg *bonusConfig) StreakCap() int {
	return cfg.streakCap
}

func (cfg *bonusConfig) ClaimCooldown() time.Duration {
	return cfg.claimCooldown
}

func (cfg *bonusConfig) StreakWindow() time.Duration {
	return cfg.streakWindow
}

type leaderboardConfig struct {
	ttl   time.Duration
	limit int
}

func NewLeaderboardConfigFromYAML(path string) (config.LeaderboardConfig, error) {
	parsed, err := parseYAML(path)
	if err != nil {
		return nil, err
	}

	l := parsed.Leaderboard
	if l.TTLSeconds <= 0 || l.Limit <= 0 {
		return nil, errors.New("invalid leaderboard config")
	}

	return &leaderboardConfig{
		ttl:   time.Duration(l.TTLSeconds) * time.Second,
		limit: l.Limit,
	}, nil
}

func (cfg *leaderboardConfig) TTL() time.Duration {
	return cfg.ttl
}

func (cfg *leaderboardConfig) Limit() int {
	return cfg.limit
}
