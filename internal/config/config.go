package config

import (
	"time"

	"arcade_backend/internal/model"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type GamesConfig interface {
	MinStake() int64
	MaxStake() int64
	SlotsSymbols() int
	FishTable() []model.FishSpecies
	MaxFishingCasts() int
	MaxPowerMultiplier() int
}

type BonusConfig interface {
	BaseReward() int64
	StepReward() int64
	StreakCap() int
	ClaimCooldown() time.Duration
	StreakWindow() time.Duration
}

type LeaderboardConfig interface {
	TTL() time.Duration
	Limit() int
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type RedisConfig interface {
	Addr() string
	Password() string
	DB() int
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}
