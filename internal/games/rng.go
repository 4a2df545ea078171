package games

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// RNG - источник случайности для генерации исходов.
// Интерфейс нужен, чтобы в тестах подставлять детерминированный источник
type RNG interface {
	Intn(n int) (int, error)
	Float64() (float64, error)
}

type cryptoRNG struct{}

// NewCryptoRNG возвращает источник на основе crypto/rand.
// Исход не должен быть предсказуем по наблюдаемому клиентом состоянию,
// поэтому math/rand здесь не используется
func NewCryptoRNG() RNG {
	return cryptoRNG{}
}

func (cryptoRNG) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, errors.New("rng: n must be positive")
	}

	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}

	return int(v.Int64()), nil
}

func (cryptoRNG) Float64() (float64, error) {
	// 53 бита - максимум точного представления в float64
	const resolution = 1 << 53

	v, err := rand.Int(rand.Reader, big.NewInt(resolution))
	if err != nil {
		return 0, err
	}

	return float64(v.Int64()) / float64(resolution), nil
}
