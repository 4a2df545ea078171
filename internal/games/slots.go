package games

import (
	"arcade_backend/internal/model"
)

const (
	slotsReels = 3

	// Множители выплат в кратности ставки
	jackpotMult = 100
	tripleMult  = 10
	pairMult    = 2
)

// SpinSlots - три независимых символа равномерно из набора 1..symbolCount.
// Веса задаются только размером набора символов
func SpinSlots(rng RNG, symbolCount int) (*model.SlotsOutcome, error) {
	var out model.SlotsOutcome
	for i := 0; i < slotsReels; i++ {
		v, err := rng.Intn(symbolCount)
		if err != nil {
			return nil, err
		}
		out.Reels[i] = v + 1
	}
	return &out, nil
}

// ResolveSlots считает выплату по трем символам.
// Тройка максимального символа - джекпот 100x, любая другая тройка - 10x,
// любая пара - 2x, иначе 0. Сравнение только по точному равенству
func ResolveSlots(out *model.SlotsOutcome, stake int64, maxSymbol int) int64 {
	a, b, c := out.Reels[0], out.Reels[1], out.Reels[2]

	if a == b && b == c {
		if a == maxSymbol {
			return jackpotMult * stake
		}
		return tripleMult * stake
	}

	if a == b || b == c || a == c {
		return pairMult * stake
	}

	return 0
}
