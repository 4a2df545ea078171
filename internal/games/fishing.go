package games

import (
	"errors"

	"arcade_backend/internal/model"
)

// DrawFish выбирает тип рыбы по взвешенному распределению: идем по
// упорядоченному списку, накапливая сумму вероятностей, и берем первый тип,
// на котором сумма достигла r
func DrawFish(rng RNG, table []model.FishSpecies) (model.FishSpecies, error) {
	if len(table) == 0 {
		return model.FishSpecies{}, errors.New("fishing: empty species table")
	}

	r, err := rng.Float64()
	if err != nil {
		return model.FishSpecies{}, err
	}

	var cumulative float64
	for _, f := range table {
		cumulative += f.Probability
		if cumulative >= r {
			return f, nil
		}
	}

	// Из-за округления float сумма может не дойти до r -
	// детерминированный откат на первый тип вместо выхода за границы
	return table[0], nil
}

// PlayFishing разыгрывает сессию: один улов на каждый выстрел.
// Множитель силы берется из самого выстрела - апгрейд в середине сессии
// не применяется задним числом к уже пойманной рыбе
func PlayFishing(rng RNG, table []model.FishSpecies, casts []model.FishingCast) (*model.FishingOutcome, error) {
	out := &model.FishingOutcome{}
	for _, cast := range casts {
		fish, err := DrawFish(rng, table)
		if err != nil {
			return nil, err
		}

		catch := model.FishingCatch{
			FishType: fish.Type,
			Value:    fish.Value,
			Power:    cast.PowerMultiplier,
		}
		out.Catches = append(out.Catches, catch)
		out.TotalScore += int64(catch.Value) * int64(catch.Power)
	}
	return out, nil
}

// ResolveFishing - итог сессии: floor(totalScore * stake / 10).
// Деление целочисленное, аргументы неотрицательные, поэтому floor
func ResolveFishing(out *model.FishingOutcome, stake int64) int64 {
	return out.TotalScore * stake / 10
}
