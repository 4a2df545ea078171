package games

import (
	"fmt"

	"arcade_backend/internal/apperr"
	"arcade_backend/internal/model"
)

const pockets = 37 // Европейское колесо: 0..36

// Множители выплат. Принятое соглашение: выплата уже включает возврат
// ставки - straight отдает amount*36, ставки на равные шансы amount*2
const (
	straightReturn  = 36
	evenMoneyReturn = 2
)

// Канонический набор красных номеров европейского колеса
var redPockets = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
	14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
	25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

// PocketColor - цвет кармана: 0 зеленый, остальные по таблице красных
func PocketColor(pocket int) string {
	switch {
	case pocket == 0:
		return "green"
	case redPockets[pocket]:
		return "red"
	default:
		return "black"
	}
}

// SpinRoulette - один карман равномерно из 37
func SpinRoulette(rng RNG) (*model.RouletteOutcome, error) {
	p, err := rng.Intn(pockets)
	if err != nil {
		return nil, err
	}

	return &model.RouletteOutcome{
		Pocket: p,
		Color:  PocketColor(p),
	}, nil
}

// ValidateRouletteBets проверяет список ставок до розыгрыша.
// Пустой список допустим - такой спин разрешается с нулевой выплатой
func ValidateRouletteBets(bets []model.RouletteBet) error {
	for _, b := range bets {
		if b.Amount <= 0 {
			return fmt.Errorf("%w: amount must be positive", apperr.ErrInvalidBet)
		}

		switch b.Kind {
		case model.BetStraight:
			if b.Number < 0 || b.Number > 36 {
				return fmt.Errorf("%w: straight number out of range", apperr.ErrInvalidBet)
			}
		case model.BetRed, model.BetBlack, model.BetOdd, model.BetEven, model.BetLow, model.BetHigh:
		default:
			return fmt.Errorf("%w: unknown bet kind %q", apperr.ErrInvalidBet, b.Kind)
		}
	}
	return nil
}

// ResolveRoulette оценивает каждую ставку независимо против одного
// выпавшего кармана и суммирует выплаты. Ноль не подходит ни под одну
// ставку на равные шансы
func ResolveRoulette(out *model.RouletteOutcome, bets []model.RouletteBet) int64 {
	p := out.Pocket

	var total int64
	for _, b := range bets {
		switch b.Kind {
		case model.BetStraight:
			if b.Number == p {
				total += b.Amount * straightReturn
			}
		case model.BetRed:
			if p != 0 && redPockets[p] {
				total += b.Amount * evenMoneyReturn
			}
		case model.BetBlack:
			if p != 0 && !redPockets[p] {
				total += b.Amount * evenMoneyReturn
			}
		case model.BetOdd:
			if p != 0 && p%2 == 1 {
				total += b.Amount * evenMoneyReturn
			}
		case model.BetEven:
			if p != 0 && p%2 == 0 {
				total += b.Amount * evenMoneyReturn
			}
		case model.BetLow:
			if p >= 1 && p <= 18 {
				total += b.Amount * evenMoneyReturn
			}
		case model.BetHigh:
			if p >= 19 && p <= 36 {
				total += b.Amount * evenMoneyReturn
			}
		}
	}
	return total
}
