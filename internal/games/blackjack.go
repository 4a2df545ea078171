package games

import (
	"arcade_backend/internal/model"
)

// Раунд блэкджека разыгрывается автоматически: игрок и дилер добирают
// карты до жесткого значения 17 из одной перетасованной колоды

const (
	deckSize  = 52
	standAt   = 17
	bustLimit = 21
)

const (
	ResultWin       = "win"
	ResultBlackjack = "blackjack"
	ResultPush      = "push"
	ResultLose      = "lose"
)

// PlayBlackjack разыгрывает одну раздачу
func PlayBlackjack(rng RNG) (*model.BlackjackOutcome, error) {
	deck, err := shuffledDeck(rng)
	if err != nil {
		return nil, err
	}

	// По две карты каждому, затем добор до 17
	player := append([]int(nil), deck[0], deck[1])
	dealer := append([]int(nil), deck[2], deck[3])
	next := 4

	for handTotal(player) < standAt {
		player = append(player, deck[next])
		next++
	}
	for handTotal(dealer) < standAt {
		dealer = append(dealer, deck[next])
		next++
	}

	out := &model.BlackjackOutcome{
		PlayerCards: player,
		DealerCards: dealer,
		PlayerTotal: handTotal(player),
		DealerTotal: handTotal(dealer),
	}
	out.Result = roundResult(out)

	return out, nil
}

// ResolveBlackjack считает выплату с возвратом ставки:
// натуральные 21 платят 3:2, победа 1:1, пуш возвращает ставку
func ResolveBlackjack(out *model.BlackjackOutcome, stake int64) int64 {
	switch out.Result {
	case ResultBlackjack:
		return stake + stake*3/2
	case ResultWin:
		return stake * 2
	case ResultPush:
		return stake
	default:
		return 0
	}
}

// shuffledDeck - колода из 52 карт (ранги 1..13 по 4 масти),
// тасование Фишера-Йетса на том же источнике случайности
func shuffledDeck(rng RNG) ([]int, error) {
	deck := make([]int, 0, deckSize)
	for rank := 1; rank <= 13; rank++ {
		for s := 0; s < 4; s++ {
			deck = append(deck, rank)
		}
	}

	for i := deckSize - 1; i > 0; i-- {
		j, err := rng.Intn(i + 1)
		if err != nil {
			return nil, err
		}
		deck[i], deck[j] = deck[j], deck[i]
	}

	return deck, nil
}

// handTotal - лучшее значение руки: туз считается за 11,
// пока рука не перебирает
func handTotal(cards []int) int {
	total := 0
	aces := 0
	for _, c := range cards {
		switch {
		case c == 1:
			aces++
			total += 11
		case c > 10:
			total += 10
		default:
			total += c
		}
	}

	for total > bustLimit && aces > 0 {
		total -= 10
		aces--
	}

	return total
}

func roundResult(out *model.BlackjackOutcome) string {
	playerNatural := len(out.PlayerCards) == 2 && out.PlayerTotal == bustLimit
	dealerNatural := len(out.DealerCards) == 2 && out.DealerTotal == bustLimit

	switch {
	case playerNatural && !dealerNatural:
		return ResultBlackjack
	case out.PlayerTotal > bustLimit:
		return ResultLose
	case out.DealerTotal > bustLimit:
		return ResultWin
	case out.PlayerTotal > out.DealerTotal:
		return ResultWin
	case out.PlayerTotal < out.DealerTotal:
		return ResultLose
	default:
		return ResultPush
	}
}
