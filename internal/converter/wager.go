package converter

import (
	"arcade_backend/internal/api/dto/wager"
	"arcade_backend/internal/model"
)

func ToWagerRequest(req wager.PlaceRequest) model.WagerRequest {
	return model.WagerRequest{
		GameType: model.GameType(req.GameType),
		Stake:    req.Stake,
		Roulette: toRouletteBets(req.Roulette),
		Fishing:  toFishingCasts(req.Fishing),
	}
}

func toRouletteBets(bets []wager.RouletteBet) []model.RouletteBet {
	if bets == nil {
		return nil
	}
	result := make([]model.RouletteBet, len(bets))
	for i, b := range bets {
		result[i] = model.RouletteBet{
			Kind:   model.RouletteBetKind(b.Kind),
			Number: b.Number,
			Amount: b.Amount,
		}
	}
	return result
}

func toFishingCasts(casts []wager.FishingCast) []model.FishingCast {
	if casts == nil {
		return nil
	}
	result := make([]model.FishingCast, len(casts))
	for i, c := range casts {
		result[i] = model.FishingCast{PowerMultiplier: c.PowerMultiplier}
	}
	return result
}

func ToPlaceResponse(res model.WagerResult) wager.PlaceResponse {
	return wager.PlaceResponse{
		GameType:   string(res.GameType),
		Stake:      res.Stake,
		Payout:     res.Payout,
		Outcome:    toOutcome(res.Outcome),
		NewBalance: res.NewBalance,
	}
}

func toOutcome(out model.Outcome) *wager.Outcome {
	if out.Slots == nil && out.Fishing == nil && out.Roulette == nil && out.Blackjack == nil {
		return nil
	}

	result := &wager.Outcome{}
	if out.Slots != nil {
		result.Slots = &wager.SlotsOutcome{Reels: out.Slots.Reels}
	}
	if out.Fishing != nil {
		result.Fishing = &wager.FishingOutcome{
			Catches:    toFishingCatches(out.Fishing.Catches),
			TotalScore: out.Fishing.TotalScore,
		}
	}
	if out.Roulette != nil {
		result.Roulette = &wager.RouletteOutcome{
			Pocket: out.Roulette.Pocket,
			Color:  out.Roulette.Color,
		}
	}
	if out.Blackjack != nil {
		result.Blackjack = &wager.BlackjackOutcome{
			PlayerCards: out.Blackjack.PlayerCards,
			DealerCards: out.Blackjack.DealerCards,
			PlayerTotal: out.Blackjack.PlayerTotal,
			DealerTotal: out.Blackjack.DealerTotal,
			Result:      out.Blackjack.Result,
		}
	}
	return result
}

func toFishingCatches(catches []model.FishingCatch) []wager.FishingCatch {
	result := make([]wager.FishingCatch, len(catches))
	for i, c := range catches {
		result[i] = wager.FishingCatch{
			FishType: c.FishType,
			Value:    c.Value,
			Power:    c.Power,
		}
	}
	return result
}

func ToDataResponse(data model.Data) wager.DataResponse {
	return wager.DataResponse{
		Balance: data.Balance,
	}
}
