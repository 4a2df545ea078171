package converter

import (
	"arcade_backend/internal/api/dto/bonus"
	"arcade_backend/internal/model"
)

func ToClaimResponse(res model.BonusClaimResult) bonus.ClaimResponse {
	return bonus.ClaimResponse{
		BonusAmount: res.BonusAmount,
		StreakDays:  res.StreakDays,
		NewBalance:  res.NewBalance,
	}
}
