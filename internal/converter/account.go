package converter

import (
	"slot_engine/internal/api/dto/account"
	"slot_engine/internal/model"
)

func ToAccountResponse(acc model.Account) account.AccountResponse {
	return account.AccountResponse{
		UserID:           acc.UserID,
		Balance:          acc.Balance,
		Level:            acc.Level,
		VIP:              acc.VIP,
		GamesPlayed:      acc.GamesPlayed,
		TotalWinnings:    acc.TotalWinnings,
		TotalWagered:     acc.TotalWagered,
		FreeSpins:        acc.FreeSpins,
		Multiplier:       acc.Multiplier,
		LastDailyBonusAt: acc.LastDailyBonusAt,
	}
}

func ToDailyBonusResponse(bonus model.DailyBonus) account.DailyBonusResponse {
	return account.DailyBonusResponse{
		Bonus:          bonus.Amount,
		Balance:        bonus.Account.Balance,
		NextEligibleAt: bonus.NextEligibleAt,
	}
}
