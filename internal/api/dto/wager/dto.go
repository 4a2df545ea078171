package wager

type PlaceRequest struct {
	GameType string        `json:"game_type"` // slots | fishing | roulette | blackjack
	Stake    int64         `json:"stake"`     // Ставка (для рулетки игнорируется)
	Roulette []RouletteBet `json:"roulette,omitempty"`
	Fishing  []FishingCast `json:"fishing,omitempty"`
}

type RouletteBet struct {
	Kind   string `json:"kind"`             // straight | red | black | odd | even | low | high
	Number int    `json:"number,omitempty"` // Номер кармана для straight (0-36)
	Amount int64  `json:"amount"`           // Сумма ставки
}

type FishingCast struct {
	PowerMultiplier int `json:"power_multiplier"` // Сила заброса (>= 1)
}

type PlaceResponse struct {
	GameType   string   `json:"game_type"`
	Stake      int64    `json:"stake"`       // Списанная ставка
	Payout     int64    `json:"payout"`      // Начисленная выплата
	Outcome    *Outcome `json:"outcome,omitempty"`
	NewBalance int64    `json:"new_balance"` // Баланс после раунда
}

type Outcome struct {
	Slots     *SlotsOutcome     `json:"slots,omitempty"`
	Fishing   *FishingOutcome   `json:"fishing,omitempty"`
	Roulette  *RouletteOutcome  `json:"roulette,omitempty"`
	Blackjack *BlackjackOutcome `json:"blackjack,omitempty"`
}

type SlotsOutcome struct {
	Reels [3]int `json:"reels"` // Выпавшие символы
}

type FishingOutcome struct {
	Catches    []FishingCatch `json:"catches"`
	TotalScore int64          `json:"total_score"` // Сумма очков улова
}

type FishingCatch struct {
	FishType string `json:"fish_type"` // Вид рыбы
	Value    int    `json:"value"`     // Базовые очки вида
	Power    int    `json:"power"`     // Сила заброса
}

type RouletteOutcome struct {
	Pocket int    `json:"pocket"` // Выпавший карман (0-36)
	Color  string `json:"color"`  // red | black | green
}

type BlackjackOutcome struct {
	PlayerCards []int  `json:"player_cards"`
	DealerCards []int  `json:"dealer_cards"`
	PlayerTotal int    `json:"player_total"`
	DealerTotal int    `json:"dealer_total"`
	Result      string `json:"result"` // win | blackjack | push | lose
}

type DepositRequest struct {
	Amount int64 `json:"amount"` // Сумма депозита
}

type DepositResponse struct {
	Balance int64 `json:"balance"` // Баланс после депозита
}

type DataResponse struct {
	Balance int64 `json:"balance"` // Баланс пользователя
}
