package model

import "time"

type GameType string

const (
	GameSlots     GameType = "slots"
	GameFishing   GameType = "fishing"
	GameRoulette  GameType = "roulette"
	GameBlackjack GameType = "blackjack"
)

// WagerEvent - одна запись в журнале ставок. После записи не изменяется
type WagerEvent struct {
	ID        int64
	UserID    int
	GameType  GameType
	Stake     int64
	Payout    int64
	Outcome   string // Сериализованный результат раунда, формат зависит от игры
	CreatedAt time.Time
}

// WagerRequest - запрос на ставку. Roulette и Fishing заполняются
// только для своих игр
type WagerRequest struct {
	GameType GameType
	Stake    int64
	Roulette []RouletteBet
	Fishing  []FishingCast
}

type WagerResult struct {
	GameType   GameType
	Stake      int64
	Payout     int64
	Outcome    Outcome
	NewBalance int64
}

// Outcome - конкретный результат одного раунда. Заполнено только поле своей игры
type Outcome struct {
	Slots     *SlotsOutcome     `json:"slots,omitempty"`
	Fishing   *FishingOutcome   `json:"fishing,omitempty"`
	Roulette  *RouletteOutcome  `json:"roulette,omitempty"`
	Blackjack *BlackjackOutcome `json:"blackjack,omitempty"`
}

type SlotsOutcome struct {
	Reels [3]int `json:"reels"`
}

// RouletteBetKind - тип ставки на рулетке
type RouletteBetKind string

const (
	BetStraight RouletteBetKind = "straight"
	BetRed      RouletteBetKind = "red"
	BetBlack    RouletteBetKind = "black"
	BetOdd      RouletteBetKind = "odd"
	BetEven     RouletteBetKind = "even"
	BetLow      RouletteBetKind = "low"  // 1-18
	BetHigh     RouletteBetKind = "high" // 19-36
)

type RouletteBet struct {
	Kind   RouletteBetKind
	Number int // Только для straight
	Amount int64
}

type RouletteOutcome struct {
	Pocket int    `json:"pocket"`
	Color  string `json:"color"`
}

// FishingCast - один выстрел в сессии. Множитель силы фиксируется
// в момент выстрела, а не в конце сессии
type FishingCast struct {
	PowerMultiplier int
}

// FishSpecies - элемент упорядоченной таблицы вероятностей рыбалки.
// Сумма вероятностей по таблице не превышает 1
type FishSpecies struct {
	Type        string
	Value       int
	Probability float64
}

type FishingCatch struct {
	FishType string `json:"fish_type"`
	Value    int    `json:"value"`
	Power    int    `json:"power"`
}

type FishingOutcome struct {
	Catches    []FishingCatch `json:"catches"`
	TotalScore int64          `json:"total_score"`
}

type BlackjackOutcome struct {
	PlayerCards []int  `json:"player_cards"`
	DealerCards []int  `json:"dealer_cards"`
	PlayerTotal int    `json:"player_total"`
	DealerTotal int    `json:"dealer_total"`
	Result      string `json:"result"` // win | blackjack | push | lose
}

type Data struct {
	Balance int64
}
