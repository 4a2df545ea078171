package wager

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"arcade_backend/internal/apperr"
	"arcade_backend/internal/games"
	"arcade_backend/internal/middleware"
	"arcade_backend/internal/model"

	"github.com/sirupsen/logrus"
)

// Сколько раз повторяем раунд после проигранной гонки за баланс
const casRetries = 3

// Локальный маркер проигранного compare-and-set внутри транзакции
var errCASConflict = errors.New("balance cas conflict")

// Place выполняет один раунд ставки. Списание ставки, розыгрыш,
// начисление выигрыша и запись в журнал происходят в одной транзакции:
// при любом сбое не применяется ничего
func (s *serv) Place(ctx context.Context, req model.WagerRequest) (*model.WagerResult, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	// Ставка рулетки - сумма всех ставок спина
	stake, err := s.stakeOf(req)
	if err != nil {
		return nil, err
	}

	// Пустой список ставок рулетки - разрешенный no-op:
	// нулевая выплата и никаких записей в хранилище
	if req.GameType == model.GameRoulette && len(req.Roulette) == 0 {
		balance, err := s.userRepo.GetBalance(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperr.ErrStoreUnavailable, err)
		}
		return &model.WagerResult{
			GameType:   req.GameType,
			NewBalance: balance,
		}, nil
	}

	// Валидация до обращения к генератору
	if stake < s.gamesCfg.MinStake() || stake > s.gamesCfg.MaxStake() {
		return nil, apperr.ErrInvalidStake
	}
	if err := s.validateBets(req); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < casRetries; attempt++ {
		res, err := s.placeOnce(ctx, userID, req, stake)
		if errors.Is(err, errCASConflict) {
			// Параллельная ставка успела изменить баланс - перечитываем
			continue
		}
		if err != nil {
			return nil, err
		}
		return res, nil
	}

	logrus.WithFields(logrus.Fields{
		"user_id":   userID,
		"game_type": req.GameType,
	}).Warn("wager dropped after cas retries exhausted")

	return nil, apperr.ErrStoreConflict
}

// placeOnce - одна попытка раунда внутри транзакции
func (s *serv) placeOnce(ctx context.Context, userID int, req model.WagerRequest, stake int64) (*model.WagerResult, error) {
	var res *model.WagerResult

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Баланс читается заново на каждой попытке, не из кэша
		// и не из запроса клиента
		balance, err := s.userRepo.GetBalance(txCtx, userID)
		if err != nil {
			return fmt.Errorf("%w: %v", apperr.ErrStoreUnavailable, err)
		}
		if balance < stake {
			return apperr.ErrInsufficientFunds
		}

		// Розыгрыш спекулятивен: результат становится настоящим
		// только после фиксации транзакции
		outcome, payout, err := s.playRound(req, stake)
		if err != nil {
			return fmt.Errorf("%w: %v", apperr.ErrGeneratorFailure, err)
		}

		newBalance := balance - stake + payout

		// Выплата и итоговый баланс не бывают отрицательными. Срабатывание
		// этой проверки означает переполнение в расчете выплаты - раунд
		// отклоняется до записи в хранилище
		if payout < 0 || newBalance < 0 {
			return fmt.Errorf("%w: computed payout out of range", apperr.ErrInvalidBet)
		}

		ok, err := s.userRepo.CompareAndSetBalance(txCtx, userID, balance, newBalance)
		if err != nil {
			return fmt.Errorf("%w: %v", apperr.ErrStoreUnavailable, err)
		}
		if !ok {
			return errCASConflict
		}

		rawOutcome, err := json.Marshal(outcome)
		if err != nil {
			return err
		}

		event := &model.WagerEvent{
			UserID:    userID,
			GameType:  req.GameType,
			Stake:     stake,
			Payout:    payout,
			Outcome:   string(rawOutcome),
			CreatedAt: s.now(),
		}
		if err := s.wagerRepo.AppendWagerEvent(txCtx, event); err != nil {
			return fmt.Errorf("%w: %v", apperr.ErrStoreUnavailable, err)
		}

		res = &model.WagerResult{
			GameType:   req.GameType,
			Stake:      stake,
			Payout:     payout,
			Outcome:    outcome,
			NewBalance: newBalance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// playRound - генерация исхода и расчет выплаты. Без побочных эффектов:
// одинаковый исход при одинаковой ставке всегда дает одинаковую выплату
func (s *serv) playRound(req model.WagerRequest, stake int64) (model.Outcome, int64, error) {
	switch req.GameType {
	case model.GameSlots:
		out, err := games.SpinSlots(s.rng, s.gamesCfg.SlotsSymbols())
		if err != nil {
			return model.Outcome{}, 0, err
		}
		payout := games.ResolveSlots(out, stake, s.gamesCfg.SlotsSymbols())
		return model.Outcome{Slots: out}, payout, nil

	case model.GameFishing:
		out, err := games.PlayFishing(s.rng, s.gamesCfg.FishTable(), req.Fishing)
		if err != nil {
			return model.Outcome{}, 0, err
		}
		payout := games.ResolveFishing(out, stake)
		return model.Outcome{Fishing: out}, payout, nil

	case model.GameRoulette:
		out, err := games.SpinRoulette(s.rng)
		if err != nil {
			return model.Outcome{}, 0, err
		}
		payout := games.ResolveRoulette(out, req.Roulette)
		return model.Outcome{Roulette: out}, payout, nil

	case model.GameBlackjack:
		out, err := games.PlayBlackjack(s.rng)
		if err != nil {
			return model.Outcome{}, 0, err
		}
		payout := games.ResolveBlackjack(out, stake)
		return model.Outcome{Blackjack: out}, payout, nil

	default:
		return model.Outcome{}, 0, fmt.Errorf("%w: unknown game type %q", apperr.ErrInvalidBet, req.GameType)
	}
}

func (s *serv) stakeOf(req model.WagerRequest) (int64, error) {
	if req.GameType != model.GameRoulette {
		return req.Stake, nil
	}

	var total int64
	for _, b := range req.Roulette {
		if b.Amount <= 0 {
			return 0, fmt.Errorf("%w: amount must be positive", apperr.ErrInvalidBet)
		}
		total += b.Amount
	}
	return total, nil
}

func (s *serv) validateBets(req model.WagerRequest) error {
	switch req.GameType {
	case model.GameRoulette:
		return games.ValidateRouletteBets(req.Roulette)

	case model.GameFishing:
		if len(req.Fishing) == 0 {
			return fmt.Errorf("%w: fishing session needs at least one cast", apperr.ErrInvalidBet)
		}
		if max := s.gamesCfg.MaxFishingCasts(); max > 0 && len(req.Fishing) > max {
			return fmt.Errorf("%w: too many casts", apperr.ErrInvalidBet)
		}
		for _, c := range req.Fishing {
			if c.PowerMultiplier < 1 {
				return fmt.Errorf("%w: power multiplier below 1", apperr.ErrInvalidBet)
			}
			// Множитель ограничен сверху, иначе клиент может переполнить
			// расчет выплаты
			if c.PowerMultiplier > s.gamesCfg.MaxPowerMultiplier() {
				return fmt.Errorf("%w: power multiplier above %d", apperr.ErrInvalidBet, s.gamesCfg.MaxPowerMultiplier())
			}
		}
		return nil

	case model.GameSlots, model.GameBlackjack:
		return nil

	default:
		return fmt.Errorf("%w: unknown game type %q", apperr.ErrInvalidBet, req.GameType)
	}
}
