package apperr

import (
	"errors"
	"net/http"
)

// Доменные ошибки - ожидаемые отказы, которые видит игрок.
// Инфраструктурные ошибки - сбои хранилища или генератора,
// они логируются и не показываются как игровой результат
var (
	// Доменные
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidStake      = errors.New("invalid stake")
	ErrInvalidBet        = errors.New("invalid bet")
	ErrAlreadyClaimed    = errors.New("bonus already claimed")

	// Инфраструктурные
	ErrStoreConflict    = errors.New("store conflict")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrGeneratorFailure = errors.New("random generator failure")
)

// IsDomain сообщает, является ли ошибка ожидаемым отказом пользователю
func IsDomain(err error) bool {
	return errors.Is(err, ErrInsufficientFunds) ||
		errors.Is(err, ErrInvalidStake) ||
		errors.Is(err, ErrInvalidBet) ||
		errors.Is(err, ErrAlreadyClaimed)
}

// HTTPStatus - код ответа для ошибки сервисного слоя
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidStake), errors.Is(err, ErrInvalidBet):
		return http.StatusBadRequest
	case errors.Is(err, ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, ErrAlreadyClaimed), errors.Is(err, ErrStoreConflict):
		return http.StatusConflict
	case errors.Is(err, ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
