package wager

import (
	"net/http"

	dto "arcade_backend/internal/api/dto/wager"
	"arcade_backend/internal/apperr"
	"arcade_backend/internal/converter"
	"arcade_backend/internal/service"
	"arcade_backend/pkg/req"
	"arcade_backend/pkg/resp"

	"github.com/sirupsen/logrus"
)

type HandlerDeps struct {
	Serv service.WagerService
}

type Handler struct {
	serv service.WagerService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Place разыгрывает один раунд ставки
func (h *Handler) Place(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.PlaceRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	result, err := h.serv.Place(r.Context(), converter.ToWagerRequest(payload))
	if err != nil {
		writeServiceError(w, "place", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPlaceResponse(*result))
}

// Deposit начисляет игровые токены на баланс
func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.DepositRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	balance, err := h.serv.Deposit(r.Context(), payload.Amount)
	if err != nil {
		writeServiceError(w, "deposit", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.DepositResponse{Balance: balance})
}

// CheckData возвращает текущее состояние кошелька
func (h *Handler) CheckData(w http.ResponseWriter, r *http.Request) {
	data, err := h.serv.CheckData(r.Context())
	if err != nil {
		writeServiceError(w, "check data", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDataResponse(*data))
}

// writeServiceError - доменные отказы уходят клиенту как есть,
// инфраструктурные логируются и отдаются без деталей
func writeServiceError(w http.ResponseWriter, op string, err error) {
	status := apperr.HTTPStatus(err)
	if apperr.IsDomain(err) {
		http.Error(w, err.Error(), status)
		return
	}

	logrus.WithField("op", op).WithError(err).Error("wager request failed")
	http.Error(w, http.StatusText(status), status)
}
