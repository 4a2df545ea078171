package leaderboard

import (
	"net/http"

	"arcade_backend/internal/apperr"
	"arcade_backend/internal/converter"
	"arcade_backend/internal/model"
	"arcade_backend/internal/service"
	"arcade_backend/pkg/resp"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type HandlerDeps struct {
	Serv service.LeaderboardService
}

type Handler struct {
	serv service.LeaderboardService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Get возвращает топ игроков за период из пути запроса
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	period := model.LeaderboardPeriod(chi.URLParam(r, "period"))

	result, err := h.serv.Get(r.Context(), period)
	if err != nil {
		status := apperr.HTTPStatus(err)
		if apperr.IsDomain(err) {
			http.Error(w, err.Error(), status)
			return
		}
		logrus.WithField("period", period).WithError(err).Error("leaderboard request failed")
		http.Error(w, http.StatusText(status), status)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToLeaderboardResponse(*result))
}
