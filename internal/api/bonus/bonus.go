package bonus

import (
	"net/http"

	"arcade_backend/internal/apperr"
	"arcade_backend/internal/converter"
	"arcade_backend/internal/service"
	"arcade_backend/pkg/resp"

	"github.com/sirupsen/logrus"
)

type HandlerDeps struct {
	Serv service.BonusService
}

type Handler struct {
	serv service.BonusService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Claim выдает ежедневный бонус
func (h *Handler) Claim(w http.ResponseWriter, r *http.Request) {
	result, err := h.serv.Claim(r.Context())
	if err != nil {
		status := apperr.HTTPStatus(err)
		if apperr.IsDomain(err) {
			http.Error(w, err.Error(), status)
			return
		}
		logrus.WithError(err).Error("bonus claim failed")
		http.Error(w, http.StatusText(status), status)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToClaimResponse(*result))
}
