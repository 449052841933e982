package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/atinyakov/use0mk/internal/app/service"
	"github.com/atinyakov/use0mk/internal/models"
)

type GetHandler struct {
	service service.LinkServiceIface
	logger  *zap.Logger
}

func NewGet(s service.LinkServiceIface, l *zap.Logger) *GetHandler {
	return &GetHandler{
		service: s,
		logger:  l,
	}
}

// PreviewByName handles GET /api/preview/{name}.
func (h *GetHandler) PreviewByName(res http.ResponseWriter, req *http.Request) {
	name := chi.URLParam(req, "name")
	h.logger.Debug("Got short name from request params", zap.String("name", name))

	link, err := h.service.Preview(req.Context(), models.PreviewRequest{ShortName: name})
	if err != nil {
		writeError(res, err, h.logger)
		return
	}

	writeJSON(res, http.StatusOK, link)
}
