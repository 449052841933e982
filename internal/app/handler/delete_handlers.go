package handler

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/atinyakov/use0mk/internal/app/service"
	"github.com/atinyakov/use0mk/internal/models"
)

type DeleteHandler struct {
	service service.LinkServiceIface
	logger  *zap.Logger
}

func NewDelete(s service.LinkServiceIface, l *zap.Logger) *DeleteHandler {
	return &DeleteHandler{
		service: s,
		logger:  l,
	}
}

// DeleteBatch handles DELETE /api/links. The links are deleted in the
// background, the response only confirms they were queued.
func (h *DeleteHandler) DeleteBatch(res http.ResponseWriter, req *http.Request) {
	var request []models.DeleteRequest
	if !decodeOrFail(res, req, &request, h.logger) {
		return
	}

	if len(request) == 0 {
		http.Error(res, "Request body must list at least one link", http.StatusBadRequest)
		return
	}

	go h.service.EnqueueDeletes(context.WithoutCancel(req.Context()), request)

	res.WriteHeader(http.StatusAccepted)
}
