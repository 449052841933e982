package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/atinyakov/use0mk/internal/app/service"
	"github.com/atinyakov/use0mk/internal/models"
)

type PostHandler struct {
	service service.LinkServiceIface
	logger  *zap.Logger
}

func NewPost(s service.LinkServiceIface, l *zap.Logger) *PostHandler {
	return &PostHandler{
		service: s,
		logger:  l,
	}
}

// Shorten handles POST /api/shorten.
func (h *PostHandler) Shorten(res http.ResponseWriter, req *http.Request) {
	var request models.ShortenRequest
	if !decodeOrFail(res, req, &request, h.logger) {
		return
	}

	link, err := h.service.Shorten(req.Context(), request.URL, request.ShortName)
	if err != nil {
		writeError(res, err, h.logger)
		return
	}

	writeJSON(res, http.StatusCreated, link)
}

// Preview handles POST /api/preview, the body names a short name or a short URI.
func (h *PostHandler) Preview(res http.ResponseWriter, req *http.Request) {
	var request models.PreviewRequest
	if !decodeOrFail(res, req, &request, h.logger) {
		return
	}

	link, err := h.service.Preview(req.Context(), request)
	if err != nil {
		writeError(res, err, h.logger)
		return
	}

	writeJSON(res, http.StatusOK, link)
}

// Delete handles POST /api/delete and waits for 0.mk to answer.
func (h *PostHandler) Delete(res http.ResponseWriter, req *http.Request) {
	var request models.DeleteRequest
	if !decodeOrFail(res, req, &request, h.logger) {
		return
	}

	ok, err := h.service.Delete(req.Context(), request)
	if err != nil {
		writeError(res, err, h.logger)
		return
	}

	writeJSON(res, http.StatusOK, models.DeleteResponse{Deleted: ok})
}

// Text handles POST /api/text. On failure the links already created are
// still listed so the caller can delete them.
func (h *PostHandler) Text(res http.ResponseWriter, req *http.Request) {
	var request models.TextRequest
	if !decodeOrFail(res, req, &request, h.logger) {
		return
	}

	text, links, err := h.service.ShortenText(req.Context(), request.Text)

	out := models.TextResponse{Text: text, Links: make([]json.RawMessage, 0, len(links))}
	for _, l := range links {
		raw, mErr := json.Marshal(l)
		if mErr != nil {
			h.logger.Error("cannot encode link", zap.Error(mErr))
			continue
		}
		out.Links = append(out.Links, raw)
	}

	if err != nil {
		status, body := errorResponse(err)
		h.logger.Warn("text shortening failed", zap.Error(err), zap.Int("created", len(links)))
		writeJSON(res, status, struct {
			models.ErrorResponse
			Links []json.RawMessage `json:"links"`
		}{body, out.Links})
		return
	}

	writeJSON(res, http.StatusOK, out)
}
