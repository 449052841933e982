// Package handler exposes the 0.mk client over HTTP. It decodes JSON
// request bodies, calls the link service and maps client failures onto
// HTTP statuses with a JSON error body.
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/atinyakov/use0mk/internal/models"
	"github.com/atinyakov/use0mk/pkg/use0mk"
)

// malformedRequest represents an error with a malformed HTTP request.
type malformedRequest struct {
	status int    // HTTP status code for the error
	msg    string // Error message
}

// Error returns the error message for a malformed request.
func (mr *malformedRequest) Error() string {
	return mr.msg
}

// decodeJSONBody decodes a JSON request body into the given destination struct.
// It reads the content from the request body, checks for proper JSON formatting,
// and handles common errors related to JSON parsing.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	ct := r.Header.Get("Content-Type")
	if ct != "" {
		mediaType := strings.ToLower(strings.TrimSpace(strings.Split(ct, ";")[0]))
		if mediaType != "application/json" {
			msg := "Content-Type header is not application/json"
			return &malformedRequest{status: http.StatusUnsupportedMediaType, msg: msg}
		}
	}

	// Limit the size of the request body to 1MB
	r.Body = http.MaxBytesReader(w, r.Body, 1048576)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(&dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var maxBytesError *http.MaxBytesError

		switch {
		case errors.As(err, &syntaxError):
			msg := fmt.Sprintf("Request body contains badly-formed JSON (at position %d)", syntaxError.Offset)
			return &malformedRequest{status: http.StatusBadRequest, msg: msg}

		case errors.Is(err, io.ErrUnexpectedEOF):
			msg := "Request body contains badly-formed JSON"
			return &malformedRequest{status: http.StatusBadRequest, msg: msg}

		case errors.As(err, &unmarshalTypeError):
			msg := fmt.Sprintf("Request body contains an invalid value for the %q field (at position %d)", unmarshalTypeError.Field, unmarshalTypeError.Offset)
			return &malformedRequest{status: http.StatusBadRequest, msg: msg}

		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			msg := fmt.Sprintf("Request body contains unknown field %s", fieldName)
			return &malformedRequest{status: http.StatusBadRequest, msg: msg}

		case errors.Is(err, io.EOF):
			msg := "Request body must not be empty"
			return &malformedRequest{status: http.StatusBadRequest, msg: msg}

		case errors.As(err, &maxBytesError):
			msg := "Request body must not be larger than 1MB"
			return &malformedRequest{status: http.StatusRequestEntityTooLarge, msg: msg}

		default:
			return err
		}
	}

	// Ensure the body only contains a single JSON object
	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		msg := "Request body must only contain a single JSON object"
		return &malformedRequest{status: http.StatusBadRequest, msg: msg}
	}

	return nil
}

// decodeOrFail decodes the body into dst and writes the error response
// itself when that fails.
func decodeOrFail(res http.ResponseWriter, req *http.Request, dst interface{}, logger *zap.Logger) bool {
	err := decodeJSONBody(res, req, dst)
	if err == nil {
		return true
	}

	var mr *malformedRequest
	if errors.As(err, &mr) {
		http.Error(res, mr.msg, mr.status)
		return false
	}

	logger.Error("cannot decode request", zap.Error(err))
	http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	return false
}

func writeJSON(res http.ResponseWriter, status int, v interface{}) {
	response, err := json.Marshal(v)
	if err != nil {
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(status)
	_, _ = res.Write(response)
}

// writeError maps a client failure onto a status: bad input is 400, an
// error reported by 0.mk is 422, anything upstream of it is 502.
func writeError(res http.ResponseWriter, err error, logger *zap.Logger) {
	status, body := errorResponse(err)
	if status >= http.StatusInternalServerError {
		logger.Warn("0.mk call failed", zap.Error(err))
	} else {
		logger.Info("request rejected", zap.Error(err))
	}
	writeJSON(res, status, body)
}

func errorResponse(err error) (int, models.ErrorResponse) {
	var apiErr *use0mk.APIError
	switch {
	case errors.Is(err, use0mk.ErrInvalidArgument):
		return http.StatusBadRequest, models.ErrorResponse{Kind: "invalid argument", Message: err.Error()}

	case errors.As(err, &apiErr):
		status := http.StatusUnprocessableEntity
		if apiErr.Kind == use0mk.KindRedirectDepthExceeded {
			status = http.StatusBadGateway
		}
		return status, models.ErrorResponse{Kind: apiErr.Kind.String(), Code: apiErr.Code, Message: apiErr.Message}

	default:
		return http.StatusBadGateway, models.ErrorResponse{Kind: "upstream failure", Message: err.Error()}
	}
}
