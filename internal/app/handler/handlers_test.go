package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/atinyakov/use0mk/internal/app/handler"
	"github.com/atinyakov/use0mk/internal/mocks"
	"github.com/atinyakov/use0mk/internal/models"
	"github.com/atinyakov/use0mk/pkg/use0mk"
)

func testLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stdout"}
	cfg.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	l, _ := cfg.Build()
	return l
}

func testLink(t *testing.T, name string) *use0mk.Link {
	body := fmt.Sprintf(`{"status": 1, "dolg": "https://example.com/%[1]s", "kratok": "http://0.mk/%[1]s", "nastavka": "%[1]s"}`, name)
	link, err := use0mk.ParseResponse(use0mk.OriginShorten, strings.NewReader(body))
	require.NoError(t, err)
	return link
}

func apiError(t *testing.T, code int, msg string) error {
	body := fmt.Sprintf(`{"status": 0, "greskaId": %d, "greskaMsg": %q}`, code, msg)
	_, err := use0mk.ParseResponse(use0mk.OriginShorten, strings.NewReader(body))
	require.Error(t, err)
	return err
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestShorten(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockLinkServiceIface(ctrl)
	h := handler.NewPost(mockService, testLogger())

	tests := []struct {
		name         string
		body         string
		mockCall     bool
		mockReturn   *use0mk.Link
		mockErr      error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Created",
			body:         `{"url": "https://example.com/abc", "short_name": "abc"}`,
			mockCall:     true,
			mockReturn:   testLink(t, "abc"),
			expectedCode: http.StatusCreated,
			expectedBody: `"short_uri":"http://0.mk/abc"`,
		},
		{
			name:         "Short name taken",
			body:         `{"url": "https://example.com/abc", "short_name": "abc"}`,
			mockCall:     true,
			mockErr:      apiError(t, 4, "Nastavkata e zafatena"),
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `"code":4`,
		},
		{
			name:         "Invalid argument",
			body:         `{"url": "https://example.com/abc", "short_name": "abc"}`,
			mockCall:     true,
			mockErr:      fmt.Errorf("%w: bad uri", use0mk.ErrInvalidArgument),
			expectedCode: http.StatusBadRequest,
			expectedBody: `"kind":"invalid argument"`,
		},
		{
			name:         "Upstream down",
			body:         `{"url": "https://example.com/abc", "short_name": "abc"}`,
			mockCall:     true,
			mockErr:      errors.New("connection refused"),
			expectedCode: http.StatusBadGateway,
			expectedBody: `"kind":"upstream failure"`,
		},
		{
			name:         "Malformed JSON",
			body:         `{"url": `,
			expectedCode: http.StatusBadRequest,
			expectedBody: "badly-formed JSON",
		},
		{
			name:         "Unknown field",
			body:         `{"link": "https://example.com"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: "unknown field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall {
				mockService.EXPECT().
					Shorten(gomock.Any(), "https://example.com/abc", "abc").
					Return(tt.mockReturn, tt.mockErr).
					Times(1)
			}

			rec := httptest.NewRecorder()
			h.Shorten(rec, jsonRequest(http.MethodPost, "/api/shorten", tt.body))

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestShorten_WrongContentType(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := handler.NewPost(mocks.NewMockLinkServiceIface(ctrl), testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/shorten", bytes.NewBufferString("https://example.com"))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()

	h.Shorten(rec, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestPreviewByName(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockLinkServiceIface(ctrl)
	h := handler.NewGet(mockService, testLogger())

	mockService.EXPECT().
		Preview(gomock.Any(), models.PreviewRequest{ShortName: "abc"}).
		Return(testLink(t, "abc"), nil)

	req := muxRequestWithParam(httptest.NewRequest(http.MethodGet, "/api/preview/abc", nil), "name", "abc")
	rec := httptest.NewRecorder()
	h.PreviewByName(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "https://example.com/abc", got["long_uri"])
	assert.Equal(t, "shorten", got["origin"])
}

func TestPreviewByName_RedirectLoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockLinkServiceIface(ctrl)
	h := handler.NewGet(mockService, testLogger())

	mockService.EXPECT().
		Preview(gomock.Any(), gomock.Any()).
		Return(nil, &use0mk.APIError{Kind: use0mk.KindRedirectDepthExceeded, Code: 100, Message: "Redirect level too deep (max 5)"})

	req := muxRequestWithParam(httptest.NewRequest(http.MethodGet, "/api/preview/abc", nil), "name", "abc")
	rec := httptest.NewRecorder()
	h.PreviewByName(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":100`)
}

func TestPreview(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockLinkServiceIface(ctrl)
	h := handler.NewPost(mockService, testLogger())

	mockService.EXPECT().
		Preview(gomock.Any(), models.PreviewRequest{URI: "http://0.mk/abc"}).
		Return(testLink(t, "abc"), nil)

	rec := httptest.NewRecorder()
	h.Preview(rec, jsonRequest(http.MethodPost, "/api/preview", `{"uri": "http://0.mk/abc"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"short_name":"abc"`)
}

func TestDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockLinkServiceIface(ctrl)
	h := handler.NewPost(mockService, testLogger())

	want := models.DeleteRequest{DeleteURI: "http://0.mk/brisi/abc", DeleteCode: "k1"}

	t.Run("Deleted", func(t *testing.T) {
		mockService.EXPECT().Delete(gomock.Any(), want).Return(true, nil)

		rec := httptest.NewRecorder()
		h.Delete(rec, jsonRequest(http.MethodPost, "/api/delete", `{"delete_uri": "http://0.mk/brisi/abc", "delete_code": "k1"}`))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"deleted": true}`, rec.Body.String())
	})

	t.Run("Refused", func(t *testing.T) {
		mockService.EXPECT().Delete(gomock.Any(), want).Return(false, nil)

		rec := httptest.NewRecorder()
		h.Delete(rec, jsonRequest(http.MethodPost, "/api/delete", `{"delete_uri": "http://0.mk/brisi/abc", "delete_code": "k1"}`))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"deleted": false}`, rec.Body.String())
	})
}

func TestText(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockLinkServiceIface(ctrl)
	h := handler.NewPost(mockService, testLogger())

	t.Run("Rewritten", func(t *testing.T) {
		mockService.EXPECT().
			ShortenText(gomock.Any(), "see https://example.com/abc").
			Return("see http://0.mk/abc", []*use0mk.Link{testLink(t, "abc")}, nil)

		rec := httptest.NewRecorder()
		h.Text(rec, jsonRequest(http.MethodPost, "/api/text", `{"text": "see https://example.com/abc"}`))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp models.TextResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "see http://0.mk/abc", resp.Text)
		require.Len(t, resp.Links, 1)
		assert.Contains(t, string(resp.Links[0]), `"short_uri":"http://0.mk/abc"`)
	})

	t.Run("Failure lists created links", func(t *testing.T) {
		mockService.EXPECT().
			ShortenText(gomock.Any(), gomock.Any()).
			Return("a b", []*use0mk.Link{testLink(t, "abc")}, apiError(t, 5, "Pogresen API kluc"))

		rec := httptest.NewRecorder()
		h.Text(rec, jsonRequest(http.MethodPost, "/api/text", `{"text": "a b"}`))

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		var resp struct {
			Code  int               `json:"code"`
			Links []json.RawMessage `json:"links"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 5, resp.Code)
		assert.Len(t, resp.Links, 1)
	})
}

func TestDeleteBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockLinkServiceIface(ctrl)
	h := handler.NewDelete(mockService, testLogger())

	t.Run("valid request returns 202", func(t *testing.T) {
		done := make(chan struct{})
		mockService.EXPECT().
			EnqueueDeletes(gomock.Any(), []models.DeleteRequest{
				{DeleteURI: "http://0.mk/brisi/a", DeleteCode: "k1"},
				{DeleteURI: "http://0.mk/brisi/b", DeleteCode: "k2"},
			}).
			Do(func(context.Context, []models.DeleteRequest) { close(done) })

		body := `[{"delete_uri": "http://0.mk/brisi/a", "delete_code": "k1"}, {"delete_uri": "http://0.mk/brisi/b", "delete_code": "k2"}]`
		rec := httptest.NewRecorder()
		h.DeleteBatch(rec, jsonRequest(http.MethodDelete, "/api/links", body))

		require.Equal(t, http.StatusAccepted, rec.Code)
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("deletes were not enqueued")
		}
	})

	t.Run("empty list returns 400", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.DeleteBatch(rec, jsonRequest(http.MethodDelete, "/api/links", `[]`))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed JSON returns 400", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.DeleteBatch(rec, jsonRequest(http.MethodDelete, "/api/links", `{invalid json}`))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

// muxRequestWithParam simulates chi's URLParam extraction
func muxRequestWithParam(r *http.Request, key, value string) *http.Request {
	tctx := chi.NewRouteContext()
	tctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, tctx))
}
