package router

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BerylCAtieno/ocr-service/internal/classifier"
	"github.com/BerylCAtieno/ocr-service/internal/middleware"
	"github.com/BerylCAtieno/ocr-service/internal/services"
	"github.com/BerylCAtieno/ocr-service/internal/storage"
	"github.com/BerylCAtieno/ocr-service/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticReader []string

func (s staticReader) ReadText(ctx context.Context, path string) ([]string, error) {
	return s, nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	logger := utils.NewLoggerWithWriter("error", io.Discard)
	svc := services.NewService(store, staticReader{"HELLO", "WORLD"}, classifier.NewStub(), 0, logger)

	srv := httptest.NewServer(NewRouter(svc, logger, 32<<20))
	t.Cleanup(srv.Close)
	return srv
}

func postFile(t *testing.T, url string) *http.Response {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "scan.png")
	require.NoError(t, err)
	part.Write([]byte("image bytes"))
	require.NoError(t, mw.Close())

	resp, err := http.Post(url, mw.FormDataContentType(), &body)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data)
}

func TestRoutes(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"OCR Service Running"}`, readBody(t, resp))
	assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))

	resp = postFile(t, srv.URL+"/extract")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"text":"HELLO WORLD"}`, readBody(t, resp))

	resp = postFile(t, srv.URL+"/classify")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t,
		`{"classification":"X-ray","confidence":0.98,"hint":"This looks like a chest X-ray. Vision AI can provide more details."}`,
		readBody(t, resp))
}

func TestMethodAndPathMismatch(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/extract")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/missing")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPreflight(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/extract", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
