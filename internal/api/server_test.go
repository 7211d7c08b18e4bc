package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/toronto-rental-dashboard/internal/config"
	"github.com/vfg2006/toronto-rental-dashboard/internal/domain"
	"github.com/vfg2006/toronto-rental-dashboard/internal/usecases/dashboard/mocks"
	"github.com/vfg2006/toronto-rental-dashboard/pkg/log"
	"go.uber.org/mock/gomock"
)

func newTestHandler(t *testing.T) (http.Handler, *mocks.MockDashboard) {
	t.Helper()
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockDashboard(ctrl)

	cfg := &config.Config{
		Cors: config.Cors{AllowedOrigins: []string{"http://localhost:8050"}},
	}

	h, err := NewHandler(cfg, service)
	require.NoError(t, err)
	return h, service
}

func TestNewHandler_Routes(t *testing.T) {
	h, service := newTestHandler(t)

	service.EXPECT().RenderBar(gomock.Nil(), "room_type").Return(domain.EmptyFigure(), nil)

	tests := []struct {
		name         string
		method       string
		path         string
		expectedCode int
	}{
		{name: "healthcheck", method: http.MethodGet, path: "/healthcheck", expectedCode: http.StatusOK},
		{name: "gráfico de barras", method: http.MethodGet, path: "/_dashboard/bar?feature=room_type", expectedCode: http.StatusOK},
		{name: "rota inexistente", method: http.MethodGet, path: "/api/v1/listings", expectedCode: http.StatusNotFound},
		{name: "método não permitido", method: http.MethodPost, path: "/_dashboard/bar", expectedCode: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestNewHandler_NotFoundBody(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"code":"VAL_003","message":"Rota não encontrada"}`, rec.Body.String())
}

func TestNewHandler_Cors(t *testing.T) {
	h, _ := newTestHandler(t)

	tests := []struct {
		name           string
		origin         string
		expectedHeader string
	}{
		{name: "origem liberada", origin: "http://localhost:8050", expectedHeader: "http://localhost:8050"},
		{name: "origem desconhecida", origin: "http://example.com", expectedHeader: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, "/_dashboard/bar", nil)
			req.Header.Set("Origin", tt.origin)

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.expectedHeader, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestNew_Address(t *testing.T) {
	log.SetupTestLogger()

	cfg := &config.Config{Server: config.Server{Host: "127.0.0.1", Port: "8050"}}

	srv, err := New(cfg, mocks.NewMockDashboard(gomock.NewController(t)))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8050", srv.httpServer.Addr)
}
