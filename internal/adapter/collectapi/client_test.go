package collectapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"LottoBoard/internal/config"
	"LottoBoard/internal/model"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSendsHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/chancegame/usaPowerball", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("content-type"))
		assert.Equal(t, "apikey k3y", r.Header.Get("authorization"))
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c := NewClient(model.GamePowerBall, &config.GameConfig{BaseURL: srv.URL, Path: "/chancegame/usaPowerball", APIKey: "k3y"}, logrus.New())
	body, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `{"success":true}`, string(body))
}

func TestGetNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"message":"bad key"}`))
	}))
	defer srv.Close()

	c := NewClient(model.GameMegaMillions, &config.GameConfig{BaseURL: srv.URL}, logrus.New())
	_, err := c.Get(context.Background())

	var netErr *model.NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Equal(t, http.StatusUnauthorized, netErr.StatusCode)
	assert.True(t, errors.Is(err, model.ErrNetwork))
}

func TestGetTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(model.GamePowerBall, &config.GameConfig{BaseURL: url}, logrus.New())
	_, err := c.Get(context.Background())
	assert.True(t, errors.Is(err, model.ErrNetwork))
}
