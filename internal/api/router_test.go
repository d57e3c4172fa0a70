package api

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"LottoBoard/internal/config"
	"LottoBoard/internal/currency"
	"LottoBoard/internal/model"
	"LottoBoard/internal/repository"
	"LottoBoard/internal/service"
	"LottoBoard/internal/state"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// commitFetcher 每次调用都把固定数据写入 DrawState
type commitFetcher struct {
	state *state.DrawState
	calls int32
}

func (f *commitFetcher) FetchGameDataAsync(ctx context.Context, game model.Game) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		f.FetchGameData(ctx, game)
	}()
	return done
}

func (f *commitFetcher) FetchGameData(ctx context.Context, game model.Game) {
	atomic.AddInt32(&f.calls, 1)
	fields := &model.GameFields{
		Game:         game,
		Jackpot:      "$20 Million",
		DrawDate:     "Sat, Nov 7, 2020",
		Multiplier:   "2X",
		Numbers:      []string{"04", "12", "19", "33", "56"},
		NextDrawDate: "Wed, Nov 11, 2020",
		NextJackpot:  "$30 Million",
	}
	if game == model.GameMegaMillions {
		fields.BonusNumber = "6"
	}
	_ = f.state.Commit(fields)
}

type testEnv struct {
	router  *gin.Engine
	state   *state.DrawState
	fetcher *commitFetcher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	st := state.New(currency.EUR)
	fetcher := &commitFetcher{state: st}
	rec := repository.NewMemoryFetchLogRepository()

	screens := service.NewScreenService(context.Background(), st, fetcher, logger)
	quota := service.NewQuotaService(config.QuotaConfig{Limit: 500, WindowDays: 30}, rec)
	require.NoError(t, rec.Record(context.Background(), &model.FetchLog{Game: model.GamePowerBall, Status: model.FetchStatusSuccess}))

	r := NewRouter(config.ServerConfig{}, Handlers{
		Screen:   NewScreenHandler(screens, logger),
		Settings: NewSettingsHandler(st, logger),
		Menu:     NewMenuHandler(),
		Quota:    NewQuotaHandler(quota, logger),
	}, io.Discard, logger)
	return &testEnv{router: r, state: st, fetcher: fetcher}
}

func (e *testEnv) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealthz(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAccessLogWriter(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	var buf bytes.Buffer

	r := NewRouter(config.ServerConfig{}, Handlers{}, &buf, logger)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Contains(t, buf.String(), "/healthz")
}

func TestGetScreenWaitsForFetch(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/screens/powerball?wait=true", "")
	require.Equal(t, http.StatusOK, w.Code)

	view := decode[service.ScreenView](t, w)
	assert.True(t, view.Fetched)
	assert.Equal(t, "€16 Million", view.Jackpot)
	assert.Equal(t, "04, 12, 19, 33, 56", view.Numbers)
	assert.Equal(t, "at Wed, Nov 11, 2020", view.NextDrawLabel)

	env.do(http.MethodGet, "/api/screens/powerball?wait=true", "")
	assert.EqualValues(t, 1, atomic.LoadInt32(&env.fetcher.calls))
}

func TestGetScreenUnknownGame(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(http.MethodGet, "/api/screens/keno", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSettingsCurrency(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/settings/currency", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, currency.EUR, decode[currencyResponse](t, w).Currency)

	w = env.do(http.MethodPut, "/api/settings/currency", `{"currency":"cad"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, currency.CAD, env.state.Currency())

	w = env.do(http.MethodGet, "/api/screens/powerball?wait=true", "")
	assert.Equal(t, "$25 Million", decode[service.ScreenView](t, w).Jackpot)
}

func TestSettingsRejectsUnsupportedCurrency(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPut, "/api/settings/currency", `{"currency":"JPY"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(http.MethodPut, "/api/settings/currency", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Equal(t, currency.EUR, env.state.Currency())
}

func TestGetMenu(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/menu?current=settings", "")
	require.Equal(t, http.StatusOK, w.Code)
	menu := decode[service.Menu](t, w)
	assert.Equal(t, "Close Settings", menu.SwitchLabel)

	w = env.do(http.MethodGet, "/api/menu", "")
	assert.Equal(t, "Show Mega Millions", decode[service.Menu](t, w).SwitchLabel)

	w = env.do(http.MethodGet, "/api/menu?current=bingo", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetQuota(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/quota", "")
	require.Equal(t, http.StatusOK, w.Code)
	usage := decode[service.QuotaUsage](t, w)
	assert.EqualValues(t, 1, usage.Used)
	assert.EqualValues(t, 499, usage.Remaining)
}

func TestStreamEvents(t *testing.T) {
	env := newTestEnv(t)
	srv := httptest.NewServer(env.router)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/screens/megamillions/events", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/event-stream"), resp.Header.Get("Content-Type"))

	scanner := bufio.NewScanner(resp.Body)
	readUntil := func(want string) bool {
		for scanner.Scan() {
			if strings.Contains(scanner.Text(), want) {
				return true
			}
		}
		return false
	}

	require.True(t, readUntil("Loading..."), "initial jackpot should be streamed")

	require.NoError(t, env.state.Commit(&model.GameFields{
		Game:         model.GameMegaMillions,
		Jackpot:      "$100 Million",
		Numbers:      []string{"14", "19", "42", "51", "63"},
		BonusNumber:  "6",
		NextJackpot:  "$110 Million",
		NextDrawDate: "Tue, Nov 10, 2020",
	}))
	assert.True(t, readUntil("€84 Million"), "committed jackpot should be streamed")
}
