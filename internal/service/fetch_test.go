package service

import (
	"context"
	"errors"
	"testing"

	"LottoBoard/internal/adapter"
	"LottoBoard/internal/currency"
	"LottoBoard/internal/model"
	"LottoBoard/internal/repository"
	"LottoBoard/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFetchFixture(a *fakeAdapter) (*FetchService, *state.DrawState, *repository.MemoryFetchLogRepository) {
	st := state.New(currency.EUR)
	rec := repository.NewMemoryFetchLogRepository().(*repository.MemoryFetchLogRepository)
	reg := adapter.NewStaticRegistry(quietLogger(), a)
	return NewFetchService(reg, st, rec, quietLogger()), st, rec
}

func TestFetchGameDataCommits(t *testing.T) {
	a := &fakeAdapter{game: model.GamePowerBall, payload: []byte(`{"result":{}}`), fields: powerBallFields()}
	svc, st, rec := newFetchFixture(a)

	svc.FetchGameData(context.Background(), model.GamePowerBall)

	assert.True(t, st.Fetched(model.GamePowerBall))
	fields, _ := st.Game(model.GamePowerBall)
	assert.Equal(t, *powerBallFields(), fields)

	logs := rec.List()
	require.Len(t, logs, 1)
	assert.Equal(t, model.FetchStatusSuccess, logs[0].Status)
	assert.JSONEq(t, `{"result":{}}`, string(logs[0].Payload))
}

func TestFetchGameDataNetworkFailureLeavesStateUntouched(t *testing.T) {
	a := &fakeAdapter{
		game:     model.GamePowerBall,
		fetchErr: &model.NetworkError{Game: model.GamePowerBall, StatusCode: 429, Err: errors.New("quota exceeded")},
	}
	svc, st, rec := newFetchFixture(a)

	svc.FetchGameData(context.Background(), model.GamePowerBall)

	assert.False(t, st.Fetched(model.GamePowerBall))
	assert.Equal(t, currency.NotLoaded, st.Value(model.GamePowerBall, model.FieldJackpot))
	logs := rec.List()
	require.Len(t, logs, 1)
	assert.Equal(t, model.FetchStatusNetworkError, logs[0].Status)
	assert.Equal(t, 429, logs[0].HTTPStatus)
	assert.Nil(t, logs[0].Payload)
}

func TestFetchGameDataMalformedPayloadLeavesStateUntouched(t *testing.T) {
	a := &fakeAdapter{
		game:    model.GameMegaMillions,
		payload: []byte(`{}`),
		normErr: &model.MalformedPayloadError{Game: model.GameMegaMillions, Key: "result"},
	}
	svc, st, rec := newFetchFixture(a)

	svc.FetchGameData(context.Background(), model.GameMegaMillions)

	assert.False(t, st.Fetched(model.GameMegaMillions))
	for _, f := range model.GameMegaMillions.Fields() {
		assert.Equal(t, currency.NotLoaded, st.Value(model.GameMegaMillions, f))
	}
	assert.Equal(t, model.FetchStatusMalformed, rec.List()[0].Status)
}

func TestFetchGameDataIsNotGated(t *testing.T) {
	a := &fakeAdapter{game: model.GamePowerBall, payload: []byte(`{}`), fields: powerBallFields()}
	svc, st, rec := newFetchFixture(a)

	svc.FetchGameData(context.Background(), model.GamePowerBall)
	require.True(t, st.Fetched(model.GamePowerBall))
	svc.FetchGameData(context.Background(), model.GamePowerBall)

	assert.Equal(t, 2, a.fetches)
	assert.Len(t, rec.List(), 2)
}

func TestFetchGameDataFailureAfterSuccessKeepsOldState(t *testing.T) {
	a := &fakeAdapter{game: model.GamePowerBall, payload: []byte(`{}`), fields: powerBallFields()}
	svc, st, _ := newFetchFixture(a)
	svc.FetchGameData(context.Background(), model.GamePowerBall)

	a.fetchErr = &model.NetworkError{Game: model.GamePowerBall, Err: errors.New("down")}
	svc.FetchGameData(context.Background(), model.GamePowerBall)

	assert.True(t, st.Fetched(model.GamePowerBall))
	assert.Equal(t, "$20 Million", st.Value(model.GamePowerBall, model.FieldJackpot))
}

func TestFetchGameDataUnknownGame(t *testing.T) {
	a := &fakeAdapter{game: model.GamePowerBall, fields: powerBallFields()}
	svc, st, rec := newFetchFixture(a)

	svc.FetchGameData(context.Background(), model.GameMegaMillions)

	assert.False(t, st.Fetched(model.GameMegaMillions))
	assert.Empty(t, rec.List())
}

func TestFetchGameDataAsync(t *testing.T) {
	a := &fakeAdapter{game: model.GamePowerBall, payload: []byte(`{}`), fields: powerBallFields()}
	svc, st, _ := newFetchFixture(a)

	<-svc.FetchGameDataAsync(context.Background(), model.GamePowerBall)
	assert.True(t, st.Fetched(model.GamePowerBall))
}
