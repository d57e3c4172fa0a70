package service

import (
	"context"
	"io"

	"LottoBoard/internal/model"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// fakeAdapter 返回预设响应体，归一化可替换
type fakeAdapter struct {
	game      model.Game
	payload   []byte
	fetchErr  error
	fields    *model.GameFields
	normErr   error
	fetches   int
	normalize func([]byte) (*model.GameFields, error)
}

func (f *fakeAdapter) GetName() string     { return f.game.DisplayName() }
func (f *fakeAdapter) GetGame() model.Game { return f.game }

func (f *fakeAdapter) FetchDraw(ctx context.Context) ([]byte, error) {
	f.fetches++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.payload, nil
}

func (f *fakeAdapter) Normalize(payload []byte) (*model.GameFields, error) {
	if f.normalize != nil {
		return f.normalize(payload)
	}
	if f.normErr != nil {
		return nil, f.normErr
	}
	c := f.fields.Clone()
	return &c, nil
}

func powerBallFields() *model.GameFields {
	return &model.GameFields{
		Game:         model.GamePowerBall,
		Jackpot:      "$20 Million",
		DrawDate:     "Sat, Nov 7, 2020",
		Multiplier:   "2X",
		Numbers:      []string{"04", "12", "19", "33", "56"},
		NextDrawDate: "Wed, Nov 11, 2020",
		NextJackpot:  "$30 Million",
	}
}

func megaMillionsFields() *model.GameFields {
	return &model.GameFields{
		Game:         model.GameMegaMillions,
		Jackpot:      "$100 Million",
		DrawDate:     "Fri, Nov 6, 2020",
		Multiplier:   "3",
		Numbers:      []string{"14", "19", "42", "51", "63"},
		BonusNumber:  "6",
		NextDrawDate: "Tue, Nov 10, 2020",
		NextJackpot:  "$110 Million",
	}
}
