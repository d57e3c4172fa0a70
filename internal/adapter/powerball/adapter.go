package powerball

import (
	"LottoBoard/internal/adapter"
	"LottoBoard/internal/adapter/collectapi"
	"LottoBoard/internal/config"
	"context"

	"LottoBoard/internal/interfaces"
	"LottoBoard/internal/model"

	"github.com/sirupsen/logrus"
)

func init() {
	adapter.Register(model.GamePowerBall, NewPowerBallAdapter)
}

type Adapter struct {
	client *collectapi.Client
	logger *logrus.Logger
}

func NewPowerBallAdapter(cfg *config.GameConfig, logger *logrus.Logger) interfaces.GameAdapter {
	return &Adapter{
		client: collectapi.NewClient(model.GamePowerBall, cfg, logger),
		logger: logger,
	}
}

// GetName ========== 实现GameAdapter接口 ==========
func (a *Adapter) GetName() string {
	return model.GamePowerBall.DisplayName()
}

func (a *Adapter) GetGame() model.Game {
	return model.GamePowerBall
}

func (a *Adapter) FetchDraw(ctx context.Context) ([]byte, error) {
	return a.client.Get(ctx)
}

// Normalize 响应结构：
//
//	{"result": {"jackpot", "date", "powerplay",
//	            "numbers": {"n1".."n5"},
//	            "next-jackpot": {"date", "amount"}}}
func (a *Adapter) Normalize(payload []byte) (*model.GameFields, error) {
	x, err := adapter.NewExtractor(model.GamePowerBall, payload)
	if err != nil {
		return nil, err
	}

	result := x.Object(x.Root(), "result")
	numbers := x.Object(result, "numbers")
	next := x.Object(result, "next-jackpot")

	fields := &model.GameFields{
		Game:         model.GamePowerBall,
		Jackpot:      x.String(result, "jackpot"),
		DrawDate:     x.String(result, "date"),
		Multiplier:   x.String(result, model.GamePowerBall.MultiplierKey()),
		Numbers:      x.Strings(numbers, "n1", "n2", "n3", "n4", "n5"),
		NextDrawDate: x.String(next, "date"),
		NextJackpot:  x.String(next, "amount"),
	}
	if err := x.Err(); err != nil {
		return nil, err
	}
	return fields, nil
}
