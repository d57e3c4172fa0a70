package megamillions

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
	adapter.Register(model.GameMegaMillions, NewMegaMillionsAdapter)
}

type Adapter struct {
	client *collectapi.Client
	logger *logrus.Logger
}

func NewMegaMillionsAdapter(cfg *config.GameConfig, logger *logrus.Logger) interfaces.GameAdapter {
	return &Adapter{
		client: collectapi.NewClient(model.GameMegaMillions, cfg, logger),
		logger: logger,
	}
}

// GetName ========== 实现GameAdapter接口 ==========
func (a *Adapter) GetName() string {
	return model.GameMegaMillions.DisplayName()
}

func (a *Adapter) GetGame() model.Game {
	return model.GameMegaMillions
}

func (a *Adapter) FetchDraw(ctx context.Context) ([]byte, error) {
	return a.client.Get(ctx)
}

// Normalize 与 PowerBall 相比多一个 mega ball（numbers.mb），加倍字段为 megaplier
func (a *Adapter) Normalize(payload []byte) (*model.GameFields, error) {
	x, err := adapter.NewExtractor(model.GameMegaMillions, payload)
	if err != nil {
		return nil, err
	}

	result := x.Object(x.Root(), "result")
	numbers := x.Object(result, "numbers")
	next := x.Object(result, "next-jackpot")

	fields := &model.GameFields{
		Game:         model.GameMegaMillions,
		Jackpot:      x.String(result, "jackpot"),
		DrawDate:     x.String(result, "date"),
		Multiplier:   x.String(result, model.GameMegaMillions.MultiplierKey()),
		Numbers:      x.Strings(numbers, "n1", "n2", "n3", "n4", "n5"),
		BonusNumber:  x.String(numbers, "mb"),
		NextDrawDate: x.String(next, "date"),
		NextJackpot:  x.String(next, "amount"),
	}
	if err := x.Err(); err != nil {
		return nil, err
	}
	return fields, nil
}
