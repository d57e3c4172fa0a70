package service

import (
	"context"
	"strings"
	"sync"

	"LottoBoard/internal/currency"
	"LottoBoard/internal/interfaces"
	"LottoBoard/internal/model"
	"LottoBoard/internal/state"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const numberPlaceholder = "00"

// ScreenView 单个游戏页面的显示数据（金额已按所选币种换算）
type ScreenView struct {
	Game          model.Game `json:"game"`
	Title         string     `json:"title"`
	Fetched       bool       `json:"fetched"`
	Currency      string     `json:"currency"`
	Jackpot       string     `json:"jackpot"`
	Multiplier    string     `json:"multiplier"`
	Numbers       string     `json:"numbers"`
	DrawDate      string     `json:"draw_date"`
	NextJackpot   string     `json:"next_jackpot"`
	NextDrawLabel string     `json:"next_draw_label"`
}

// FieldUpdate 推送给页面的单字段变更（显示值）
type FieldUpdate struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// ScreenService 页面层：按 fetched 标记决定是否拉取，并组装显示数据。
// 同一游戏并发打开页面时只触发一次拉取（singleflight）。
type ScreenService struct {
	appCtx  context.Context
	state   *state.DrawState
	fetcher interfaces.DrawFetcher
	group   singleflight.Group
	logger  *logrus.Logger
}

// NewScreenService appCtx 为应用生命周期上下文，后台拉取不随单个请求取消
func NewScreenService(appCtx context.Context, st *state.DrawState, fetcher interfaces.DrawFetcher, logger *logrus.Logger) *ScreenService {
	return &ScreenService{
		appCtx:  appCtx,
		state:   st,
		fetcher: fetcher,
		logger:  logger,
	}
}

// Open 打开页面：未拉取过则在后台拉取；wait 为 true 时等待本次拉取结束再返回
func (s *ScreenService) Open(ctx context.Context, game model.Game, wait bool) (*ScreenView, error) {
	if !s.state.Fetched(game) {
		done := s.ensureFetch(game)
		if wait {
			select {
			case <-done:
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return s.View(game), nil
}

func (s *ScreenService) ensureFetch(game model.Game) <-chan singleflight.Result {
	return s.group.DoChan(string(game), func() (interface{}, error) {
		// 排队期间可能已被其他请求拉取成功
		if s.state.Fetched(game) {
			return nil, nil
		}
		s.logger.WithField("game", game).Info("页面首次打开，拉取开奖数据")
		<-s.fetcher.FetchGameDataAsync(s.appCtx, game)
		return nil, nil
	})
}

// View 按当前状态组装页面数据，不触发拉取
func (s *ScreenService) View(game model.Game) *ScreenView {
	fields, fetched := s.state.Game(game)
	cur := s.state.Currency()

	return &ScreenView{
		Game:          game,
		Title:         game.DisplayName(),
		Fetched:       fetched,
		Currency:      string(cur),
		Jackpot:       currency.Convert(fields.Jackpot, cur),
		Multiplier:    fields.Multiplier,
		Numbers:       viewNumbers(game, fields),
		DrawDate:      fields.DrawDate,
		NextJackpot:   currency.Convert(fields.NextJackpot, cur),
		NextDrawLabel: nextDrawLabel(game, fields.NextDrawDate),
	}
}

// Watch 订阅页面所有字段；先推送每个字段的当前值，之后推送每次写入。
// ctx 结束时取消订阅并关闭通道。通道满时丢弃更新。
func (s *ScreenService) Watch(ctx context.Context, game model.Game) (<-chan FieldUpdate, error) {
	w := &watcher{ch: make(chan FieldUpdate, 64), logger: s.logger, game: game}

	var unsubscribers []func()
	cleanup := func() {
		for _, u := range unsubscribers {
			u()
		}
	}

	for _, f := range game.Fields() {
		field := f
		unsubscribe, err := s.state.Subscribe(game, field, func(raw string) {
			w.send(FieldUpdate{Field: string(field), Value: s.displayValue(game, field, raw, s.state.Currency())})
		})
		if err != nil {
			cleanup()
			w.close()
			return nil, err
		}
		unsubscribers = append(unsubscribers, unsubscribe)
	}

	unsubscribers = append(unsubscribers, s.state.SubscribeCurrency(func(c currency.Currency) {
		w.send(FieldUpdate{Field: "currency", Value: string(c)})
		for _, f := range []model.Field{model.FieldJackpot, model.FieldNextJackpot} {
			w.send(FieldUpdate{Field: string(f), Value: currency.Convert(s.state.Value(game, f), c)})
		}
	}))

	go func() {
		<-ctx.Done()
		cleanup()
		w.close()
	}()
	return w.ch, nil
}

func (s *ScreenService) displayValue(game model.Game, field model.Field, raw string, cur currency.Currency) string {
	switch field {
	case model.FieldJackpot, model.FieldNextJackpot:
		return currency.Convert(raw, cur)
	case model.FieldNumbers:
		fields, _ := s.state.Game(game)
		return formatNumbers(fields.Numbers)
	case model.FieldBonusNumber:
		return orPlaceholder(raw)
	case model.FieldNextDrawDate:
		return nextDrawLabel(game, raw)
	default:
		return raw
	}
}

// viewNumbers 页面上的号码行；MegaMillions 在末尾追加 mega ball
func viewNumbers(game model.Game, fields model.GameFields) string {
	if game == model.GameMegaMillions {
		return formatNumbers(fields.Numbers) + ", " + orPlaceholder(fields.BonusNumber)
	}
	return formatNumbers(fields.Numbers)
}

// formatNumbers 未加载的号码显示为 "00"
func formatNumbers(numbers []string) string {
	out := make([]string, model.WinningNumberCount)
	for i := range out {
		if i < len(numbers) {
			out[i] = orPlaceholder(numbers[i])
		} else {
			out[i] = numberPlaceholder
		}
	}
	return strings.Join(out, ", ")
}

func orPlaceholder(n string) string {
	if n == "" {
		return numberPlaceholder
	}
	return n
}

func nextDrawLabel(game model.Game, date string) string {
	if date == "" {
		return ""
	}
	if game == model.GamePowerBall {
		return "at " + date
	}
	return "on " + date
}

type watcher struct {
	mu     sync.Mutex
	closed bool
	ch     chan FieldUpdate
	game   model.Game
	logger *logrus.Logger
}

func (w *watcher) send(u FieldUpdate) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	select {
	case w.ch <- u:
	default:
		w.logger.WithFields(logrus.Fields{"game": w.game, "field": u.Field}).Warn("页面推送通道已满，丢弃更新")
	}
}

func (w *watcher) close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.closed {
		w.closed = true
		close(w.ch)
	}
}
