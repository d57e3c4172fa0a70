package service

import (
	"LottoBoard/internal/adapter"
	"LottoBoard/internal/interfaces"
	"LottoBoard/internal/model"
	"LottoBoard/internal/state"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

// FetchService 开奖数据拉取：请求 → 归一化 → 提交 DrawState。
// 不做去重和配额限制，调用方应先检查 DrawState.Fetched。
type FetchService struct {
	registry *adapter.GameRegistry
	state    *state.DrawState
	recorder interfaces.FetchRecorder
	logger   *logrus.Logger
}

func NewFetchService(registry *adapter.GameRegistry, st *state.DrawState, recorder interfaces.FetchRecorder, logger *logrus.Logger) *FetchService {
	return &FetchService{
		registry: registry,
		state:    st,
		recorder: recorder,
		logger:   logger,
	}
}

// FetchGameData 同步执行一次拉取；所有错误在此终止，只记日志，DrawState 保持不变
func (s *FetchService) FetchGameData(ctx context.Context, game model.Game) {
	if err := s.fetch(ctx, game); err != nil {
		entry := s.logger.WithError(err).WithField("game", game)
		var netErr *model.NetworkError
		if errors.As(err, &netErr) && netErr.StatusCode != 0 {
			entry = entry.WithField("status", netErr.StatusCode)
		}
		entry.Error("拉取开奖数据失败")
	}
}

// FetchGameDataAsync 后台执行 FetchGameData，返回的通道在完成时关闭
func (s *FetchService) FetchGameDataAsync(ctx context.Context, game model.Game) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.FetchGameData(ctx, game)
	}()
	return done
}

func (s *FetchService) fetch(ctx context.Context, game model.Game) error {
	gameAdapter, err := s.registry.GetAdapter(game)
	if err != nil {
		return err
	}

	start := time.Now()
	payload, err := gameAdapter.FetchDraw(ctx)
	if err != nil {
		s.record(ctx, game, model.FetchStatusNetworkError, err, nil, start)
		return fmt.Errorf("%s请求失败: %w", gameAdapter.GetName(), err)
	}

	fields, err := gameAdapter.Normalize(payload)
	if err != nil {
		s.record(ctx, game, model.FetchStatusMalformed, err, nil, start)
		return fmt.Errorf("%s解析失败: %w", gameAdapter.GetName(), err)
	}

	if err := s.state.Commit(fields); err != nil {
		s.record(ctx, game, model.FetchStatusMalformed, err, nil, start)
		return fmt.Errorf("%s写入状态失败: %w", gameAdapter.GetName(), err)
	}

	s.record(ctx, game, model.FetchStatusSuccess, nil, payload, start)
	s.logger.WithFields(logrus.Fields{
		"game":      game,
		"draw_date": fields.DrawDate,
		"jackpot":   fields.Jackpot,
	}).Info("开奖数据已更新")
	return nil
}

// record 写调用记录；记录失败不影响拉取结果
func (s *FetchService) record(ctx context.Context, game model.Game, status model.FetchStatus, fetchErr error, payload []byte, start time.Time) {
	entry := &model.FetchLog{
		Game:       game,
		Status:     status,
		DurationMs: time.Since(start).Milliseconds(),
	}
	if fetchErr != nil {
		entry.Error = fetchErr.Error()
		var netErr *model.NetworkError
		if errors.As(fetchErr, &netErr) {
			entry.HTTPStatus = netErr.StatusCode
		}
	}
	if payload != nil {
		entry.Payload = datatypes.JSON(payload)
	}

	if err := s.recorder.Record(context.WithoutCancel(ctx), entry); err != nil {
		s.logger.WithError(err).WithField("game", game).Warn("保存调用记录失败")
	}
}
