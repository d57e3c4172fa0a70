package service

import (
	"context"
	"time"

	"LottoBoard/internal/config"
	"LottoBoard/internal/interfaces"

	"github.com/sirupsen/logrus"
)

// RetentionService 定时删除过期的调用记录
type RetentionService struct {
	cfg      config.RetentionConfig
	recorder interfaces.FetchRecorder
	logger   *logrus.Logger
	now      func() time.Time
}

func NewRetentionService(cfg config.RetentionConfig, recorder interfaces.FetchRecorder, logger *logrus.Logger) *RetentionService {
	return &RetentionService{cfg: cfg, recorder: recorder, logger: logger, now: time.Now}
}

// Run 删除 KeepDays 天之前的记录；KeepDays<=0 时不清理
func (s *RetentionService) Run(ctx context.Context) error {
	if s.cfg.KeepDays <= 0 {
		s.logger.Debug("Retention: keep_days 未配置，跳过清理")
		return nil
	}
	before := s.now().AddDate(0, 0, -s.cfg.KeepDays)
	deleted, err := s.recorder.DeleteBefore(ctx, before)
	if err != nil {
		return err
	}
	s.logger.WithFields(logrus.Fields{
		"before":  before.Format(time.RFC3339),
		"deleted": deleted,
	}).Info("Retention: 已清理过期调用记录")
	return nil
}
