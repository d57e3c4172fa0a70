package service

import (
	"context"
	"time"

	"LottoBoard/internal/config"
	"LottoBoard/internal/interfaces"
)

// QuotaUsage 配额窗口内的接口调用统计
type QuotaUsage struct {
	Limit       int       `json:"limit"`
	Used        int64     `json:"used"`
	Remaining   int64     `json:"remaining"`
	WindowDays  int       `json:"window_days"`
	WindowStart time.Time `json:"window_start"`
}

// QuotaService 只报告用量，不拦截任何请求
type QuotaService struct {
	cfg      config.QuotaConfig
	recorder interfaces.FetchRecorder
	now      func() time.Time
}

func NewQuotaService(cfg config.QuotaConfig, recorder interfaces.FetchRecorder) *QuotaService {
	return &QuotaService{cfg: cfg, recorder: recorder, now: time.Now}
}

// Usage 统计最近 WindowDays 天的调用次数
func (s *QuotaService) Usage(ctx context.Context) (*QuotaUsage, error) {
	start := s.now().AddDate(0, 0, -s.cfg.WindowDays)
	used, err := s.recorder.CountSince(ctx, start)
	if err != nil {
		return nil, err
	}
	remaining := int64(s.cfg.Limit) - used
	if remaining < 0 {
		remaining = 0
	}
	return &QuotaUsage{
		Limit:       s.cfg.Limit,
		Used:        used,
		Remaining:   remaining,
		WindowDays:  s.cfg.WindowDays,
		WindowStart: start,
	}, nil
}
