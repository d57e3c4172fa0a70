package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Scheduler 基于 robfig/cron 的定时任务，任务 panic 会被恢复并记录
type Scheduler struct {
	cron   *cron.Cron
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithChain(cron.Recover(cron.PrintfLogger(logger)))),
		logger: logger,
	}
}

// AddJob 注册任务；job 返回的错误只记日志
func (s *Scheduler) AddJob(ctx context.Context, name, spec string, job func(ctx context.Context) error) error {
	_, err := s.cron.AddFunc(spec, func() {
		if err := job(ctx); err != nil {
			s.logger.WithError(err).WithField("job", name).Error("定时任务执行失败")
		}
	})
	if err != nil {
		return err
	}
	s.logger.WithFields(logrus.Fields{"job": name, "spec": spec}).Info("定时任务已注册")
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop 停止调度并等待正在运行的任务结束
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// Len 已注册任务数
func (s *Scheduler) Len() int {
	return len(s.cron.Entries())
}
