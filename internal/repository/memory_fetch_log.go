package repository

import (
	"context"
	"sync"
	"time"

	"LottoBoard/internal/interfaces"
	"LottoBoard/internal/model"
)

// MemoryFetchLogRepository 未配置数据库时使用，进程退出即丢失
type MemoryFetchLogRepository struct {
	mu   sync.Mutex
	logs []model.FetchLog
}

func NewMemoryFetchLogRepository() interfaces.FetchRecorder {
	return &MemoryFetchLogRepository{}
}

func (r *MemoryFetchLogRepository) Record(_ context.Context, log *model.FetchLog) error {
	fillDefaults(log)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, *log)
	return nil
}

func (r *MemoryFetchLogRepository) CountSince(_ context.Context, since time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, l := range r.logs {
		if !l.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (r *MemoryFetchLogRepository) DeleteBefore(_ context.Context, before time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.logs[:0]
	var deleted int64
	for _, l := range r.logs {
		if l.CreatedAt.Before(before) {
			deleted++
			continue
		}
		kept = append(kept, l)
	}
	r.logs = kept
	return deleted, nil
}

// List 返回全部记录的拷贝
func (r *MemoryFetchLogRepository) List() []model.FetchLog {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.FetchLog(nil), r.logs...)
}
