package interfaces

import (
	"context"
	"time"

	"LottoBoard/internal/model"
)

// FetchRecorder 记录每次外部调用（配额统计用）
type FetchRecorder interface {
	Record(ctx context.Context, log *model.FetchLog) error
	CountSince(ctx context.Context, since time.Time) (int64, error)
	DeleteBefore(ctx context.Context, before time.Time) (int64, error)
}
