package repository

import (
	"context"
	"fmt"
	"time"

	"LottoBoard/internal/interfaces"
	"LottoBoard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FetchLogRepository struct {
	db *gorm.DB
}

func NewFetchLogRepository(db *gorm.DB) interfaces.FetchRecorder {
	return &FetchLogRepository{db: db}
}

// Record 写入一条调用记录
func (r *FetchLogRepository) Record(ctx context.Context, log *model.FetchLog) error {
	fillDefaults(log)
	if err := r.db.WithContext(ctx).Create(log).Error; err != nil {
		return fmt.Errorf("保存调用记录失败: %w, game: %s", err, log.Game)
	}
	return nil
}

// CountSince 统计某时间点之后的调用次数（配额窗口内用量）
func (r *FetchLogRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.FetchLog{}).
		Where("created_at >= ?", since).
		Count(&n).Error; err != nil {
		return 0, fmt.Errorf("统计调用次数失败: %w", err)
	}
	return n, nil
}

// DeleteBefore 删除过期记录，返回删除条数
func (r *FetchLogRepository) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("created_at < ?", before).Delete(&model.FetchLog{})
	if res.Error != nil {
		return 0, fmt.Errorf("清理调用记录失败: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func fillDefaults(log *model.FetchLog) {
	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}
}
