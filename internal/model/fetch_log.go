package model

import (
	"time"

	"gorm.io/datatypes"
)

// FetchStatus 一次外部调用的结果分类
type FetchStatus string

const (
	FetchStatusSuccess      FetchStatus = "success"
	FetchStatusNetworkError FetchStatus = "network_error"
	FetchStatusMalformed    FetchStatus = "malformed"
)

// FetchLog 每次调用开奖接口留一条记录，用于统计 API 配额使用量（只统计，不限流）
type FetchLog struct {
	ID         string         `gorm:"column:id;primaryKey;type:varchar(64);comment:记录ID"`
	Game       Game           `gorm:"column:game;type:varchar(32);index;not null;comment:游戏"`
	Status     FetchStatus    `gorm:"column:status;type:varchar(16);not null;comment:结果：success/network_error/malformed"`
	HTTPStatus int            `gorm:"column:http_status;type:int;default:0;comment:HTTP状态码"`
	Error      string         `gorm:"column:error;type:text;comment:错误信息"`
	Payload    datatypes.JSON `gorm:"column:payload;type:jsonb;comment:成功时的原始响应"`
	DurationMs int64          `gorm:"column:duration_ms;type:bigint;default:0;comment:耗时（毫秒）"`
	CreatedAt  time.Time      `gorm:"column:created_at;type:timestamp;index;default:now();comment:调用时间"`
}

func (FetchLog) TableName() string { return "fetch_logs" }
