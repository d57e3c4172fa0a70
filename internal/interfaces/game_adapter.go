package interfaces

import (
	"context"

	"LottoBoard/internal/model"
)

// GameAdapter 每个彩票游戏必须实现的核心接口：拉取原始结果 + 归一化
type GameAdapter interface {
	GetName() string                                      // 游戏显示名
	GetGame() model.Game                                  // 游戏标识
	FetchDraw(ctx context.Context) ([]byte, error)        // 拉取原始响应体
	Normalize(payload []byte) (*model.GameFields, error) // 归一化为扁平字段，缺字段返回 MalformedPayloadError
}
