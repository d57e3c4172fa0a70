package interfaces

import (
	"context"

	"LottoBoard/internal/model"
)

// DrawFetcher 拉取某个游戏的最新开奖并提交到 DrawState；失败只记日志，不向上返回
type DrawFetcher interface {
	FetchGameData(ctx context.Context, game model.Game)
	// FetchGameDataAsync 立即返回，通道在拉取结束（无论成败）时关闭
	FetchGameDataAsync(ctx context.Context, game model.Game) <-chan struct{}
}
