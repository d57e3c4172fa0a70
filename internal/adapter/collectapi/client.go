// Package collectapi 开奖数据接口的请求封装，两个游戏共用
package collectapi

import (
	"LottoBoard/internal/config"
	"LottoBoard/internal/model"
	"LottoBoard/internal/utils/httpclient"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
)

// Client 单个游戏接口的客户端
type Client struct {
	game       model.Game
	url        string
	apiKey     string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient 创建客户端
func NewClient(game model.Game, cfg *config.GameConfig, logger *logrus.Logger) *Client {
	return &Client{
		game:       game,
		url:        cfg.URL(),
		apiKey:     cfg.APIKey,
		httpClient: httpclient.NewHTTPClient(cfg, logger),
		logger:     logger,
	}
}

// Get 发起一次 GET，返回响应体；传输失败或非 2xx 返回 *model.NetworkError
func (c *Client) Get(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, &model.NetworkError{Game: c.game, Err: fmt.Errorf("构建请求失败: %w", err)}
	}
	req.Header.Set("content-type", "application/json")
	req.Header.Set("authorization", "apikey "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &model.NetworkError{Game: c.game, Err: err}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.WithError(err).WithField("game", c.game).Warn("关闭响应体失败")
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &model.NetworkError{Game: c.game, StatusCode: resp.StatusCode, Err: fmt.Errorf("读取响应失败: %w", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &model.NetworkError{Game: c.game, StatusCode: resp.StatusCode, Err: fmt.Errorf("%s", truncate(body, 256))}
	}
	return body, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
