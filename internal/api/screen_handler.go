package api

import (
	"errors"
	"io"
	"net/http"

	"LottoBoard/internal/model"
	"LottoBoard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ScreenHandler 游戏页面数据与实时推送
type ScreenHandler struct {
	screens *service.ScreenService
	logger  *logrus.Logger
}

// NewScreenHandler 创建 ScreenHandler
func NewScreenHandler(screens *service.ScreenService, logger *logrus.Logger) *ScreenHandler {
	return &ScreenHandler{screens: screens, logger: logger}
}

// GetScreen 打开页面，未拉取过的游戏会触发一次拉取
// GET /api/screens/:game?wait=true
func (h *ScreenHandler) GetScreen(c *gin.Context) {
	game, ok := h.parseGame(c)
	if !ok {
		return
	}
	wait := c.Query("wait") == "true"

	view, err := h.screens.Open(c.Request.Context(), game, wait)
	if err != nil {
		h.logger.WithError(err).WithField("game", game).Warn("GetScreen 等待拉取被中断")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// StreamEvents SSE 推送页面字段变化：先推送当前值，之后每次写入推送一次
// GET /api/screens/:game/events
func (h *ScreenHandler) StreamEvents(c *gin.Context) {
	game, ok := h.parseGame(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	updates, err := h.screens.Watch(ctx, game)
	if err != nil {
		h.logger.WithError(err).Error("StreamEvents 订阅失败")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	clientID := uuid.NewString()
	entry := h.logger.WithFields(logrus.Fields{"game": game, "client": clientID})
	entry.Info("SSE 客户端已连接")
	defer entry.Info("SSE 客户端已断开")

	c.Stream(func(w io.Writer) bool {
		select {
		case u, open := <-updates:
			if !open {
				return false
			}
			c.SSEvent(u.Field, u)
			return true
		case <-ctx.Done():
			return false
		}
	})
}

func (h *ScreenHandler) parseGame(c *gin.Context) (model.Game, bool) {
	game, err := model.ParseGame(c.Param("game"))
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, model.ErrUnknownGame) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return "", false
	}
	return game, true
}
