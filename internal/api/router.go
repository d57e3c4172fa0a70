package api

import (
	"io"
	"net/http"

	"LottoBoard/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Handlers 路由依赖的全部 handler
type Handlers struct {
	Screen   *ScreenHandler
	Settings *SettingsHandler
	Menu     *MenuHandler
	Quota    *QuotaHandler
}

// NewRouter 注册全部路由。accessLog 为 gin 访问日志的输出，由调用方负责关闭
func NewRouter(cfg config.ServerConfig, h Handlers, accessLog io.Writer, logger *logrus.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.LoggerWithWriter(accessLog), gin.Recovery())
	r.Use(corsMiddleware(cfg.CorsOrigins))

	// 注册pprof 方便调试和监测性能问题
	if cfg.Pprof {
		pprof.Register(r)
		logger.Info("已注册 /debug/pprof")
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := r.Group("/api")
	apiGroup.GET("/screens/:game", h.Screen.GetScreen)
	apiGroup.GET("/screens/:game/events", h.Screen.StreamEvents)
	apiGroup.GET("/settings/currency", h.Settings.GetCurrency)
	apiGroup.PUT("/settings/currency", h.Settings.PutCurrency)
	apiGroup.GET("/menu", h.Menu.GetMenu)
	apiGroup.GET("/quota", h.Quota.GetQuota)

	return r
}

// corsMiddleware 未配置来源时允许全部
func corsMiddleware(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		return cors.Default()
	}
	cc := cors.DefaultConfig()
	cc.AllowOrigins = origins
	cc.AllowMethods = []string{http.MethodGet, http.MethodPut, http.MethodOptions}
	return cors.New(cc)
}
