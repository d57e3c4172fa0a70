package api

import (
	"net/http"

	"LottoBoard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// QuotaHandler 接口调用配额用量（只读）
type QuotaHandler struct {
	quota  *service.QuotaService
	logger *logrus.Logger
}

func NewQuotaHandler(quota *service.QuotaService, logger *logrus.Logger) *QuotaHandler {
	return &QuotaHandler{quota: quota, logger: logger}
}

// GetQuota GET /api/quota
func (h *QuotaHandler) GetQuota(c *gin.Context) {
	usage, err := h.quota.Usage(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("GetQuota failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usage)
}
