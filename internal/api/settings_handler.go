package api

import (
	"net/http"

	"LottoBoard/internal/currency"
	"LottoBoard/internal/state"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SettingsHandler 设置页：唯一会修改 selectedCurrency 的入口
type SettingsHandler struct {
	state  *state.DrawState
	logger *logrus.Logger
}

func NewSettingsHandler(st *state.DrawState, logger *logrus.Logger) *SettingsHandler {
	return &SettingsHandler{state: st, logger: logger}
}

type currencyRequest struct {
	Currency string `json:"currency" binding:"required"`
}

type currencyResponse struct {
	Currency  currency.Currency   `json:"currency"`
	Supported []currency.Currency `json:"supported"`
}

// GetCurrency GET /api/settings/currency
func (h *SettingsHandler) GetCurrency(c *gin.Context) {
	c.JSON(http.StatusOK, currencyResponse{
		Currency:  h.state.Currency(),
		Supported: currency.Supported(),
	})
}

// PutCurrency PUT /api/settings/currency {"currency":"CAD"}
func (h *SettingsHandler) PutCurrency(c *gin.Context) {
	var req currencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cur, err := currency.Parse(req.Currency)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.state.SetCurrency(cur)
	h.logger.WithField("currency", cur).Info("显示币种已更新")
	c.JSON(http.StatusOK, currencyResponse{
		Currency:  cur,
		Supported: currency.Supported(),
	})
}
