package api

import (
	"net/http"

	"LottoBoard/internal/service"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct{}

func NewMenuHandler() *MenuHandler {
	return &MenuHandler{}
}

// GetMenu GET /api/menu?current=powerball|megamillions|settings
func (h *MenuHandler) GetMenu(c *gin.Context) {
	current, err := service.ParseScreen(c.Query("current"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, service.BuildMenu(current))
}
