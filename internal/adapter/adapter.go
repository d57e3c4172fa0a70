package adapter

import (
	"LottoBoard/internal/config"
	"LottoBoard/internal/interfaces"

	"github.com/sirupsen/logrus"
)

// Factory 游戏适配器工厂函数签名
// 入参：游戏接口配置、日志实例
// 出参：实现GameAdapter接口的适配器实例
type Factory func(cfg *config.GameConfig, logger *logrus.Logger) interfaces.GameAdapter
