// internal/adapter/registry.go
package adapter

import (
	"LottoBoard/internal/config"
	"LottoBoard/internal/interfaces"
	"LottoBoard/internal/model"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// ========== 全局工厂函数注册表（各游戏包 init 中注册） ==========
var (
	factoryMu       sync.RWMutex
	factoryRegistry = make(map[model.Game]Factory)
)

// Register 供适配器init函数调用，注册工厂函数
func Register(game model.Game, factory Factory) {
	if factory == nil {
		panic(fmt.Sprintf("游戏%s的工厂函数不能为nil", game))
	}
	factoryMu.Lock()
	defer factoryMu.Unlock()
	if _, exists := factoryRegistry[game]; exists {
		logrus.Warnf("游戏%s的适配器已注册，将覆盖原有实现", game)
	}
	factoryRegistry[game] = factory
}

// GetFactory 获取指定游戏的工厂函数
func GetFactory(game model.Game) (Factory, bool) {
	factoryMu.RLock()
	defer factoryMu.RUnlock()
	factory, ok := factoryRegistry[game]
	return factory, ok
}

// GameRegistry 游戏→适配器实例
type GameRegistry struct {
	logger   *logrus.Logger
	adapters map[model.Game]interfaces.GameAdapter
}

// NewGameRegistry 按配置为每个游戏创建适配器实例
func NewGameRegistry(cfg *config.Config, logger *logrus.Logger) *GameRegistry {
	r := &GameRegistry{
		logger:   logger,
		adapters: make(map[model.Game]interfaces.GameAdapter),
	}

	for _, game := range model.Games {
		gameCfg, ok := cfg.Game(game)
		if !ok {
			logger.WithField("game", game).Warn("未找到该游戏的接口配置，跳过")
			continue
		}
		factory, ok := GetFactory(game)
		if !ok {
			logger.WithField("game", game).Error("未找到对应的工厂函数（init未注册？）")
			continue
		}
		if gameCfg.APIKey == "" {
			logger.WithField("game", game).Warn("未配置 api_key，请求将被接口拒绝")
		}

		adapterIns := factory(&gameCfg, logger)
		if adapterIns == nil {
			logger.WithField("game", game).Error("工厂函数返回nil适配器实例")
			continue
		}
		if adapterIns.GetGame() != game {
			logger.WithFields(logrus.Fields{
				"config_game":  game,
				"adapter_game": adapterIns.GetGame(),
			}).Error("适配器游戏类型与配置不匹配")
			continue
		}
		r.adapters[game] = adapterIns
	}

	logger.WithField("games", len(r.adapters)).Info("游戏适配器初始化完成")
	return r
}

// NewStaticRegistry 直接由适配器实例构建注册表（测试与自定义装配用）
func NewStaticRegistry(logger *logrus.Logger, adapters ...interfaces.GameAdapter) *GameRegistry {
	r := &GameRegistry{
		logger:   logger,
		adapters: make(map[model.Game]interfaces.GameAdapter, len(adapters)),
	}
	for _, a := range adapters {
		r.adapters[a.GetGame()] = a
	}
	return r
}

// GetAdapter 获取适配器实例
func (r *GameRegistry) GetAdapter(game model.Game) (interfaces.GameAdapter, error) {
	adapterIns, ok := r.adapters[game]
	if !ok {
		return nil, fmt.Errorf("游戏%s未初始化适配器实例", game)
	}
	return adapterIns, nil
}

// ListGames 已初始化的游戏，按 model.Games 顺序
func (r *GameRegistry) ListGames() []model.Game {
	var games []model.Game
	for _, g := range model.Games {
		if _, ok := r.adapters[g]; ok {
			games = append(games, g)
		}
	}
	return games
}
