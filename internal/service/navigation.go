package service

import (
	"fmt"

	"LottoBoard/internal/model"
)

// Screen 可切换的页面：两个游戏页 + 设置页
type Screen string

const ScreenSettings Screen = "settings"

// DefaultScreen 启动时打开的页面
const DefaultScreen = Screen(model.GamePowerBall)

// MenuEntry 菜单中的一项
type MenuEntry struct {
	Screen Screen `json:"screen"`
	Title  string `json:"title"`
}

// Menu 当前页面对应的导航信息
type Menu struct {
	Current      Screen      `json:"current"`
	SwitchLabel  string      `json:"switch_label"`
	SwitchTarget Screen      `json:"switch_target"`
	Entries      []MenuEntry `json:"entries"`
}

// ParseScreen 空串视为默认页面
func ParseScreen(s string) (Screen, error) {
	if s == "" {
		return DefaultScreen, nil
	}
	if Screen(s) == ScreenSettings {
		return ScreenSettings, nil
	}
	game, err := model.ParseGame(s)
	if err != nil {
		return "", fmt.Errorf("unknown screen: %w", err)
	}
	return Screen(game), nil
}

// BuildMenu 切换按钮：PowerBall <-> Mega Millions；从设置页返回总是回到 PowerBall
func BuildMenu(current Screen) Menu {
	menu := Menu{Current: current}
	switch current {
	case ScreenSettings:
		menu.SwitchLabel = "Close Settings"
		menu.SwitchTarget = Screen(model.GamePowerBall)
	case Screen(model.GameMegaMillions):
		menu.SwitchLabel = "Show PowerBall"
		menu.SwitchTarget = Screen(model.GamePowerBall)
	default:
		menu.SwitchLabel = "Show Mega Millions"
		menu.SwitchTarget = Screen(model.GameMegaMillions)
	}

	for _, g := range model.Games {
		menu.Entries = append(menu.Entries, MenuEntry{Screen: Screen(g), Title: g.DisplayName()})
	}
	menu.Entries = append(menu.Entries, MenuEntry{Screen: ScreenSettings, Title: "Settings"})
	return menu
}
