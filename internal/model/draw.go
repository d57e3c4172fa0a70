package model

import "strings"

// WinningNumberCount 主号码个数（两种游戏相同）
const WinningNumberCount = 5

// GameFields 一次成功归一化后的扁平字段集合
type GameFields struct {
	Game         Game     `json:"game"`
	Jackpot      string   `json:"jackpot"`
	DrawDate     string   `json:"draw_date"`
	Multiplier   string   `json:"multiplier"`
	Numbers      []string `json:"numbers"`
	BonusNumber  string   `json:"bonus_number,omitempty"`
	NextDrawDate string   `json:"next_draw_date"`
	NextJackpot  string   `json:"next_jackpot"`
}

// Value returns the raw string form of a single field. Numbers are joined
// with ", " the way the screens print them.
func (f *GameFields) Value(field Field) string {
	switch field {
	case FieldJackpot:
		return f.Jackpot
	case FieldDrawDate:
		return f.DrawDate
	case FieldMultiplier:
		return f.Multiplier
	case FieldNumbers:
		return strings.Join(f.Numbers, ", ")
	case FieldBonusNumber:
		return f.BonusNumber
	case FieldNextDrawDate:
		return f.NextDrawDate
	case FieldNextJackpot:
		return f.NextJackpot
	default:
		return ""
	}
}

// Clone 深拷贝，避免调用方修改 Numbers 影响共享状态
func (f *GameFields) Clone() GameFields {
	c := *f
	if f.Numbers != nil {
		c.Numbers = append([]string(nil), f.Numbers...)
	}
	return c
}
