package model

import "fmt"

// Game 支持的彩票游戏
type Game string

const (
	GamePowerBall    Game = "powerball"
	GameMegaMillions Game = "megamillions"
)

// Games 固定顺序，菜单与注册表遍历都按此顺序
var Games = []Game{GamePowerBall, GameMegaMillions}

// DisplayName 界面显示名
func (g Game) DisplayName() string {
	switch g {
	case GamePowerBall:
		return "PowerBall"
	case GameMegaMillions:
		return "Mega Millions"
	default:
		return string(g)
	}
}

// ParseGame accepts the lower-case game identifier used in URLs and config keys.
func ParseGame(s string) (Game, error) {
	switch Game(s) {
	case GamePowerBall, GameMegaMillions:
		return Game(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownGame, s)
}

// Field 单个游戏在 DrawState 中可订阅的字段
type Field string

const (
	FieldJackpot      Field = "jackpot"
	FieldDrawDate     Field = "draw_date"
	FieldMultiplier   Field = "multiplier"
	FieldNumbers      Field = "numbers"
	FieldBonusNumber  Field = "bonus_number" // MegaMillions only
	FieldNextDrawDate Field = "next_draw_date"
	FieldNextJackpot  Field = "next_jackpot"
)

// Fields returns the fields a game carries, in commit order.
func (g Game) Fields() []Field {
	fields := []Field{FieldJackpot, FieldDrawDate, FieldMultiplier, FieldNumbers}
	if g == GameMegaMillions {
		fields = append(fields, FieldBonusNumber)
	}
	return append(fields, FieldNextDrawDate, FieldNextJackpot)
}

// HasField reports whether f belongs to the game.
func (g Game) HasField(f Field) bool {
	for _, field := range g.Fields() {
		if field == f {
			return true
		}
	}
	return false
}

// MultiplierKey is the payload key of the game's add-on multiplier.
func (g Game) MultiplierKey() string {
	if g == GameMegaMillions {
		return "megaplier"
	}
	return "powerplay"
}
