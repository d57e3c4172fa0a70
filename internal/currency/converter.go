// Package currency 开奖金额的币种换算（固定汇率，纯函数）
package currency

import (
	"fmt"
	"strings"

	"LottoBoard/internal/model"

	"github.com/shopspring/decimal"
)

// Currency 显示币种
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	CAD Currency = "CAD"
)

// Default 应用启动时的默认币种
const Default = EUR

// LoadingText 数据尚未拉取时的显示文本
const LoadingText = "Loading..."

// NotLoaded 未加载哨兵值：DrawState 中尚未写入的字段为空串
const NotLoaded = ""

var (
	eurRate = decimal.RequireFromString("0.84")
	cadRate = decimal.RequireFromString("1.25")
)

// Supported 按设置页顺序列出支持的币种
func Supported() []Currency {
	return []Currency{USD, EUR, CAD}
}

// Parse 设置页写入币种前校验，大小写不敏感
func Parse(s string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	switch c {
	case USD, EUR, CAD:
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", model.ErrUnsupportedCurrency, s)
}

// Convert 把形如 "$20 Million" 的原始金额换算为所选币种的显示文本。
// 未知币种返回空串。
func Convert(raw string, c Currency) string {
	if raw == NotLoaded {
		return LoadingText
	}

	amount, ok := parseMillions(raw)
	if !ok {
		return raw
	}

	switch c {
	case USD:
		return fmt.Sprintf("$%s Million", amount.String())
	case EUR:
		return fmt.Sprintf("€%s Million", amount.Mul(eurRate).Truncate(0).String())
	case CAD:
		return fmt.Sprintf("$%s Million", amount.Mul(cadRate).Truncate(0).String())
	default:
		return ""
	}
}

// parseMillions 取符号之后、第一个空格之前的整数部分
func parseMillions(raw string) (decimal.Decimal, bool) {
	space := strings.IndexByte(raw, ' ')
	if space < 2 {
		return decimal.Zero, false
	}
	digits := raw[1:space]
	for _, r := range digits {
		if r < '0' || r > '9' {
			return decimal.Zero, false
		}
	}
	n, err := decimal.NewFromString(digits)
	if err != nil {
		return decimal.Zero, false
	}
	return n, true
}
