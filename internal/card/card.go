// Package card 提供德州扑克牌面代码（如 "As"、"Td"）的显示格式化。
package card

import "strings"

// Suit 定义花色字母
type Suit byte

const (
	Spade   Suit = 's' // 黑桃
	Heart   Suit = 'h' // 红心
	Diamond Suit = 'd' // 方块
	Club    Suit = 'c' // 梅花
)

// suitSymbols 花色符号映射表
var suitSymbols = map[Suit]string{
	Spade:   "♠",
	Heart:   "♥",
	Diamond: "♦",
	Club:    "♣",
}

func (s Suit) String() string {
	if symbol, ok := suitSymbols[s]; ok {
		return symbol
	}
	return string(s)
}

// Format 将两字符牌面代码（点数 + 花色字母）转换为显示字符串。
// 长度不为 2 或花色无法识别时原样返回。
func Format(code string) string {
	if len(code) != 2 {
		return code
	}
	symbol, ok := suitSymbols[Suit(code[1])]
	if !ok {
		return code
	}
	return code[:1] + symbol
}

// FormatAll 格式化一组牌并以单个空格连接
func FormatAll(codes []string) string {
	if len(codes) == 0 {
		return ""
	}
	formatted := make([]string, len(codes))
	for i, c := range codes {
		formatted[i] = Format(c)
	}
	return strings.Join(formatted, " ")
}
