package utils

import (
	"regexp"

	"github.com/shopspring/decimal"
)

var markupTag = regexp.MustCompile(`<[^>]+>`)

// Round2 округляет до 2 знаков, половина всегда вверх (от нуля)
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// RoundWhole округляет до целого, половина вверх
func RoundWhole(v float64) float64 {
	return decimal.NewFromFloat(v).Round(0).InexactFloat64()
}

// StripMarkup убирает HTML-подобные теги из текста инструкций
func StripMarkup(s string) string {
	return markupTag.ReplaceAllString(s, "")
}
