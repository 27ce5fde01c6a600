// Package units - форматирование метров и секунд в строки для пользователя
package units

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

const (
	FeetPerMeter  = 3.28084
	MetersPerMile = 1609.34

	// до 150 ft показываем футы, от 1 км мили
	FeetThresholdMeters  = 45.72
	MilesThresholdMeters = 1000.0
)

// FormatDistance возвращает "X ft", "X meters" или "X miles", округление half-up до 2 знаков
func FormatDistance(meters float64) string {
	switch {
	case meters < FeetThresholdMeters:
		return round2(meters*FeetPerMeter) + " ft"
	case meters >= MilesThresholdMeters:
		return round2(meters/MetersPerMile) + " miles"
	default:
		return round2(meters) + " meters"
	}
}

// FormatDuration возвращает "X mins Y secs", нулевая часть опускается.
// Нулевая длительность - "0 secs".
func FormatDuration(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}

	minutes := int64(math.Floor(seconds / 60))
	secs := decimal.NewFromFloat(math.Mod(seconds, 60)).Round(0).IntPart()
	if secs == 60 {
		minutes++
		secs = 0
	}

	switch {
	case minutes == 0:
		return fmt.Sprintf("%d secs", secs)
	case secs == 0:
		return fmt.Sprintf("%d mins", minutes)
	default:
		return fmt.Sprintf("%d mins %d secs", minutes, secs)
	}
}

func round2(v float64) string {
	return decimal.NewFromFloat(v).Round(2).String()
}
