package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/navigation-microservice/internal/pkg/errors"
)

// Coordinate - широта или долгота маркера. Принимает JSON число или строку с числом ("40.1").
// Любое другое значение дает ErrInvalidCoordinates; проверка диапазона делается в use case.
type Coordinate float64

func (c *Coordinate) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return errors.ErrInvalidCoordinates
		}
		raw = []byte(strings.TrimSpace(s))
	}

	v, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return errors.ErrInvalidCoordinates.WithMessage("Coordinates must be numeric")
	}
	*c = Coordinate(v)
	return nil
}

// Float64 возвращает nil для отсутствующей координаты
func (c *Coordinate) Float64() *float64 {
	if c == nil {
		return nil
	}
	v := float64(*c)
	return &v
}
