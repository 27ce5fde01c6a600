package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultPlaceRadiusMeters - радиус, в котором два места считаются одним и тем же
const DefaultPlaceRadiusMeters = 5.0

type Country struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Name string    `json:"name" db:"name"`
	ISO2 *string   `json:"iso2,omitempty" db:"iso2"`
	ISO3 *string   `json:"iso3,omitempty" db:"iso3"`
}

type State struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	CountryCode *string   `json:"country_code,omitempty" db:"country_code"`
	StateCode   *string   `json:"state_code,omitempty" db:"state_code"`
}

type City struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	CountryCode *string   `json:"country_code,omitempty" db:"country_code"`
	StateCode   *string   `json:"state_code,omitempty" db:"state_code"`
}

// Place - каноническая точка интереса со структурированным адресом.
// CityName, StateCode и CountryISO3 заполняются join'ом при чтении.
type Place struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	Address   string     `json:"address" db:"address"`
	ZipCode   string     `json:"zip_code" db:"zip_code"`
	CountryID *uuid.UUID `json:"country_id,omitempty" db:"country_id"`
	StateID   *uuid.UUID `json:"state_id,omitempty" db:"state_id"`
	CityID    *uuid.UUID `json:"city_id,omitempty" db:"city_id"`
	Lat       float64    `json:"lat" db:"lat"`
	Lng       float64    `json:"lng" db:"lng"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`

	CityName    string `json:"city,omitempty" db:"city_name"`
	StateCode   string `json:"state_code,omitempty" db:"state_code"`
	CountryISO3 string `json:"country_iso3,omitempty" db:"country_iso3"`
}

// FormattedAddress - "{name}, {address}, {city}, {state_code} {zip}, {country_iso3}"
func (p *Place) FormattedAddress() string {
	return fmt.Sprintf("%s, %s, %s, %s %s, %s",
		p.Name, p.Address, p.CityName, p.StateCode, p.ZipCode, p.CountryISO3)
}

// PlaceMatch - компоненты адреса, которые должны совпасть при поиске существующего места
type PlaceMatch struct {
	CountryID *uuid.UUID
	StateID   *uuid.UUID
	CityID    *uuid.UUID
	ZipCode   string
}

// GeocodedAddress - результат обратного геокодирования
type GeocodedAddress struct {
	Name             string `json:"name"`
	Address          string `json:"address"`
	FormattedAddress string `json:"formatted_address"`
	City             string `json:"city"`
	State            string `json:"state"`
	Country          string `json:"country"`
	ZipCode          string `json:"zip"`
	Location         *Point `json:"location,omitempty"`
}
