package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// RateMap stores a card's reward rates keyed by reward key, persisted as
// a JSONB column.
type RateMap map[string]float64

// Value implements the driver.Valuer interface
func (m RateMap) Value() (driver.Value, error) {
	return json.Marshal(m)
}

// Scan implements the sql.Scanner interface
func (m *RateMap) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, &m)
}

// MarshalJSON returns the JSON encoding
func (m RateMap) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	return json.Marshal(map[string]float64(m))
}

// UnmarshalJSON sets the JSON encoding
func (m *RateMap) UnmarshalJSON(data []byte) error {
	if m == nil {
		return errors.New("nil pointer")
	}
	return json.Unmarshal(data, (*map[string]float64)(m))
}

// ChoiceSets maps a placeholder reward key to the category options a
// cardholder can pick for it, persisted as a JSONB column.
type ChoiceSets map[string]map[string]string

// Value implements the driver.Valuer interface
func (c ChoiceSets) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan implements the sql.Scanner interface
func (c *ChoiceSets) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, &c)
}
