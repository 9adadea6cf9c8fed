package models

import (
	"wallzy/internal/engine"

	"gorm.io/gorm"
)

// Catalog sets
const (
	CatalogSetCommon  = "common"
	CatalogSetStudent = "student"
)

// CatalogCard is a credit card product in the recommendation catalog.
type CatalogCard struct {
	gorm.Model
	CardID             string     `gorm:"uniqueIndex;not null" json:"card_id"`
	Name               string     `gorm:"not null" json:"name"`
	Brand              string     `json:"brand"`
	Set                string     `gorm:"index;default:'common'" json:"set"`
	FamilyID           string     `gorm:"index" json:"family_id"`
	MinScore           int        `json:"min_score"`
	AnnualFee          int        `json:"annual_fee"`
	VelocityRestricted bool       `json:"velocity_restricted"`
	Rewards            RateMap    `gorm:"type:jsonb" json:"rewards"`
	DowngradeTo        string     `json:"downgrade_to,omitempty"`
	Choices            ChoiceSets `gorm:"type:jsonb" json:"choices,omitempty"`
}

// Record converts the stored card into the engine's catalog shape.
func (c *CatalogCard) Record() engine.CardRecord {
	record := engine.CardRecord{
		ID:                 c.CardID,
		Name:               c.Name,
		Brand:              c.Brand,
		FamilyID:           c.FamilyID,
		MinScore:           c.MinScore,
		AnnualFee:          c.AnnualFee,
		VelocityRestricted: c.VelocityRestricted,
		Rewards:            engine.RewardMap(c.Rewards),
		DowngradeTo:        c.DowngradeTo,
	}
	if len(c.Choices) > 0 {
		record.Choices = make(map[engine.Placeholder]engine.ChoiceMap, len(c.Choices))
		for key, options := range c.Choices {
			record.Choices[engine.Placeholder(key)] = engine.ChoiceMap(options)
		}
	}
	return record
}

// CatalogRecords converts a catalog slice into engine records, preserving
// order.
func CatalogRecords(cards []CatalogCard) []engine.CardRecord {
	records := make([]engine.CardRecord, 0, len(cards))
	for i := range cards {
		records = append(records, cards[i].Record())
	}
	return records
}
