package catalog

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seed upserts the built-in catalog into the database, keyed by card_id.
// Existing rows are refreshed in place so re-running the seeder after a
// rate change is safe.
func Seed(db *gorm.DB) error {
	cards := Cards()
	for i := range cards {
		card := cards[i]
		err := db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "card_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "brand", "set", "family_id", "min_score", "annual_fee",
				"velocity_restricted", "rewards", "downgrade_to", "choices", "updated_at",
			}),
		}).Create(&card).Error
		if err != nil {
			return fmt.Errorf("seed card %s: %w", card.CardID, err)
		}
	}
	return nil
}
