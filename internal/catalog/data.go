// Package catalog holds the built-in credit card database and the seed
// helper that loads it into PostgreSQL. Rates reflect publicly advertised
// 2026 reward schedules; rotating-category cards carry the placeholder
// key instead of a hardcoded quarterly rate.
package catalog

import "wallzy/internal/models"

// commonCards is the general-population catalog set.
var commonCards = []models.CatalogCard{
	{
		CardID:    "bilt_mastercard",
		Name:      "Bilt Mastercard",
		Brand:     "Bilt",
		MinScore:  670,
		AnnualFee: 0,
		Rewards:   models.RateMap{"rent": 0.01, "dining": 0.03, "travel": 0.02, "base": 0.01},
	},
	{
		CardID:    "amex_blue_cash_everyday",
		Name:      "Amex Blue Cash Everyday",
		Brand:     "American Express",
		FamilyID:  "amex_blue_cash",
		MinScore:  670,
		AnnualFee: 0,
		Rewards:   models.RateMap{"groceries": 0.03, "online_retail": 0.03, "gas": 0.03, "base": 0.01},
	},
	{
		CardID:      "amex_blue_cash_preferred",
		Name:        "Amex Blue Cash Preferred",
		Brand:       "American Express",
		FamilyID:    "amex_blue_cash",
		MinScore:    700,
		AnnualFee:   95,
		Rewards:     models.RateMap{"groceries": 0.06, "streaming": 0.06, "gas": 0.03, "transit": 0.03, "base": 0.01},
		DowngradeTo: "amex_blue_cash_everyday",
	},
	{
		CardID:    "amex_gold",
		Name:      "American Express Gold Card",
		Brand:     "American Express",
		FamilyID:  "amex_membership",
		MinScore:  700,
		AnnualFee: 325,
		Rewards:   models.RateMap{"dining": 0.04, "groceries": 0.04, "travel": 0.03, "base": 0.01},
	},
	{
		CardID:    "amex_platinum",
		Name:      "The Platinum Card from American Express",
		Brand:     "American Express",
		FamilyID:  "amex_membership",
		MinScore:  720,
		AnnualFee: 695,
		Rewards:   models.RateMap{"flights": 0.05, "flight_amex": 0.05, "hotel_amex": 0.05, "base": 0.01},
	},
	{
		CardID:    "bofa_customized_cash",
		Name:      "BofA Customized Cash Rewards",
		Brand:     "Bank of America",
		MinScore:  670,
		AnnualFee: 0,
		Rewards:   models.RateMap{"custom": 0.03, "groceries": 0.02, "wholesale": 0.02, "base": 0.01},
		Choices: models.ChoiceSets{
			"custom": {
				"gas":              "Gas & EV Charging",
				"online_shopping":  "Online Shopping",
				"dining":           "Dining",
				"travel":           "Travel",
				"drugstores":       "Drug Stores",
				"home_improvement": "Home Improvement",
			},
		},
	},
	{
		CardID:    "bofa_unlimited_cash",
		Name:      "BofA Unlimited Cash Rewards",
		Brand:     "Bank of America",
		MinScore:  670,
		AnnualFee: 0,
		Rewards:   models.RateMap{"base": 0.015},
	},
	{
		CardID:    "capital_one_savorone",
		Name:      "Capital One SavorOne",
		Brand:     "Capital One",
		FamilyID:  "capital_one_savor",
		MinScore:  670,
		AnnualFee: 0,
		Rewards:   models.RateMap{"dining": 0.03, "groceries": 0.03, "entertainment": 0.03, "base": 0.01},
	},
	{
		CardID:    "capital_one_venture_x",
		Name:      "Capital One Venture X Rewards",
		Brand:     "Capital One",
		FamilyID:  "capital_one_venture",
		MinScore:  740,
		AnnualFee: 395,
		Rewards:   models.RateMap{"travel_capitalOne": 0.10, "hotel_capitalOne": 0.10, "travel": 0.02, "base": 0.02},
	},
	{
		CardID:             "chase_freedom_flex",
		Name:               "Chase Freedom Flex",
		Brand:              "Chase",
		FamilyID:           "chase_freedom",
		MinScore:           670,
		AnnualFee:          0,
		VelocityRestricted: true,
		Rewards:            models.RateMap{"rotating_categories": 0.05, "dining": 0.03, "drugstores": 0.03, "travel_chase": 0.05, "base": 0.01},
	},
	{
		CardID:             "chase_freedom_unlimited",
		Name:               "Chase Freedom Unlimited",
		Brand:              "Chase",
		FamilyID:           "chase_freedom",
		MinScore:           670,
		AnnualFee:          0,
		VelocityRestricted: true,
		Rewards:            models.RateMap{"dining": 0.03, "drugstores": 0.03, "travel_chase": 0.05, "base": 0.015},
	},
	{
		CardID:             "chase_sapphire_preferred",
		Name:               "Chase Sapphire Preferred",
		Brand:              "Chase",
		FamilyID:           "chase_sapphire",
		MinScore:           700,
		AnnualFee:          95,
		VelocityRestricted: true,
		Rewards:            models.RateMap{"travel": 0.02, "travel_chase": 0.05, "dining": 0.03, "streaming": 0.03, "base": 0.01},
		DowngradeTo:        "chase_freedom_unlimited",
	},
	{
		CardID:             "prime_visa",
		Name:               "Prime Visa",
		Brand:              "Chase",
		MinScore:           670,
		AnnualFee:          0,
		VelocityRestricted: true,
		Rewards:            models.RateMap{"amazon": 0.05, "whole_foods": 0.05, "dining": 0.02, "gas": 0.02, "base": 0.01},
	},
	{
		CardID:    "citi_double_cash",
		Name:      "Citi Double Cash",
		Brand:     "Citi",
		MinScore:  670,
		AnnualFee: 0,
		Rewards:   models.RateMap{"base": 0.02},
	},
	{
		CardID:    "citi_custom_cash",
		Name:      "Citi Custom Cash",
		Brand:     "Citi",
		MinScore:  670,
		AnnualFee: 0,
		Rewards:   models.RateMap{"top_category": 0.05, "base": 0.01},
		Choices: models.ChoiceSets{
			"top_category": {
				"dining":     "Restaurants",
				"groceries":  "Grocery Stores",
				"gas":        "Gas Stations",
				"travel":     "Select Travel",
				"transit":    "Select Transit",
				"streaming":  "Select Streaming",
				"drugstores": "Drugstores",
			},
		},
	},
	{
		CardID:    "wells_fargo_active_cash",
		Name:      "Wells Fargo Active Cash",
		Brand:     "Wells Fargo",
		MinScore:  670,
		AnnualFee: 0,
		Rewards:   models.RateMap{"base": 0.02},
	},
	{
		CardID:    "wells_fargo_autograph",
		Name:      "Wells Fargo Autograph",
		Brand:     "Wells Fargo",
		MinScore:  670,
		AnnualFee: 0,
		Rewards:   models.RateMap{"transit": 0.03, "travel": 0.03, "dining": 0.03, "gas": 0.03, "ev_charging": 0.03, "base": 0.01},
	},
	{
		CardID:    "apple_card",
		Name:      "Apple Card",
		Brand:     "Goldman Sachs",
		MinScore:  640,
		AnnualFee: 0,
		Rewards:   models.RateMap{"apple_pay": 0.02, "select_merchants": 0.03, "base": 0.01},
	},
	{
		CardID:    "paypal_cashback",
		Name:      "PayPal Cashback Mastercard",
		Brand:     "Synchrony",
		MinScore:  640,
		AnnualFee: 0,
		Rewards:   models.RateMap{"paypal": 0.03, "base": 0.015},
	},
	{
		CardID:    "robinhood_gold",
		Name:      "Robinhood Gold Card",
		Brand:     "Robinhood",
		MinScore:  700,
		AnnualFee: 0,
		Rewards:   models.RateMap{"base": 0.03},
	},
	{
		CardID:    "us_bank_cash_plus",
		Name:      "U.S. Bank Cash+",
		Brand:     "U.S. Bank",
		MinScore:  670,
		AnnualFee: 0,
		Rewards:   models.RateMap{"chosen_category": 0.05, "groceries": 0.02, "base": 0.01},
	},
	{
		CardID:    "us_bank_altitude_go",
		Name:      "U.S. Bank Altitude Go",
		Brand:     "U.S. Bank",
		MinScore:  670,
		AnnualFee: 0,
		Rewards:   models.RateMap{"dining": 0.04, "groceries": 0.02, "gas": 0.02, "streaming": 0.02, "base": 0.01},
	},
	{
		CardID:    "discover_it_miles",
		Name:      "Discover it Miles",
		Brand:     "Discover",
		MinScore:  640,
		AnnualFee: 0,
		Rewards:   models.RateMap{"base": 0.015},
	},
	{
		CardID:    "discover_it_secured",
		Name:      "Discover it Secured",
		Brand:     "Discover",
		MinScore:  300,
		AnnualFee: 0,
		Rewards:   models.RateMap{"gas": 0.02, "dining": 0.02, "base": 0.01},
	},
}

// studentCards targets thin-file users. Everything here is fee-free and
// approvable with little or no history.
var studentCards = []models.CatalogCard{
	{
		CardID:    "bilt_mastercard_student",
		Name:      "Bilt Mastercard",
		Brand:     "Bilt",
		MinScore:  630,
		AnnualFee: 0,
		Rewards:   models.RateMap{"rent": 0.01, "dining": 0.03, "travel": 0.02, "base": 0.01},
	},
	{
		CardID:    "discover_it_student_cash_back",
		Name:      "Discover it Student Cash Back",
		Brand:     "Discover",
		FamilyID:  "discover_it_student",
		MinScore:  580,
		AnnualFee: 0,
		Rewards:   models.RateMap{"rotating_categories": 0.05, "base": 0.01},
	},
	{
		CardID:    "discover_it_student_chrome",
		Name:      "Discover it Student Chrome",
		Brand:     "Discover",
		FamilyID:  "discover_it_student",
		MinScore:  580,
		AnnualFee: 0,
		Rewards:   models.RateMap{"gas": 0.02, "dining": 0.02, "base": 0.01},
	},
	{
		CardID:    "bofa_customized_cash_student",
		Name:      "BofA Customized Cash Rewards for Students",
		Brand:     "Bank of America",
		MinScore:  630,
		AnnualFee: 0,
		Rewards:   models.RateMap{"custom": 0.03, "groceries": 0.02, "wholesale": 0.02, "base": 0.01},
		Choices: models.ChoiceSets{
			"custom": {
				"gas":              "Gas & EV Charging",
				"online_shopping":  "Online Shopping",
				"dining":           "Dining",
				"travel":           "Travel",
				"drugstores":       "Drug Stores",
				"home_improvement": "Home Improvement",
			},
		},
	},
	{
		CardID:    "amex_blue_cash_everyday_student",
		Name:      "Amex Blue Cash Everyday",
		Brand:     "American Express",
		MinScore:  650,
		AnnualFee: 0,
		Rewards:   models.RateMap{"online_retail": 0.03, "groceries": 0.03, "gas": 0.03, "base": 0.01},
	},
	{
		CardID:    "capital_one_savor_student",
		Name:      "Capital One Savor Student",
		Brand:     "Capital One",
		FamilyID:  "capital_one_savor",
		MinScore:  580,
		AnnualFee: 0,
		Rewards:   models.RateMap{"dining": 0.03, "groceries": 0.03, "streaming": 0.03, "entertainment_capitalOne": 0.08, "base": 0.01},
	},
	{
		CardID:    "capital_one_quicksilver_student",
		Name:      "Capital One Quicksilver Student",
		Brand:     "Capital One",
		MinScore:  580,
		AnnualFee: 0,
		Rewards:   models.RateMap{"travel_capitalOne": 0.05, "base": 0.015},
	},
	{
		CardID:    "wells_fargo_autograph_student",
		Name:      "Wells Fargo Autograph",
		Brand:     "Wells Fargo",
		MinScore:  650,
		AnnualFee: 0,
		Rewards:   models.RateMap{"transit": 0.03, "travel": 0.03, "dining": 0.03, "gas": 0.03, "ev_charging": 0.03, "base": 0.01},
	},
	{
		CardID:             "prime_visa_student",
		Name:               "Prime Visa",
		Brand:              "Chase",
		MinScore:           630,
		AnnualFee:          0,
		VelocityRestricted: true,
		Rewards:            models.RateMap{"amazon": 0.05, "whole_foods": 0.05, "dining": 0.02, "gas": 0.02, "transit": 0.02, "base": 0.01},
	},
	{
		CardID:    "wells_fargo_active_cash_student",
		Name:      "Wells Fargo Active Cash",
		Brand:     "Wells Fargo",
		MinScore:  650,
		AnnualFee: 0,
		Rewards:   models.RateMap{"base": 0.02},
	},
	{
		CardID:    "citi_double_cash_student",
		Name:      "Citi Double Cash",
		Brand:     "Citi",
		MinScore:  650,
		AnnualFee: 0,
		Rewards:   models.RateMap{"base": 0.02},
	},
	{
		CardID:    "sofi_credit_card",
		Name:      "SoFi Credit Card",
		Brand:     "SoFi",
		MinScore:  630,
		AnnualFee: 0,
		Rewards:   models.RateMap{"base": 0.02},
	},
	{
		CardID:    "apple_card_student",
		Name:      "Apple Card",
		Brand:     "Goldman Sachs",
		MinScore:  600,
		AnnualFee: 0,
		Rewards:   models.RateMap{"apple_pay": 0.02, "select_merchants": 0.03, "base": 0.01},
	},
	{
		CardID:             "chase_freedom_unlimited_student",
		Name:               "Chase Freedom Unlimited",
		Brand:              "Chase",
		FamilyID:           "chase_freedom",
		MinScore:           650,
		AnnualFee:          0,
		VelocityRestricted: true,
		Rewards:            models.RateMap{"dining": 0.03, "drugstores": 0.03, "travel_chase": 0.05, "base": 0.015},
	},
	{
		CardID:             "chase_freedom_rise",
		Name:               "Chase Freedom Rise",
		Brand:              "Chase",
		FamilyID:           "chase_freedom",
		MinScore:           300,
		AnnualFee:          0,
		VelocityRestricted: true,
		Rewards:            models.RateMap{"base": 0.015},
	},
	{
		CardID:    "bofa_travel_rewards_student",
		Name:      "BofA Travel Rewards for Students",
		Brand:     "Bank of America",
		MinScore:  630,
		AnnualFee: 0,
		Rewards:   models.RateMap{"travel": 0.015, "base": 0.015},
	},
	{
		CardID:    "gemini_credit_card",
		Name:      "Gemini Credit Card",
		Brand:     "Gemini",
		MinScore:  640,
		AnnualFee: 0,
		Rewards:   models.RateMap{"gas": 0.04, "transit": 0.04, "dining": 0.03, "groceries": 0.02, "base": 0.01},
	},
	{
		CardID:    "capital_one_quicksilver_secured",
		Name:      "Capital One Quicksilver Secured",
		Brand:     "Capital One",
		MinScore:  300,
		AnnualFee: 0,
		Rewards:   models.RateMap{"base": 0.015},
	},
}

// Cards returns every built-in card with its set column populated. The
// slice is rebuilt on each call so callers can hand rows to GORM without
// sharing state.
func Cards() []models.CatalogCard {
	out := make([]models.CatalogCard, 0, len(commonCards)+len(studentCards))
	for _, card := range commonCards {
		card.Set = models.CatalogSetCommon
		out = append(out, card)
	}
	for _, card := range studentCards {
		card.Set = models.CatalogSetStudent
		out = append(out, card)
	}
	return out
}
