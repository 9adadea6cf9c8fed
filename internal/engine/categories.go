package engine

// CategoryLabels maps canonical categories to display names.
var CategoryLabels = map[Category]string{
	CategoryGrocery:   "Groceries",
	CategoryDining:    "Dining",
	CategoryRent:      "Rent",
	CategoryGas:       "Gas",
	CategoryOnline:    "Online Shopping",
	CategoryTravel:    "Travel",
	CategoryStreaming: "Streaming",
	CategoryTransit:   "Transit",
}

// CategoryRewardKeys maps each spending category to the catalog reward
// keys that can satisfy it. A card earning under any of these keys counts
// toward the category.
var CategoryRewardKeys = map[Category][]string{
	CategoryGrocery:   {"groceries", "online_groceries", "whole_foods", "grocery", "supermarkets", "wholesale"},
	CategoryDining:    {"dining", "restaurants"},
	CategoryRent:      {"rent"},
	CategoryGas:       {"gas", "ev_charging", "gas_stations"},
	CategoryOnline:    {"online_shopping", "online_retail"},
	CategoryTravel:    {"travel", "flights", "hotels"},
	CategoryStreaming: {"streaming"},
	CategoryTransit:   {"transit"},
}

// RewardKeyLabels gives human-readable names for raw reward keys, used by
// the presentation layer and in generated reasons.
var RewardKeyLabels = map[string]string{
	"base":                     "Base",
	"groceries":                "Groceries",
	"online_groceries":         "Online Groceries",
	"whole_foods":              "Whole Foods",
	"grocery":                  "Groceries",
	"supermarkets":             "Supermarkets",
	"wholesale":                "Wholesale",
	"dining":                   "Dining",
	"restaurants":              "Restaurants",
	"rent":                     "Rent",
	"gas":                      "Gas",
	"ev_charging":              "EV Charging",
	"gas_stations":             "Gas Stations",
	"online_shopping":          "Online Shopping",
	"online_retail":            "Online Retail",
	"travel":                   "Travel",
	"flights":                  "Flights",
	"hotels":                   "Hotels",
	"streaming":                "Streaming",
	"transit":                  "Transit",
	"drugstores":               "Drugstores",
	"home_improvement":         "Home Improvement",
	"entertainment":            "Entertainment",
	"entertainment_capitalOne": "Entertainment",
	"gym":                      "Gym",
	"fitness":                  "Fitness",
	"apple_pay":                "Apple Pay",
	"amazon":                   "Amazon",
	"paypal":                   "PayPal",
	"paypal_purchases":         "PayPal",
	"travel_chase":             "Chase Travel",
	"chase_travel":             "Chase Travel",
	"travel_capitalOne":        "Capital One Travel",
	"flights_capitalOne":       "Capital One Flights",
	"hotel_capitalOne":         "Capital One Hotels",
	"rentalCar_capitalOne":     "Capital One Rental Cars",
	"vacationRental_capitalOne": "Capital One Vacation Rentals",
	"travel_USBank":            "U.S. Bank Travel",
	"travel_delta":             "Delta",
	"flight_amex":              "Amex Flights",
	"hotel_amex":               "Amex Hotels",
}

// Categories where a card's base rate does not apply. Rent requires
// explicit support (e.g. Bilt) — paying rent with a normal credit card
// incurs ~2.5-3% processing fees that negate any base rewards.
var baseRateExcluded = map[Category]bool{
	CategoryRent: true,
}

// Issuer travel-booking-portal reward keys, with the portal name they
// belong to. Portal rates only apply when booking through that portal, so
// they are not interchangeable with generic travel spend.
var portalTravelLabels = map[string]string{
	"travel_chase":              "Chase Travel portal",
	"chase_travel":              "Chase Travel portal",
	"travel_capitalOne":         "Capital One Travel portal",
	"flights_capitalOne":        "Capital One Travel portal",
	"hotel_capitalOne":          "Capital One Travel portal",
	"rentalCar_capitalOne":      "Capital One Travel portal",
	"vacationRental_capitalOne": "Capital One Travel portal",
	"travel_USBank":             "U.S. Bank Travel portal",
	"travel_delta":              "Delta",
	"flight_amex":               "Amex Travel",
	"hotel_amex":                "Amex Travel",
}

// portalTravelKeys is the iteration order for portal lookups.
var portalTravelKeys = []string{
	"travel_chase",
	"chase_travel",
	"travel_capitalOne",
	"flights_capitalOne",
	"hotel_capitalOne",
	"rentalCar_capitalOne",
	"vacationRental_capitalOne",
	"travel_USBank",
	"travel_delta",
	"flight_amex",
	"hotel_amex",
}
