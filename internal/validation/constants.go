package validation

const (
	// Credit score bounds
	MinCreditScore = 300
	MaxCreditScore = 850

	// Password requirements
	MinPasswordLength = 8
	MaxPasswordLength = 72

	// String lengths
	MaxCardNameLength = 100
	MaxSourceLength   = 50
)
