package engine

// Shared test fixtures.

func makeCard(id string, mutate func(*CardRecord)) CardRecord {
	card := CardRecord{
		ID:       id,
		Name:     "Test Card " + id,
		Brand:    "Test",
		MinScore: 670,
		Rewards:  RewardMap{"base": 0.01},
	}
	if mutate != nil {
		mutate(&card)
	}
	return card
}

func makeProfile(mutate func(*CreditProfile)) CreditProfile {
	profile := CreditProfile{
		Score:           750,
		CreditAgeYears:  5,
		CardsOpened24mo: 2,
		AcceptsFees:     true,
	}
	if mutate != nil {
		mutate(&profile)
	}
	return profile
}

func makeOwned(id string, mutate func(*OwnedCard)) OwnedCard {
	owned := OwnedCard{
		CardID:          id,
		Name:            "Test Card " + id,
		ResolvedRewards: RewardMap{"base": 0.01},
	}
	if mutate != nil {
		mutate(&owned)
	}
	return owned
}

func typicalSpending() Spending {
	return Spending{
		CategoryGrocery:   500,
		CategoryDining:    200,
		CategoryGas:       100,
		CategoryOnline:    150,
		CategoryTravel:    50,
		CategoryStreaming: 30,
	}
}
