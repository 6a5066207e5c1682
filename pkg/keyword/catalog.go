// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package keyword

import "github.com/shopspring/decimal"

// Catalog is the fixed keyword set of the air-purifier market scenario.
var Catalog = []Keyword{
	{
		ID:              "purificateur-air",
		Name:            "purificateur air",
		Volume:          12000,
		Competitiveness: CompetitivenessHigh,
		BaselineCPC:     decimal.NewFromFloat(2.5),
		Category:        "générique",
		Description:     "Mot-clé principal très compétitif",
	},
	{
		ID:              "purificateur-air-maison",
		Name:            "purificateur air maison",
		Volume:          5400,
		Competitiveness: CompetitivenessMedium,
		BaselineCPC:     decimal.NewFromFloat(1.8),
		Category:        "spécifique",
		Description:     "Mot-clé avec intention d'achat claire",
	},
	{
		ID:              "purificateur-japonais",
		Name:            "purificateur air japonais",
		Volume:          800,
		Competitiveness: CompetitivenessLow,
		BaselineCPC:     decimal.NewFromFloat(0.8),
		Category:        "longue traîne",
		Description:     "Niche avec faible concurrence",
	},
	{
		ID:              "acheter-purificateur-air",
		Name:            "acheter purificateur air",
		Volume:          3200,
		Competitiveness: CompetitivenessHigh,
		BaselineCPC:     decimal.NewFromFloat(3.2),
		Category:        "transactionnel",
		Description:     "Forte intention d'achat immédiate",
	},
	{
		ID:              "meilleur-purificateur-air-2024",
		Name:            "meilleur purificateur air 2024",
		Volume:          2100,
		Competitiveness: CompetitivenessMedium,
		BaselineCPC:     decimal.NewFromFloat(1.5),
		Category:        "informationnel",
		Description:     "Recherche comparative",
	},
}

// Strategy is a pre-configured keyword selection with an indicative budget.
type Strategy struct {
	Name        string
	Description string
	Keywords    []string
	Budget      decimal.Decimal
	Risk        string
}

// Strategies are the suggested campaign presets.
var Strategies = map[string]Strategy{
	"aggressive": {
		Name:        "Stratégie Agressive",
		Description: "Cibler les mots-clés à fort volume",
		Keywords:    []string{"purificateur-air", "acheter-purificateur-air", "purificateur-air-maison"},
		Budget:      decimal.NewFromInt(4000),
		Risk:        "Élevé",
	},
	"balanced": {
		Name:        "Stratégie Équilibrée",
		Description: "Mix volume et rentabilité",
		Keywords:    []string{"purificateur-air-maison", "acheter-purificateur-air", "meilleur-purificateur-air-2024"},
		Budget:      decimal.NewFromInt(3000),
		Risk:        "Moyen",
	},
	"niche": {
		Name:        "Stratégie Niche",
		Description: "Cibler la longue traîne",
		Keywords:    []string{"purificateur-japonais", "meilleur-purificateur-air-2024"},
		Budget:      decimal.NewFromInt(1500),
		Risk:        "Faible",
	},
}

// MarketData carries the market-wide constants of the scenario.
var MarketData = struct {
	AverageCPC            decimal.Decimal
	AverageConversionRate float64
	AverageOrderValue     decimal.Decimal
}{
	AverageCPC:            decimal.NewFromFloat(2.1),
	AverageConversionRate: 0.025,
	AverageOrderValue:     decimal.NewFromInt(50),
}
