// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package event

import "github.com/shopspring/decimal"

// Tables holds the per-module event sets. Ranking impacts are SERP deltas,
// so a negative value is an improvement (closer to position 1).
var Tables = map[Module][]Event{
	ModuleSEO: {
		{
			ID:          "google-core-update",
			Name:        "Google Core Update",
			Module:      ModuleSEO,
			Type:        TypeNegative,
			Probability: 0.3,
			Duration:    2,
			Impact:      Impact{Ranking: -5},
			Description: "Google déploie une mise à jour majeure de son algorithme. Tous les sites sont impactés.",
			Icon:        "🔄",
			NeutralizedBy: []string{
				"Consultant SEO Expert",
			},
			PlayerMessage: "Vos positions chutent temporairement. Analysez les nouvelles guidelines Google.",
			Tips:          "Les Core Updates privilégient le contenu de qualité et l'expertise E-E-A-T.",
		},
		{
			ID:            "viral-backlink",
			Name:          "Article Viral",
			Module:        ModuleSEO,
			Type:          TypePositive,
			Probability:   0.1,
			Duration:      1,
			Impact:        Impact{Backlinks: 50, Authority: 10, Ranking: -3},
			Description:   "Votre site est mentionné dans un article viral sur un média majeur !",
			Icon:          "🚀",
			PlayerMessage: "TechCrunch parle de vous ! Vous gagnez 50 backlinks de qualité.",
			Tips:          "Les backlinks de sites autoritaires ont un impact immédiat sur votre ranking.",
		},
		{
			ID:          "negative-seo",
			Name:        "Attaque Negative SEO",
			Module:      ModuleSEO,
			Type:        TypeNegative,
			Probability: 0.15,
			Duration:    3,
			Impact:      Impact{Ranking: -10, Authority: -5},
			Description: "Un concurrent a créé des centaines de backlinks toxiques vers votre site.",
			Icon:        "☠️",
			NeutralizedBy: []string{
				"Audit Backlinks Premium",
			},
			PlayerMessage: "Google détecte des backlinks suspects. Votre autorité baisse.",
			Tips:          "Utilisez le Disavow Tool de Google Search Console pour rejeter les liens toxiques.",
		},
		{
			ID:            "content-theft",
			Name:          "Duplicate Content",
			Module:        ModuleSEO,
			Type:          TypeNegative,
			Probability:   0.2,
			Duration:      2,
			Impact:        Impact{Ranking: -3},
			Description:   "Votre contenu a été copié et republié sur d'autres sites.",
			Icon:          "📋",
			PlayerMessage: "Google détecte du contenu dupliqué. Vos pages perdent en visibilité.",
			Tips:          "Utilisez DMCA takedown ou créez du contenu encore plus unique.",
		},
		{
			ID:            "featured-snippet",
			Name:          "Featured Snippet",
			Module:        ModuleSEO,
			Type:          TypePositive,
			Probability:   0.08,
			Duration:      3,
			Impact:        Impact{Ranking: -5, CTRMultiplier: 2},
			Description:   "Une de vos pages obtient un Featured Snippet (position 0) !",
			Icon:          "⭐",
			PlayerMessage: "Position 0 obtenue ! Votre CTR explose.",
			Tips:          "Les Featured Snippets captent 35% des clics sur mobile.",
		},
		{
			ID:          "technical-issue",
			Name:        "Problème Technique",
			Module:      ModuleSEO,
			Type:        TypeNegative,
			Probability: 0.12,
			Duration:    1,
			Impact:      Impact{Ranking: -8},
			Description: "Votre site a subi une panne. Google a crawlé pendant le downtime.",
			Icon:        "🔧",
			NeutralizedBy: []string{
				"Monitoring Premium",
			},
			PlayerMessage: "Erreur 503 détectée. Google a rencontré des pages inaccessibles.",
			Tips:          "Un uptime de 99.9% minimum est recommandé pour le SEO.",
		},
		{
			ID:            "mobile-first-boost",
			Name:          "Mobile-First Excellence",
			Module:        ModuleSEO,
			Type:          TypePositive,
			Probability:   0.15,
			Duration:      2,
			Impact:        Impact{Ranking: -4},
			Description:   "Votre site mobile est exemplaire. Google vous récompense.",
			Icon:          "📱",
			PlayerMessage: "Core Web Vitals parfaits ! Boost mobile-first indexing.",
			Tips:          "60% des recherches se font sur mobile. L'optimisation mobile est cruciale.",
		},
	},

	ModuleSEA: {
		{
			ID:          "black-friday",
			Name:        "Black Friday",
			Module:      ModuleSEA,
			Type:        TypeMixed,
			Probability: 0.25,
			Duration:    1,
			Impact: Impact{
				CPCMultiplier:         2,
				ConversionMultiplier:  3,
				CompetitionMultiplier: 1.5,
			},
			Description:   "C'est le Black Friday ! Les CPC explosent mais les conversions aussi.",
			Icon:          "🛍️",
			PlayerMessage: "Les enchères doublent mais vos ventes triplent !",
			Tips:          "Augmentez votre budget pendant les pics saisonniers pour maximiser le ROI.",
		},
		{
			ID:          "amazon-war",
			Name:        "Guerre des Prix Amazon",
			Module:      ModuleSEA,
			Type:        TypeNegative,
			Probability: 0.2,
			Duration:    3,
			Impact: Impact{
				CPCMultiplier:         1.5,
				CompetitionMultiplier: 2,
			},
			Description: "Amazon entre massivement sur vos mots-clés avec un budget illimité.",
			Icon:        "⚔️",
			NeutralizedBy: []string{
				"Bid Manager Automatique",
			},
			PlayerMessage: "Amazon enchérit agressivement. Vos CPC augmentent de 50%.",
			Tips:          "Ciblez des mots-clés de longue traîne pour éviter la concurrence directe.",
		},
		{
			ID:          "quality-score-boost",
			Name:        "Quality Score Boost",
			Module:      ModuleSEA,
			Type:        TypePositive,
			Probability: 0.15,
			Duration:    2,
			Impact: Impact{
				QualityScoreBonus: 2,
				CPCMultiplier:     0.7,
			},
			Description:   "Vos annonces obtiennent un excellent Quality Score !",
			Icon:          "⭐",
			PlayerMessage: "QS 9/10 atteint ! Vos CPC baissent de 30%.",
			Tips:          "Un bon Quality Score réduit vos coûts et améliore vos positions.",
		},
		{
			ID:          "competitor-pause",
			Name:        "Concurrent en Pause",
			Module:      ModuleSEA,
			Type:        TypePositive,
			Probability: 0.1,
			Duration:    1,
			Impact: Impact{
				CPCMultiplier:         0.7,
				CompetitionMultiplier: 0.5,
			},
			Description:   "Un concurrent majeur met sa campagne en pause.",
			Icon:          "😴",
			PlayerMessage: "BigTech Co a suspendu ses annonces. C'est le moment d'en profiter !",
			Tips:          "Surveillez toujours vos concurrents avec l'Auction Insights.",
		},
		{
			ID:            "policy-violation",
			Name:          "Alerte Politique Google",
			Module:        ModuleSEA,
			Type:          TypeNegative,
			Probability:   0.08,
			Duration:      1,
			Impact:        Impact{PausedCampaigns: 1},
			Description:   "Une de vos annonces viole les politiques Google Ads.",
			Icon:          "⚠️",
			PlayerMessage: "Annonce suspendue pour violation. Corrigez-la rapidement.",
			Tips:          "Relisez les Google Ads policies. Les violations répétées peuvent bannir votre compte.",
		},
		{
			ID:          "remarketing-success",
			Name:        "Remarketing Viral",
			Module:      ModuleSEA,
			Type:        TypePositive,
			Probability: 0.12,
			Duration:    2,
			Impact: Impact{
				ConversionMultiplier: 1.5,
				CTRMultiplier:        1.3,
			},
			Description:   "Votre campagne de remarketing performe exceptionnellement bien.",
			Icon:          "🎯",
			PlayerMessage: "Le remarketing convertit 3x mieux ! Vos anciens visiteurs reviennent.",
			Tips:          "Le remarketing a un ROI moyen 2-3x supérieur aux campagnes classiques.",
		},
		{
			ID:          "ad-fatigue",
			Name:        "Fatigue Publicitaire",
			Module:      ModuleSEA,
			Type:        TypeNegative,
			Probability: 0.18,
			Duration:    2,
			Impact: Impact{
				CTRMultiplier:        0.7,
				ConversionMultiplier: 0.8,
			},
			Description: "Vos annonces sont trop vues. Le CTR baisse.",
			Icon:        "😴",
			NeutralizedBy: []string{
				"Creative Rotation Pro",
			},
			PlayerMessage: "Vos audiences sont saturées. Renouvelez vos créatives.",
			Tips:          "Changez vos annonces tous les 2-3 mois pour éviter la fatigue.",
		},
		{
			ID:            "budget-opportunity",
			Name:          "Budget Bonus Investisseurs",
			Module:        ModuleSEA,
			Type:          TypePositive,
			Probability:   0.05,
			Duration:      1,
			Impact:        Impact{BudgetBonus: decimal.NewFromInt(2000)},
			Description:   "Vos investisseurs débloquent un budget supplémentaire !",
			Icon:          "💰",
			PlayerMessage: "+2000€ de budget surprise ! Investissez stratégiquement.",
			Tips:          "Profitez des budgets bonus pour tester de nouveaux mots-clés.",
		},
	},
}
