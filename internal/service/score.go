package service

import (
	"hash/fnv"
	"strings"

	"github.com/ecomeal/ecomeal/internal/types"
)

var (
	ecoKeywords       = []string{"organic", "local", "seasonal", "plant-based", "sustainable"}
	processedKeywords = []string{"processed", "packaged", "frozen", "canned"}

	healthyKeywords   = []string{"vegetables", "fruits", "whole grain", "lean protein", "nuts", "seeds"}
	unhealthyKeywords = []string{"sugar", "sodium", "saturated fat", "processed"}

	ecoTips = []string{
		"Use all parts of vegetables to reduce waste",
		"Choose local and seasonal ingredients when possible",
		"Compost food scraps instead of throwing them away",
		"Store leftovers properly to extend their shelf life",
		"Plan meals to use ingredients before they spoil",
	}
)

func keywordHits(items, keywords []string) int {
	count := 0
	for _, item := range items {
		lower := strings.ToLower(item)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				count++
			}
		}
	}
	return count
}

// EcoScore rates a recipe's environmental impact from its ingredient list
// and calorie count.
func EcoScore(ingredients []string, calories int) types.Score {
	ecoCount := keywordHits(ingredients, ecoKeywords)
	processedCount := keywordHits(ingredients, processedKeywords)

	switch {
	case ecoCount > processedCount && calories < 600:
		return types.ScoreGreen
	case ecoCount == processedCount || (calories >= 600 && calories <= 800):
		return types.ScoreYellow
	default:
		return types.ScoreRed
	}
}

// HealthScore rates a recipe's healthiness from its calorie count and
// ingredient list.
func HealthScore(calories int, ingredients []string) types.Score {
	healthyCount := keywordHits(ingredients, healthyKeywords)
	unhealthyCount := keywordHits(ingredients, unhealthyKeywords)

	switch {
	case healthyCount > unhealthyCount && calories < 500:
		return types.ScoreGreen
	case healthyCount == unhealthyCount || (calories >= 500 && calories <= 700):
		return types.ScoreYellow
	default:
		return types.ScoreRed
	}
}

// EcoTipFor picks a tip from the fixed rotation, keyed deterministically by
// the recipe name so the same recipe always gets the same tip.
func EcoTipFor(recipeName string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(recipeName))
	return ecoTips[int(h.Sum32())%len(ecoTips)]
}
