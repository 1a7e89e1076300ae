package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ecomeal/ecomeal/internal/types"
)

func TestEcoScore(t *testing.T) {
	tests := []struct {
		name        string
		ingredients []string
		calories    int
		want        types.Score
	}{
		{
			name:        "eco ingredients under calorie limit",
			ingredients: []string{"organic kale", "local carrots"},
			calories:    350,
			want:        types.ScoreGreen,
		},
		{
			name:        "eco ingredients but too many calories",
			ingredients: []string{"organic kale", "local carrots"},
			calories:    700,
			want:        types.ScoreYellow,
		},
		{
			name:        "no keyword hits on either side",
			ingredients: []string{"chicken", "rice"},
			calories:    300,
			want:        types.ScoreYellow,
		},
		{
			name:        "processed ingredients win",
			ingredients: []string{"canned beans", "frozen fries", "packaged sauce"},
			calories:    900,
			want:        types.ScoreRed,
		},
		{
			name:        "processed but in the mid calorie band",
			ingredients: []string{"canned beans", "frozen fries"},
			calories:    650,
			want:        types.ScoreYellow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EcoScore(tt.ingredients, tt.calories))
		})
	}
}

func TestHealthScore(t *testing.T) {
	tests := []struct {
		name        string
		calories    int
		ingredients []string
		want        types.Score
	}{
		{
			name:        "healthy and light",
			calories:    400,
			ingredients: []string{"mixed vegetables", "nuts"},
			want:        types.ScoreGreen,
		},
		{
			name:        "healthy but heavy",
			calories:    650,
			ingredients: []string{"mixed vegetables", "nuts"},
			want:        types.ScoreYellow,
		},
		{
			name:        "unhealthy and heavy",
			calories:    900,
			ingredients: []string{"sugar syrup", "processed cheese"},
			want:        types.ScoreRed,
		},
		{
			name:        "balanced keyword counts",
			calories:    300,
			ingredients: []string{"fruits", "sugar"},
			want:        types.ScoreYellow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HealthScore(tt.calories, tt.ingredients))
		})
	}
}

func TestEcoTipFor(t *testing.T) {
	tip := EcoTipFor("Leftover Stir Fry")

	assert.Contains(t, ecoTips, tip)
	assert.Equal(t, tip, EcoTipFor("Leftover Stir Fry"), "same name should always pick the same tip")
}
