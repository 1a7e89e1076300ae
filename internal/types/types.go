package types

// Score is the tri-state eco/health rating returned by the analysis service.
// Values outside the three known constants are preserved as-is; presentation
// code must treat them as unknown rather than failing.
type Score string

const (
	ScoreGreen  Score = "green"
	ScoreYellow Score = "yellow"
	ScoreRed    Score = "red"
)

// Known reports whether the score is one of the three defined ratings.
func (s Score) Known() bool {
	switch s {
	case ScoreGreen, ScoreYellow, ScoreRed:
		return true
	}
	return false
}

// RecipeRequest is the body of POST /generate-recipe.
type RecipeRequest struct {
	Ingredients        []string `json:"ingredients" binding:"required"`
	DietaryPreferences *string  `json:"dietary_preferences"`
}

// RecipeResponse is the recipe shape returned by POST /generate-recipe.
type RecipeResponse struct {
	RecipeName   string   `json:"recipe_name"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	Calories     int      `json:"calories"`
	EcoTip       string   `json:"eco_tip"`
	EcoScore     Score    `json:"eco_score"`
	HealthScore  Score    `json:"health_score"`
	PrepTime     string   `json:"prep_time"`
	Difficulty   string   `json:"difficulty"`
}

// MenuRequest is the body of POST /restaurant-analysis.
type MenuRequest struct {
	MenuItems      []string `json:"menu_items" binding:"required"`
	RestaurantName string   `json:"restaurant_name"`
}

// MenuItemAnalysis is the per-item record inside a menu analysis.
type MenuItemAnalysis struct {
	Item       string `json:"item"`
	EcoRating  Score  `json:"eco_rating"`
	Suggestion string `json:"suggestion"`
}

// MenuAnalysisResponse is the analysis shape returned by POST /restaurant-analysis.
type MenuAnalysisResponse struct {
	RestaurantName    string             `json:"restaurant_name"`
	EcoAnalysis       string             `json:"eco_analysis"`
	Recommendations   []string           `json:"recommendations"`
	OverallEcoScore   Score              `json:"overall_eco_score"`
	MenuItemsAnalysis []MenuItemAnalysis `json:"menu_items_analysis"`
}
