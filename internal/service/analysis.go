package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/ecomeal/ecomeal/internal/models"
	"github.com/ecomeal/ecomeal/internal/types"
)

// AnalyzeMenu rates a restaurant menu for eco-friendliness. When the model
// reply is not valid JSON the analysis degrades to a neutral yellow rating
// for every item instead of failing.
func (s *MealService) AnalyzeMenu(ctx context.Context, req *types.MenuRequest) (*types.MenuAnalysisResponse, error) {
	menuStr := strings.Join(req.MenuItems, ", ")

	restaurantName := req.RestaurantName
	if restaurantName == "" {
		restaurantName = "Restaurant"
	}

	prompt := fmt.Sprintf(`Analyze this restaurant menu for eco-friendliness and sustainability: %s

Please provide the response in the following JSON format:
{
    "eco_analysis": "Overall analysis of the menu's environmental impact",
    "recommendations": ["list", "of", "eco-friendly", "recommendations"],
    "overall_eco_score": "green/yellow/red",
    "menu_items_analysis": [
        {"item": "menu item name", "eco_rating": "green/yellow/red", "suggestion": "improvement suggestion"}
    ]
}

Focus on:
- Local and seasonal ingredients
- Plant-based options
- Sustainable protein sources
- Food waste reduction
- Packaging and preparation methods`, menuStr)

	raw, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze menu: %w", err)
	}

	var analysis types.MenuAnalysisResponse
	if err := json.Unmarshal([]byte(extractJSON(raw)), &analysis); err != nil {
		log.Printf("[MealService] falling back, model output was not valid JSON: %v", err)
		analysis = fallbackAnalysis(req.MenuItems)
	}
	analysis.RestaurantName = restaurantName

	s.recordAnalysis(req, &analysis)
	return &analysis, nil
}

// fallbackAnalysis rates every submitted item a neutral yellow with generic
// sustainability advice.
func fallbackAnalysis(menuItems []string) types.MenuAnalysisResponse {
	items := make([]types.MenuItemAnalysis, 0, len(menuItems))
	for _, item := range menuItems {
		items = append(items, types.MenuItemAnalysis{
			Item:       item,
			EcoRating:  types.ScoreYellow,
			Suggestion: "Consider making this more sustainable",
		})
	}

	return types.MenuAnalysisResponse{
		EcoAnalysis: "Menu analysis completed. Consider adding more plant-based options and local ingredients.",
		Recommendations: []string{
			"Add more plant-based options",
			"Source ingredients locally",
			"Reduce food waste through better planning",
			"Use sustainable packaging",
		},
		OverallEcoScore:   types.ScoreYellow,
		MenuItemsAnalysis: items,
	}
}

// recordAnalysis appends the result to the history table. Best effort, like
// recordRecipe.
func (s *MealService) recordAnalysis(req *types.MenuRequest, resp *types.MenuAnalysisResponse) {
	if s.db == nil {
		return
	}

	record := models.MenuAnalysisRecord{
		ID:              uuid.New(),
		RestaurantName:  resp.RestaurantName,
		MenuItems:       models.JSONBStringArray(req.MenuItems),
		EcoAnalysis:     resp.EcoAnalysis,
		Recommendations: models.JSONBStringArray(resp.Recommendations),
		OverallEcoScore: string(resp.OverallEcoScore),
		ItemsAnalysis:   models.JSONBMenuItems(resp.MenuItemsAnalysis),
	}

	if err := s.db.Create(&record).Error; err != nil {
		log.Printf("[MealService] failed to record menu analysis: %v", err)
	}
}
