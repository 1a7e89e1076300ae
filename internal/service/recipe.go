package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ecomeal/ecomeal/internal/models"
	"github.com/ecomeal/ecomeal/internal/types"
)

// MealService produces recipes and menu analyses through the LLM and records
// every result in the history tables.
type MealService struct {
	db  *gorm.DB
	llm LLMClient
}

// NewMealService creates a new MealService instance
func NewMealService(db *gorm.DB, llm LLMClient) *MealService {
	return &MealService{db: db, llm: llm}
}

// llmRecipe is the shape the model is asked to return for a recipe.
type llmRecipe struct {
	RecipeName   string   `json:"recipe_name"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	Calories     float64  `json:"calories"`
	PrepTime     string   `json:"prep_time"`
	Difficulty   string   `json:"difficulty"`
}

// GenerateRecipe builds a recipe from leftover ingredients. Unparseable
// model output degrades to a deterministic fallback recipe rather than an
// error; eco/health scores and the eco tip are always computed locally.
func (s *MealService) GenerateRecipe(ctx context.Context, req *types.RecipeRequest) (*types.RecipeResponse, error) {
	ingredientsStr := strings.Join(req.Ingredients, ", ")

	dietary := ""
	if req.DietaryPreferences != nil && *req.DietaryPreferences != "" {
		dietary = fmt.Sprintf(" (Dietary preferences: %s)", *req.DietaryPreferences)
	}

	prompt := fmt.Sprintf(`Create a delicious recipe using these leftover ingredients: %s%s

Please provide the response in the following JSON format:
{
    "recipe_name": "Creative recipe name",
    "ingredients": ["list", "of", "ingredients", "needed"],
    "instructions": ["step", "by", "step", "instructions"],
    "calories": estimated_calories_per_serving,
    "prep_time": "X minutes",
    "difficulty": "Easy/Medium/Hard"
}

Make it eco-friendly and sustainable. Focus on reducing food waste and using all ingredients efficiently.`,
		ingredientsStr, dietary)

	raw, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate recipe: %w", err)
	}

	var recipe llmRecipe
	if err := json.Unmarshal([]byte(extractJSON(raw)), &recipe); err != nil {
		log.Printf("[MealService] falling back, model output was not valid JSON: %v", err)
		recipe = fallbackRecipe(ingredientsStr, req.Ingredients)
	}

	calories := int(recipe.Calories)
	resp := &types.RecipeResponse{
		RecipeName:   recipe.RecipeName,
		Ingredients:  recipe.Ingredients,
		Instructions: recipe.Instructions,
		Calories:     calories,
		EcoTip:       EcoTipFor(recipe.RecipeName),
		EcoScore:     EcoScore(recipe.Ingredients, calories),
		HealthScore:  HealthScore(calories, recipe.Ingredients),
		PrepTime:     recipe.PrepTime,
		Difficulty:   recipe.Difficulty,
	}

	s.recordRecipe(req, resp)
	return resp, nil
}

// fallbackRecipe mirrors the behavior when the model does not return JSON:
// a plain combine-and-cook recipe from the submitted ingredients.
func fallbackRecipe(ingredientsStr string, ingredients []string) llmRecipe {
	all := make([]string, 0, len(ingredients)+3)
	all = append(all, ingredients...)
	all = append(all, "salt", "pepper", "olive oil")

	return llmRecipe{
		RecipeName:   fmt.Sprintf("Leftover %s Recipe", ingredientsStr),
		Ingredients:  all,
		Instructions: []string{"Combine all ingredients", "Cook until done", "Season to taste"},
		Calories:     400,
		PrepTime:     "30 minutes",
		Difficulty:   "Easy",
	}
}

// recordRecipe appends the result to the history table. History is best
// effort; a storage failure is logged, never surfaced to the caller.
func (s *MealService) recordRecipe(req *types.RecipeRequest, resp *types.RecipeResponse) {
	if s.db == nil {
		return
	}

	dietary := ""
	if req.DietaryPreferences != nil {
		dietary = *req.DietaryPreferences
	}

	record := models.RecipeGeneration{
		ID:                 uuid.New(),
		InputIngredients:   models.JSONBStringArray(req.Ingredients),
		DietaryPreferences: dietary,
		RecipeName:         resp.RecipeName,
		Ingredients:        models.JSONBStringArray(resp.Ingredients),
		Instructions:       models.JSONBStringArray(resp.Instructions),
		Calories:           resp.Calories,
		EcoTip:             resp.EcoTip,
		EcoScore:           string(resp.EcoScore),
		HealthScore:        string(resp.HealthScore),
		PrepTime:           resp.PrepTime,
		Difficulty:         resp.Difficulty,
		Embedding:          GenerateEmbedding(resp.RecipeName),
	}

	if err := s.db.Create(&record).Error; err != nil {
		log.Printf("[MealService] failed to record recipe generation: %v", err)
	}
}
