package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"

	"github.com/ecomeal/ecomeal/internal/types"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// JSONBMenuItems stores the per-item analysis records as JSONB.
type JSONBMenuItems []types.MenuItemAnalysis

// Value implements the driver.Valuer interface
func (a JSONBMenuItems) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBMenuItems) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBMenuItems{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// RecipeGeneration is one stored recipe-generation result.
type RecipeGeneration struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	InputIngredients   JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"input_ingredients"`
	DietaryPreferences string           `gorm:"size:255" json:"dietary_preferences"`

	RecipeName   string           `gorm:"size:255;not null" json:"recipe_name"`
	Ingredients  JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Instructions JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"instructions"`
	Calories     int              `json:"calories"`
	EcoTip       string           `gorm:"type:text" json:"eco_tip"`
	EcoScore     string           `gorm:"size:16" json:"eco_score"`
	HealthScore  string           `gorm:"size:16" json:"health_score"`
	PrepTime     string           `gorm:"size:64" json:"prep_time"`
	Difficulty   string           `gorm:"size:64" json:"difficulty"`

	Embedding pgvector.Vector `gorm:"type:vector(3)" json:"-"`
}

// MenuAnalysisRecord is one stored restaurant-menu analysis.
type MenuAnalysisRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	RestaurantName  string           `gorm:"size:255;not null" json:"restaurant_name"`
	MenuItems       JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"menu_items"`
	EcoAnalysis     string           `gorm:"type:text" json:"eco_analysis"`
	Recommendations JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"recommendations"`
	OverallEcoScore string           `gorm:"size:16" json:"overall_eco_score"`
	ItemsAnalysis   JSONBMenuItems   `gorm:"type:jsonb;not null;default:'[]'" json:"menu_items_analysis"`
}
