package service

import (
	"context"
	"fmt"

	"gorm.io/gorm/clause"

	"github.com/ecomeal/ecomeal/internal/models"
)

const defaultHistoryLimit = 20

// RecentRecipes returns the most recent recipe generations, newest first.
func (s *MealService) RecentRecipes(ctx context.Context, limit int) ([]models.RecipeGeneration, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultHistoryLimit
	}

	var records []models.RecipeGeneration
	if err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load recipe history: %w", err)
	}
	return records, nil
}

// RecentAnalyses returns the most recent menu analyses, newest first.
func (s *MealService) RecentAnalyses(ctx context.Context, limit int) ([]models.MenuAnalysisRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultHistoryLimit
	}

	var records []models.MenuAnalysisRecord
	if err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load analysis history: %w", err)
	}
	return records, nil
}

// SimilarRecipes orders stored recipes by embedding distance to the query
// text. Requires the pgvector extension, so it is only available on postgres;
// other drivers fall back to recency order.
func (s *MealService) SimilarRecipes(ctx context.Context, query string, limit int) ([]models.RecipeGeneration, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultHistoryLimit
	}

	if s.db.Dialector.Name() != "postgres" {
		return s.RecentRecipes(ctx, limit)
	}

	embedding := GenerateEmbedding(query)

	var records []models.RecipeGeneration
	if err := s.db.WithContext(ctx).
		Clauses(clause.OrderBy{
			Expression: clause.Expr{SQL: "embedding <-> ?", Vars: []interface{}{embedding}},
		}).
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load similar recipes: %w", err)
	}
	return records, nil
}
