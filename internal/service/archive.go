package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/ecomeal/ecomeal/config"
)

// ArchiveService exports the history tables as CSV snapshots to S3.
type ArchiveService struct {
	meals    *MealService
	s3Config *config.S3Config
}

// NewArchiveService creates a new ArchiveService instance
func NewArchiveService(meals *MealService, s3Config *config.S3Config) *ArchiveService {
	return &ArchiveService{meals: meals, s3Config: s3Config}
}

// Enabled reports whether an S3 destination is configured.
func (s *ArchiveService) Enabled() bool {
	return s.s3Config != nil && s.s3Config.Client != nil
}

// ArchiveRecipes writes the most recent recipe generations to a timestamped
// CSV object and returns its key.
func (s *ArchiveService) ArchiveRecipes(ctx context.Context) (string, error) {
	if !s.Enabled() {
		return "", fmt.Errorf("archival is not configured")
	}

	records, err := s.meals.RecentRecipes(ctx, 100)
	if err != nil {
		return "", err
	}

	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, []string{
		"timestamp", "ingredients", "recipe_name", "calories", "eco_score", "health_score",
	})
	for _, r := range records {
		rows = append(rows, []string{
			r.CreatedAt.Format(time.RFC3339),
			strings.Join(r.InputIngredients, ", "),
			r.RecipeName,
			strconv.Itoa(r.Calories),
			r.EcoScore,
			r.HealthScore,
		})
	}

	key := fmt.Sprintf("archives/recipes-%s.csv", time.Now().UTC().Format("20060102-150405"))
	if err := s.upload(ctx, key, rows); err != nil {
		return "", err
	}
	return key, nil
}

// ArchiveAnalyses writes the most recent menu analyses to a timestamped CSV
// object and returns its key.
func (s *ArchiveService) ArchiveAnalyses(ctx context.Context) (string, error) {
	if !s.Enabled() {
		return "", fmt.Errorf("archival is not configured")
	}

	records, err := s.meals.RecentAnalyses(ctx, 100)
	if err != nil {
		return "", err
	}

	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, []string{
		"timestamp", "restaurant_name", "menu_items", "overall_eco_score", "recommendations_count",
	})
	for _, r := range records {
		rows = append(rows, []string{
			r.CreatedAt.Format(time.RFC3339),
			r.RestaurantName,
			strings.Join(r.MenuItems, ", "),
			r.OverallEcoScore,
			strconv.Itoa(len(r.Recommendations)),
		})
	}

	key := fmt.Sprintf("archives/analyses-%s.csv", time.Now().UTC().Format("20060102-150405"))
	if err := s.upload(ctx, key, rows); err != nil {
		return "", err
	}
	return key, nil
}

func (s *ArchiveService) upload(ctx context.Context, key string, rows [][]string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to encode CSV: %w", err)
	}

	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("text/csv"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}

	log.Printf("[ArchiveService] uploaded %s (%d rows)", key, len(rows)-1)
	return nil
}
