package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ecomeal/ecomeal/internal/middleware"
	"github.com/ecomeal/ecomeal/internal/models"
	"github.com/ecomeal/ecomeal/internal/service"
	"github.com/ecomeal/ecomeal/internal/types"
)

// MealServicer is the service surface the handlers need.
type MealServicer interface {
	GenerateRecipe(ctx context.Context, req *types.RecipeRequest) (*types.RecipeResponse, error)
	AnalyzeMenu(ctx context.Context, req *types.MenuRequest) (*types.MenuAnalysisResponse, error)
	RecentRecipes(ctx context.Context, limit int) ([]models.RecipeGeneration, error)
	RecentAnalyses(ctx context.Context, limit int) ([]models.MenuAnalysisRecord, error)
	SimilarRecipes(ctx context.Context, query string, limit int) ([]models.RecipeGeneration, error)
}

// MealHandler exposes the recipe and menu analysis endpoints.
type MealHandler struct {
	meals   MealServicer
	archive *service.ArchiveService
}

// NewMealHandler creates a new MealHandler instance
func NewMealHandler(meals MealServicer, archive *service.ArchiveService) *MealHandler {
	return &MealHandler{meals: meals, archive: archive}
}

// RegisterRoutes wires the handler into the router. The rate limiter guards
// only the two endpoints that call the model; it may be nil in tests.
func (h *MealHandler) RegisterRoutes(router *gin.Engine, limiter *middleware.RateLimiter) {
	router.GET("/", h.Root)
	router.GET("/health", h.Health)

	generate := router.Group("")
	if limiter != nil {
		generate.Use(limiter.RateLimitMiddleware())
	}
	generate.POST("/generate-recipe", h.GenerateRecipe)
	generate.POST("/restaurant-analysis", h.AnalyzeMenu)

	history := router.Group("/history")
	history.GET("/recipes", h.RecipeHistory)
	history.GET("/analyses", h.AnalysisHistory)
	history.POST("/archive", h.Archive)
}

// Root returns a small service banner.
func (h *MealHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "EcoMeal AI Backend is running!"})
}

// Health is the liveness endpoint.
func (h *MealHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// GenerateRecipe handles POST /generate-recipe.
func (h *MealHandler) GenerateRecipe(c *gin.Context) {
	var req types.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(req.Ingredients) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one ingredient is required"})
		return
	}

	resp, err := h.meals.GenerateRecipe(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating recipe: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AnalyzeMenu handles POST /restaurant-analysis.
func (h *MealHandler) AnalyzeMenu(c *gin.Context) {
	var req types.MenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(req.MenuItems) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one menu item is required"})
		return
	}

	resp, err := h.meals.AnalyzeMenu(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error analyzing menu: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RecipeHistory handles GET /history/recipes. An optional q parameter orders
// results by similarity to the query instead of recency.
func (h *MealHandler) RecipeHistory(c *gin.Context) {
	limit := parseLimit(c.Query("limit"))

	var (
		records []models.RecipeGeneration
		err     error
	)
	if q := c.Query("q"); q != "" {
		records, err = h.meals.SimilarRecipes(c.Request.Context(), q, limit)
	} else {
		records, err = h.meals.RecentRecipes(c.Request.Context(), limit)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": records})
}

// AnalysisHistory handles GET /history/analyses.
func (h *MealHandler) AnalysisHistory(c *gin.Context) {
	records, err := h.meals.RecentAnalyses(c.Request.Context(), parseLimit(c.Query("limit")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"analyses": records})
}

// Archive handles POST /history/archive, exporting both history tables to S3.
func (h *MealHandler) Archive(c *gin.Context) {
	if h.archive == nil || !h.archive.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "archival is not configured"})
		return
	}

	recipesKey, err := h.archive.ArchiveRecipes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to archive recipes"})
		return
	}

	analysesKey, err := h.archive.ArchiveAnalyses(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to archive analyses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipes_archive":  recipesKey,
		"analyses_archive": analysesKey,
	})
}

func parseLimit(raw string) int {
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return limit
}
