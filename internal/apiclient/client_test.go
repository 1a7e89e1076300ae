package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecomeal/ecomeal/internal/types"
)

func TestGenerateRecipe(t *testing.T) {
	t.Run("should decode a successful response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/generate-recipe", r.URL.Path)

			var req types.RecipeRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, []string{"carrot", "broccoli"}, req.Ingredients)
			assert.Nil(t, req.DietaryPreferences)

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(types.RecipeResponse{
				RecipeName: "Veggie Stir Fry",
				EcoScore:   types.ScoreGreen,
				Calories:   320,
			})
		}))
		defer srv.Close()

		client := New(srv.URL)
		resp, err := client.GenerateRecipe(context.Background(), &types.RecipeRequest{
			Ingredients: []string{"carrot", "broccoli"},
		})
		require.NoError(t, err)
		assert.Equal(t, "Veggie Stir Fry", resp.RecipeName)
		assert.Equal(t, types.ScoreGreen, resp.EcoScore)
		assert.Equal(t, 320, resp.Calories)
	})

	t.Run("should return error on non-2xx status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := New(srv.URL)
		resp, err := client.GenerateRecipe(context.Background(), &types.RecipeRequest{Ingredients: []string{"x"}})
		assert.Error(t, err)
		assert.Nil(t, resp)
		assert.Contains(t, err.Error(), "status 500")
	})

	t.Run("should return error on malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer srv.Close()

		client := New(srv.URL)
		_, err := client.GenerateRecipe(context.Background(), &types.RecipeRequest{Ingredients: []string{"x"}})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode response")
	})
}

func TestAnalyzeMenu(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/restaurant-analysis", r.URL.Path)

		var req types.MenuRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Green Fork", req.RestaurantName)

		_ = json.NewEncoder(w).Encode(types.MenuAnalysisResponse{
			RestaurantName:  req.RestaurantName,
			OverallEcoScore: types.ScoreYellow,
			MenuItemsAnalysis: []types.MenuItemAnalysis{
				{Item: "burger", EcoRating: types.ScoreRed, Suggestion: "offer a plant-based patty"},
			},
		})
	}))
	defer srv.Close()

	client := New(srv.URL)
	resp, err := client.AnalyzeMenu(context.Background(), &types.MenuRequest{
		MenuItems:      []string{"burger"},
		RestaurantName: "Green Fork",
	})
	require.NoError(t, err)
	assert.Equal(t, "Green Fork", resp.RestaurantName)
	assert.Equal(t, types.ScoreYellow, resp.OverallEcoScore)
	require.Len(t, resp.MenuItemsAnalysis, 1)
	assert.Equal(t, types.ScoreRed, resp.MenuItemsAnalysis[0].EcoRating)
}

func TestNetworkFailure(t *testing.T) {
	// Point at a server that is already closed.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := New(srv.URL)
	_, err := client.GenerateRecipe(context.Background(), &types.RecipeRequest{Ingredients: []string{"x"}})
	assert.Error(t, err)
}
