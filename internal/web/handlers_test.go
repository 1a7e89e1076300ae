package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecomeal/ecomeal/internal/types"
)

type stubAPI struct {
	recipe   *types.RecipeResponse
	analysis *types.MenuAnalysisResponse
	err      error
	calls    int
}

func (s *stubAPI) GenerateRecipe(context.Context, *types.RecipeRequest) (*types.RecipeResponse, error) {
	s.calls++
	return s.recipe, s.err
}

func (s *stubAPI) AnalyzeMenu(context.Context, *types.MenuRequest) (*types.MenuAnalysisResponse, error) {
	s.calls++
	return s.analysis, s.err
}

// browser drives the UI like a cookie-holding client, following redirects.
type browser struct {
	t      *testing.T
	router *gin.Engine
	cookie string
}

func newBrowser(t *testing.T, api *stubAPI) *browser {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(api).RegisterRoutes(router)
	return &browser{t: t, router: router}
}

func (b *browser) do(method, target string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if b.cookie != "" {
		req.Header.Set("Cookie", b.cookie)
	}

	w := httptest.NewRecorder()
	b.router.ServeHTTP(w, req)

	if sc := w.Result().Cookies(); len(sc) > 0 {
		b.cookie = sc[0].Name + "=" + sc[0].Value
	}
	if w.Code == http.StatusSeeOther {
		return b.do(http.MethodGet, w.Header().Get("Location"), nil)
	}
	return w
}

func TestIndexRendersIdlePlaceholder(t *testing.T) {
	b := newBrowser(t, &stubAPI{})
	w := b.do(http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "leftover ingredients")
}

func TestAddAndRemoveItems(t *testing.T) {
	b := newBrowser(t, &stubAPI{})
	b.do(http.MethodGet, "/", nil)

	w := b.do(http.MethodPost, "/items?tab=recipe", url.Values{"item": {"  carrot "}})
	assert.Contains(t, w.Body.String(), "carrot")

	// Duplicate is ignored.
	w = b.do(http.MethodPost, "/items?tab=recipe", url.Values{"item": {"carrot"}})
	assert.Equal(t, 1, strings.Count(w.Body.String(), "Remove carrot"))

	w = b.do(http.MethodPost, "/items/remove?tab=recipe", url.Values{"index": {"0"}})
	assert.NotContains(t, w.Body.String(), "Remove carrot")
}

func TestSubmitWithoutItemsShowsValidationError(t *testing.T) {
	api := &stubAPI{}
	b := newBrowser(t, api)
	b.do(http.MethodGet, "/", nil)

	w := b.do(http.MethodPost, "/submit?tab=recipe", url.Values{})

	assert.Equal(t, 0, api.calls)
	assert.Contains(t, w.Body.String(), "Please add at least one ingredient")
}

func TestSubmitRendersRecipe(t *testing.T) {
	api := &stubAPI{recipe: &types.RecipeResponse{
		RecipeName:   "Veggie Stir Fry",
		Ingredients:  []string{"carrot", "broccoli"},
		Instructions: []string{"Chop", "Cook"},
		Calories:     320,
		EcoTip:       "Use scraps for stock",
		EcoScore:     types.ScoreGreen,
		HealthScore:  types.ScoreYellow,
		PrepTime:     "20 min",
		Difficulty:   "Easy",
	}}
	b := newBrowser(t, api)
	b.do(http.MethodGet, "/", nil)
	b.do(http.MethodPost, "/items?tab=recipe", url.Values{"item": {"carrot"}})

	w := b.do(http.MethodPost, "/submit?tab=recipe", url.Values{"modifier": {"vegan"}})

	body := w.Body.String()
	assert.Contains(t, body, "Veggie Stir Fry")
	assert.Contains(t, body, "score-success")
	assert.Contains(t, body, "score-warning")
	assert.Contains(t, body, "Use scraps for stock")
	require.Equal(t, 1, api.calls)
}

func TestSubmitFailureShowsFixedMessage(t *testing.T) {
	api := &stubAPI{err: errors.New("connection refused")}
	b := newBrowser(t, api)
	b.do(http.MethodGet, "/?tab=menu", nil)
	b.do(http.MethodPost, "/items?tab=menu", url.Values{"item": {"burger"}})

	w := b.do(http.MethodPost, "/submit?tab=menu", url.Values{})

	assert.Contains(t, w.Body.String(), "Failed to analyze menu. Please try again.")
}

func TestTabSwitchDiscardsPanelState(t *testing.T) {
	b := newBrowser(t, &stubAPI{})
	b.do(http.MethodGet, "/", nil)
	b.do(http.MethodPost, "/items?tab=recipe", url.Values{"item": {"carrot"}})

	// Switch away and back; the recipe panel comes back empty.
	b.do(http.MethodGet, "/?tab=menu", nil)
	w := b.do(http.MethodGet, "/?tab=recipe", nil)

	assert.NotContains(t, w.Body.String(), "Remove carrot")
}
