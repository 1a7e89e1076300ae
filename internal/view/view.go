package view

import (
	"github.com/ecomeal/ecomeal/internal/panel"
	"github.com/ecomeal/ecomeal/internal/types"
)

// ScoreBadge is the presentation of a tri-state score. The mapping is total:
// any value outside green/yellow/red gets the neutral badge.
type ScoreBadge struct {
	Class string
	Icon  string
	Label string
}

// BadgeFor maps a score to its badge. Never fails on unrecognized values.
func BadgeFor(s types.Score) ScoreBadge {
	switch s {
	case types.ScoreGreen:
		return ScoreBadge{Class: "score-success", Icon: "🌱", Label: "Green"}
	case types.ScoreYellow:
		return ScoreBadge{Class: "score-warning", Icon: "⚠️", Label: "Yellow"}
	case types.ScoreRed:
		return ScoreBadge{Class: "score-danger", Icon: "❌", Label: "Red"}
	default:
		return ScoreBadge{Class: "score-neutral", Icon: "❓", Label: "Unknown"}
	}
}

// RecipeView is the recipe payload prepared for rendering.
type RecipeView struct {
	Name         string
	Ingredients  []string
	Instructions []string
	Calories     int
	EcoTip       string
	EcoScore     ScoreBadge
	HealthScore  ScoreBadge
	PrepTime     string
	Difficulty   string
}

// MenuItemView is one analyzed menu item prepared for rendering.
type MenuItemView struct {
	Item       string
	Rating     ScoreBadge
	Suggestion string
}

// AnalysisView is the menu analysis payload prepared for rendering.
type AnalysisView struct {
	RestaurantName  string
	EcoAnalysis     string
	Recommendations []string
	Overall         ScoreBadge
	Items           []MenuItemView
}

// Model is the full render model for one panel. Exactly one of Recipe and
// Analysis is non-nil when Status is success.
type Model struct {
	Kind        panel.Kind
	Status      panel.Status
	Items       []string
	Modifier    string
	Error       string
	Placeholder string
	Busy        bool
	Recipe      *RecipeView
	Analysis    *AnalysisView
}

// FromState builds the render model for a panel. Pure; no panel mutation.
func FromState(s *panel.State) Model {
	m := Model{
		Kind:     s.Kind,
		Status:   s.Status,
		Items:    s.Items.Items(),
		Modifier: s.Modifier,
		Error:    s.ErrorMessage,
		Busy:     s.Status == panel.StatusLoading,
	}

	switch s.Status {
	case panel.StatusLoading:
		if s.Kind == panel.KindMenu {
			m.Placeholder = "Menu analysis in progress..."
		} else {
			m.Placeholder = "Recipe generation in progress..."
		}
	case panel.StatusSuccess:
		// No placeholder; the result occupies the slot.
	default:
		if s.Kind == panel.KindMenu {
			m.Placeholder = "Add menu items and run an eco analysis of the restaurant."
		} else {
			m.Placeholder = "Add your leftover ingredients and generate an eco-friendly recipe."
		}
	}

	if s.Recipe != nil {
		m.Recipe = recipeView(s.Recipe)
	}
	if s.Analysis != nil {
		m.Analysis = analysisView(s.Analysis)
	}
	return m
}

func recipeView(r *types.RecipeResponse) *RecipeView {
	return &RecipeView{
		Name:         r.RecipeName,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		Calories:     r.Calories,
		EcoTip:       r.EcoTip,
		EcoScore:     BadgeFor(r.EcoScore),
		HealthScore:  BadgeFor(r.HealthScore),
		PrepTime:     r.PrepTime,
		Difficulty:   r.Difficulty,
	}
}

func analysisView(a *types.MenuAnalysisResponse) *AnalysisView {
	items := make([]MenuItemView, 0, len(a.MenuItemsAnalysis))
	for _, it := range a.MenuItemsAnalysis {
		items = append(items, MenuItemView{
			Item:       it.Item,
			Rating:     BadgeFor(it.EcoRating),
			Suggestion: it.Suggestion,
		})
	}
	return &AnalysisView{
		RestaurantName:  a.RestaurantName,
		EcoAnalysis:     a.EcoAnalysis,
		Recommendations: a.Recommendations,
		Overall:         BadgeFor(a.OverallEcoScore),
		Items:           items,
	}
}
