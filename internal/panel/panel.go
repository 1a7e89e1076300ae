package panel

import (
	"context"
	"log"

	"github.com/ecomeal/ecomeal/internal/collector"
	"github.com/ecomeal/ecomeal/internal/types"
)

// Kind identifies one of the two feature panels.
type Kind string

const (
	KindRecipe Kind = "recipe"
	KindMenu   Kind = "menu"
)

// Status is the per-panel request lifecycle state.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// API is the subset of the analysis client a panel submits through.
type API interface {
	GenerateRecipe(ctx context.Context, req *types.RecipeRequest) (*types.RecipeResponse, error)
	AnalyzeMenu(ctx context.Context, req *types.MenuRequest) (*types.MenuAnalysisResponse, error)
}

// State holds everything a single panel owns: its collected items, the
// optional modifier field, and the result of the last submission. Outside
// idle/loading exactly one of the result pointers or ErrorMessage is set.
type State struct {
	Kind     Kind
	Items    *collector.Collector
	Modifier string

	Status       Status
	Recipe       *types.RecipeResponse
	Analysis     *types.MenuAnalysisResponse
	ErrorMessage string
}

// NewState creates an idle panel of the given kind with no items.
func NewState(kind Kind) *State {
	return &State{
		Kind:   kind,
		Items:  collector.New(),
		Status: StatusIdle,
	}
}

func (k Kind) validationMessage() string {
	if k == KindMenu {
		return "Please add at least one menu item"
	}
	return "Please add at least one ingredient"
}

func (k Kind) failureMessage() string {
	if k == KindMenu {
		return "Failed to analyze menu. Please try again."
	}
	return "Failed to generate recipe. Please try again."
}

// Submit runs one submission cycle against the API. An empty collection is
// rejected locally without a network call. Any transport, server or decode
// failure collapses to the panel's fixed user-facing message; the underlying
// error is only logged.
func (s *State) Submit(ctx context.Context, api API) {
	if s.Status == StatusLoading {
		// The trigger control is disabled while loading; a racing duplicate
		// submission is dropped rather than issuing a second request.
		return
	}

	items := s.Items.Items()
	if len(items) == 0 {
		s.Recipe = nil
		s.Analysis = nil
		s.Status = StatusError
		s.ErrorMessage = s.Kind.validationMessage()
		return
	}

	s.Status = StatusLoading
	s.Recipe = nil
	s.Analysis = nil
	s.ErrorMessage = ""

	switch s.Kind {
	case KindMenu:
		resp, err := api.AnalyzeMenu(ctx, &types.MenuRequest{
			MenuItems:      items,
			RestaurantName: s.Modifier,
		})
		if err != nil {
			s.fail(err)
			return
		}
		s.Analysis = resp
	default:
		req := &types.RecipeRequest{Ingredients: items}
		if s.Modifier != "" {
			prefs := s.Modifier
			req.DietaryPreferences = &prefs
		}
		resp, err := api.GenerateRecipe(ctx, req)
		if err != nil {
			s.fail(err)
			return
		}
		s.Recipe = resp
	}

	s.Status = StatusSuccess
	s.ErrorMessage = ""
}

func (s *State) fail(err error) {
	log.Printf("[panel:%s] submission failed: %v", s.Kind, err)
	s.Recipe = nil
	s.Analysis = nil
	s.Status = StatusError
	s.ErrorMessage = s.Kind.failureMessage()
}
