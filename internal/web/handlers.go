package web

import (
	"embed"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ecomeal/ecomeal/internal/panel"
	"github.com/ecomeal/ecomeal/internal/view"
)

//go:embed templates/*.html
var templateFS embed.FS

// Handler serves the two-panel EcoMeal UI. All mutations follow the
// post-redirect-get pattern so a reload never replays a submission.
type Handler struct {
	api      panel.API
	sessions *SessionStore
}

// NewHandler creates the web UI handler submitting through api.
func NewHandler(api panel.API) *Handler {
	return &Handler{
		api:      api,
		sessions: NewSessionStore(),
	}
}

// RegisterRoutes installs the UI routes and templates on the engine.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	tmpl := template.Must(template.ParseFS(templateFS, "templates/*.html"))
	router.SetHTMLTemplate(tmpl)

	router.GET("/", h.Index)
	router.POST("/items", h.AddItem)
	router.POST("/items/remove", h.RemoveItem)
	router.POST("/submit", h.Submit)
}

type pageData struct {
	Panel view.Model
}

// Index renders the shell with the panel selected by the tab query parameter.
// Requesting a different tab than the mounted one discards the mounted
// panel's state.
func (h *Handler) Index(c *gin.Context) {
	sess := h.sessions.Get(c)
	sess.Lock()
	defer sess.Unlock()

	state := sess.Panel(activeTab(c))
	c.HTML(http.StatusOK, "index.html", pageData{Panel: view.FromState(state)})
}

// AddItem appends the submitted item to the mounted panel's collection.
func (h *Handler) AddItem(c *gin.Context) {
	sess := h.sessions.Get(c)
	sess.Lock()
	defer sess.Unlock()

	state := sess.Panel(activeTab(c))
	state.Items.Add(c.PostForm("item"))
	h.redirect(c, state.Kind)
}

// RemoveItem deletes the item at the posted index. A stale or malformed
// index is ignored, matching the collector's no-op contract.
func (h *Handler) RemoveItem(c *gin.Context) {
	sess := h.sessions.Get(c)
	sess.Lock()
	defer sess.Unlock()

	state := sess.Panel(activeTab(c))
	if i, err := strconv.Atoi(c.PostForm("index")); err == nil {
		state.Items.Remove(i)
	}
	h.redirect(c, state.Kind)
}

// Submit runs one submission cycle for the mounted panel. The modifier field
// travels with the submit form so the last typed value is what gets sent.
func (h *Handler) Submit(c *gin.Context) {
	sess := h.sessions.Get(c)
	sess.Lock()
	defer sess.Unlock()

	state := sess.Panel(activeTab(c))
	state.Modifier = c.PostForm("modifier")
	state.Submit(c.Request.Context(), h.api)
	h.redirect(c, state.Kind)
}

func (h *Handler) redirect(c *gin.Context, kind panel.Kind) {
	c.Redirect(http.StatusSeeOther, "/?tab="+string(kind))
}

// activeTab resolves the requested panel kind, defaulting to the recipe
// panel. Mutating routes accept the tab as a form value so the forms stay
// plain HTML.
func activeTab(c *gin.Context) panel.Kind {
	tab := c.Query("tab")
	if tab == "" {
		tab = c.PostForm("tab")
	}
	if tab == string(panel.KindMenu) {
		return panel.KindMenu
	}
	return panel.KindRecipe
}
