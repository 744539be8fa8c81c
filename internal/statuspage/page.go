package statuspage

import (
	_ "embed"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed page.html
var pageHTML string

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

// PageHandler serves the rendered status page.
type PageHandler struct {
	client *Client
	logger *slog.Logger
}

// NewPageHandler creates a PageHandler backed by the given client.
func NewPageHandler(client *Client, logger *slog.Logger) *PageHandler {
	return &PageHandler{
		client: client,
		logger: logger,
	}
}

// Page handles GET / by loading the view and rendering the page.
// A fully failed load still renders: disconnected indicator, no
// message, no status section.
func (h *PageHandler) Page(w http.ResponseWriter, r *http.Request) {
	view := Load(r.Context(), h.client, h.logger)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, view); err != nil {
		h.logger.Error("failed to render status page", slog.String("error", err.Error()))
	}
}
