package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	csslint "github.com/bearholmes/mongmung-csslint-server"
)

// Banner is the body served on GET /.
const Banner = "mongmung csslint server"

// Handlers contains the HTTP handlers for the lint service.
type Handlers struct {
	linter      *csslint.Linter
	environment string
	startedAt   time.Time
}

// NewHandlers creates handlers backed by the given linter.
func NewHandlers(linter *csslint.Linter, environment string) *Handlers {
	return &Handlers{
		linter:      linter,
		environment: environment,
		startedAt:   time.Now(),
	}
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status      string  `json:"status"`
	Timestamp   string  `json:"timestamp"`
	Uptime      float64 `json:"uptime"`
	Environment string  `json:"environment"`
}

// HandleBanner handles GET /.
func (h *Handlers) HandleBanner(c *gin.Context) {
	c.String(http.StatusOK, Banner)
}

// HandleHealth handles GET /health. Always 200 while the process runs.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:      "ok",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Uptime:      time.Since(h.startedAt).Seconds(),
		Environment: h.environment,
	})
}

// HandleLint handles POST /lint.
//
// Response:
//
//	200 OK: LintResult with success=true
//	400 Bad Request: malformed body, validation failure or parse failure
//	500 Internal Server Error: engine execution failure
func (h *Handlers) HandleLint(c *gin.Context) {
	logger := slog.With("request_id", RequestIDFrom(c), "handler", "HandleLint")

	var req csslint.LintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, csslint.LintResult{Message: "invalid request body"})
		return
	}

	result, err := h.linter.Run(c.Request.Context(), &req)
	if err != nil {
		status := http.StatusInternalServerError
		if csslint.IsRequestError(err) {
			status = http.StatusBadRequest
		}
		logger.Warn("Lint failed", "error", err, "status", status)
		c.JSON(status, csslint.LintResult{Message: err.Error()})
		return
	}

	logger.Info("Lint completed",
		"syntax", req.Syntax,
		"warnings", len(result.Content.Warnings))
	c.JSON(http.StatusOK, result)
}

// HandleNotFound serves the 404 fallback for unknown routes.
func (h *Handlers) HandleNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, csslint.LintResult{Message: "not found"})
}
