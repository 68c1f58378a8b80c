package server

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/itsmostafa/runcode/internal/version"
)

const requestIDHeader = "X-Request-ID"

var (
	// titleStyle for bold headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("160"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// successStyle for 2xx/3xx statuses
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// warnStyle for 4xx statuses
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	// errorStyle for 5xx statuses
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// methodStyle for the HTTP method column
	methodStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")).
			Bold(true)

	// headerBoxStyle for the startup header
	headerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("160")).
			Padding(0, 1)
)

// RequestLog describes a single served request
type RequestLog struct {
	ID       string
	Method   string
	Path     string
	Status   int
	Duration time.Duration
}

// FormatHeader renders the startup header with configuration info
func FormatHeader(w io.Writer, cfg Config) {
	mode := "release"
	if cfg.Debug {
		mode = "debug"
	}

	content := fmt.Sprintf("%s\n%s %s  %s %s\n%s %s",
		titleStyle.Render("runcode"),
		dimStyle.Render("Listen:"), successStyle.Render("http://"+cfg.Addr),
		dimStyle.Render("Mode:"), mode,
		dimStyle.Render("Version:"), version.String(),
	)

	fmt.Fprintln(w, headerBoxStyle.Render(content))
}

// FormatShutdown renders the shutdown notice
func FormatShutdown(w io.Writer) {
	fmt.Fprintln(w, dimStyle.Render("Server stopped"))
}

// FormatRequest writes one log line for a served request
func FormatRequest(w io.Writer, entry RequestLog) {
	fmt.Fprintf(w, "%s %s %s %s %s\n",
		statusStyle(entry.Status).Render(fmt.Sprintf("%d", entry.Status)),
		methodStyle.Render(fmt.Sprintf("%-7s", entry.Method)),
		entry.Path,
		dimStyle.Render(entry.Duration.Round(time.Microsecond).String()),
		dimStyle.Render(entry.ID),
	)
}

func statusStyle(status int) lipgloss.Style {
	switch {
	case status >= 500:
		return errorStyle
	case status >= 400:
		return warnStyle
	default:
		return successStyle
	}
}

// requestID tags each request with a fresh id and echoes it back along
// with the server product name
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.New().String()
		c.Set(requestIDHeader, id)
		c.Header(requestIDHeader, id)
		c.Header("Server", version.Product())
		c.Next()
	}
}

// requestLogger writes a FormatRequest line after each request completes
func requestLogger(w io.Writer) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		FormatRequest(w, RequestLog{
			ID:       c.GetString(requestIDHeader),
			Method:   c.Request.Method,
			Path:     c.Request.URL.Path,
			Status:   c.Writer.Status(),
			Duration: time.Since(start),
		})
	}
}
