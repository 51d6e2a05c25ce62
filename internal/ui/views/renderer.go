package views

import (
	"fmt"
	"io"
	"time"

	"github.com/tgienger/vcli/internal/ui/styles"
)

// Renderer writes command results to a terminal
type Renderer struct {
	out    io.Writer
	styles *styles.Styles
	width  int
	now    func() time.Time
}

// NewRenderer creates a renderer. width is used to wrap rich text and now
// anchors relative times.
func NewRenderer(out io.Writer, s *styles.Styles, width int, now func() time.Time) *Renderer {
	if now == nil {
		now = time.Now
	}
	if width <= 0 {
		width = styles.DefaultWidth
	}
	return &Renderer{out: out, styles: s, width: width, now: now}
}

// Styles exposes the styles the renderer draws with
func (r *Renderer) Styles() *styles.Styles {
	return r.styles
}

func (r *Renderer) relative(t time.Time) string {
	return RelativeTime(t, r.now())
}

func (r *Renderer) println(a ...any) {
	fmt.Fprintln(r.out, a...)
}

func (r *Renderer) printf(format string, a ...any) {
	fmt.Fprintf(r.out, format, a...)
}

// Success prints a confirmation line
func (r *Renderer) Success(format string, a ...any) {
	r.println(r.styles.Done.Render("✓ ") + fmt.Sprintf(format, a...))
}
