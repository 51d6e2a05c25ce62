package views

import (
	"fmt"
	"strings"

	"github.com/tgienger/vcli/internal/models"
)

// Labels prints every label as a colored chip followed by its ID
func (r *Renderer) Labels(labels []models.Label) {
	s := r.styles
	for _, l := range labels {
		line := s.Chip(l.HexColor, strings.TrimSpace(l.Title)) + s.Muted.Render(fmt.Sprintf(" [%d]", l.ID))
		if desc := strings.TrimSpace(l.Description); desc != "" {
			line += " " + s.Muted.Render(desc)
		}
		r.println(line)
	}
}
