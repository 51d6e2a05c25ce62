package views

import (
	"github.com/tgienger/vcli/internal/models"
)

// Comments prints comments oldest first with author and age
func (r *Renderer) Comments(comments []models.Comment) {
	s := r.styles
	if len(comments) == 0 {
		r.println(s.Muted.Render("No comments yet"))
		return
	}
	for i, c := range comments {
		if i > 0 {
			r.println()
		}
		header := s.Author.Render(c.Author.Username)
		if c.Created.Valid {
			header += s.Muted.Render(" (" + r.relative(c.Created.Time) + ")")
		}
		r.println(header + ":")
		if c.Comment.Valid {
			r.println(HTMLToText(c.Comment.Source, r.width))
		}
	}
}
