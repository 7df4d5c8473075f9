// Package render projects course state into HTML. Rendering is a pure
// function of a course snapshot: the same state always produces the same
// markup, and every text field flows through html/template's contextual
// escaping.
package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/coursetrail/coursetrail/internal/course"
)

// Renderer holds the parsed timeline template.
type Renderer struct {
	tmpl *template.Template
}

// New parses the timeline template. Template errors are programmer errors,
// hence the panic via template.Must.
func New() *Renderer {
	tmpl := template.Must(template.New("timeline").Funcs(template.FuncMap{
		"months":    Months,
		"markdown":  Markdown,
		"globalDay": course.GlobalDayNumber,
	}).Parse(timelineTemplate))
	return &Renderer{tmpl: tmpl}
}

// Timeline renders the whole course view from a snapshot.
func (r *Renderer) Timeline(c *course.Course) (template.HTML, error) {
	if c == nil {
		return "", fmt.Errorf("no course to render")
	}
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, c); err != nil {
		return "", fmt.Errorf("rendering timeline: %w", err)
	}
	return template.HTML(buf.String()), nil
}
