// Package export writes a generated course as a self-contained static
// HTML page. Whatever has been fetched so far is exported; unexpanded
// weeks appear as outline entries only.
package export

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/coursetrail/coursetrail/internal/course"
	"github.com/coursetrail/coursetrail/internal/render"
)

// Exporter writes course pages into OutputDir.
type Exporter struct {
	OutputDir string
	renderer  *render.Renderer
}

// New creates an Exporter writing into outputDir.
func New(outputDir string) *Exporter {
	return &Exporter{
		OutputDir: outputDir,
		renderer:  render.New(),
	}
}

type pageData struct {
	Title    string
	Model    string
	Timeline template.HTML
}

// Write renders the course to OutputDir/course.html plus style.css and
// returns the page path.
func (e *Exporter) Write(c *course.Course) (string, error) {
	if c == nil {
		return "", fmt.Errorf("no course to export")
	}

	timeline, err := e.renderer.Timeline(c)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(e.OutputDir, 0o755); err != nil {
		return "", err
	}

	if err := os.WriteFile(filepath.Join(e.OutputDir, "style.css"), []byte(cssContent), 0o644); err != nil {
		return "", err
	}

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return "", fmt.Errorf("parsing page template: %w", err)
	}

	outPath := filepath.Join(e.OutputDir, "course.html")
	f, err := os.Create(outPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	data := pageData{
		Title:    c.Title,
		Model:    c.Request.Model,
		Timeline: timeline,
	}
	if err := tmpl.Execute(f, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", outPath, err)
	}
	return outPath, nil
}
