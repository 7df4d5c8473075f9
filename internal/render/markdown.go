package render

import (
	"bytes"
	"html/template"
	"log"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
)

// md renders model-generated day descriptions. Raw HTML stays disabled:
// anything the model emits as markup is filtered out rather than executed.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(
			highlighting.WithStyle("github"),
		),
	),
)

// Markdown converts a markdown string to sanitized HTML. On a conversion
// failure the raw text is shown escaped instead.
func Markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		log.Printf("render: markdown conversion: %v", err)
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}
