package document

import (
	"fmt"
	"html/template"
	"io"
)

var shell = template.Must(template.New("shell").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
{{if .Favicon}}<link rel="icon" href="{{.Favicon}}">{{else}}<link rel="icon">{{end}}
</head>
<body>
<div id="app" data-view="{{.View}}" data-route="{{.Route}}" data-scroll-top="{{.ScrollTop}}" data-scroll-left="{{.ScrollLeft}}"></div>
</body>
</html>
`))

// Page is the data rendered into the HTML shell.
type Page struct {
	Route      string
	View       string
	ScrollTop  int
	ScrollLeft int
}

type shellData struct {
	Page
	Title   string
	Favicon template.URL
}

// Render writes the HTML shell for page using the head state of doc.
func Render(w io.Writer, doc Document, page Page) error {
	data := shellData{
		Page:  page,
		Title: doc.Title(),
		// Synthesized icons are data: URIs which html/template would otherwise
		// replace with #ZgotmplZ.
		Favicon: template.URL(doc.Favicon()), // #nosec G203
	}
	if err := shell.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render page %s: %w", page.Route, err)
	}
	return nil
}
