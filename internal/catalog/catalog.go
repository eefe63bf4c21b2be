// Package catalog holds the static App component templates written into the
// generated project. Lookup is pure; nothing is interpolated at render time.
package catalog

// TemplateID selects one of the bundled App component templates.
type TemplateID string

const (
	Basic     TemplateID = "basic"
	Dashboard TemplateID = "dashboard"
	Landing   TemplateID = "landing"
	Blog      TemplateID = "blog"
)

// IDs returns the known template identifiers in display order.
func IDs() []TemplateID {
	return []TemplateID{Basic, Dashboard, Landing, Blog}
}

// Valid reports whether id names a known template.
func Valid(id TemplateID) bool {
	switch id {
	case Basic, Dashboard, Landing, Blog:
		return true
	}
	return false
}

// App returns the App component source for id. An unknown id falls back to
// the basic template; the CLI rejects unknown ids before reaching here, so
// the fallback is a safety net rather than the validation path.
func App(id TemplateID, typescript bool) string {
	blobs := jsxTemplates
	if typescript {
		blobs = tsxTemplates
	}
	if blob, ok := blobs[id]; ok {
		return blob
	}
	return blobs[Basic]
}

var jsxTemplates = map[TemplateID]string{
	Basic:     basicJSX,
	Dashboard: dashboardJSX,
	Landing:   landingJSX,
	Blog:      blogJSX,
}

var tsxTemplates = map[TemplateID]string{
	Basic:     basicTSX,
	Dashboard: dashboardTSX,
	Landing:   landingTSX,
	Blog:      blogTSX,
}
