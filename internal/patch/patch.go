// Package patch edits the files create-vite generated to wire in Tailwind
// CSS and the selected App template.
package patch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Justinkarso/create-revite/internal/catalog"
	"github.com/Justinkarso/create-revite/internal/debug"
)

// Anchor text expected in create-vite's default vite.config output. The
// patches are exact-string edits, so a changed upstream template surfaces as
// an AnchorError instead of a silently unpatched file.
const (
	reactImportAnchor = `import react from '@vitejs/plugin-react'`
	tailwindImport    = `import tailwindcss from '@tailwindcss/vite'`
	pluginsAnchor     = `plugins: [react()]`
	pluginsPatched    = `plugins: [react(), tailwindcss()]`
)

// TailwindEntryCSS replaces the generated stylesheet entry point.
const TailwindEntryCSS = "@import \"tailwindcss\";\n"

// Packages are the dependencies the package manager must add before the
// patched config can build.
var Packages = []string{"tailwindcss", "@tailwindcss/vite"}

// AnchorError reports that an expected anchor string was missing from a
// generated file, meaning create-vite's default output has changed shape.
type AnchorError struct {
	// File is the path of the file that was being patched.
	File string
	// Anchor is the text that could not be found.
	Anchor string
}

// Error returns the error message.
func (e *AnchorError) Error() string {
	return fmt.Sprintf("expected text %q not found in %s (the generator's default output may have changed)", e.Anchor, e.File)
}

// ViteConfigName returns the build-config filename for the language variant.
func ViteConfigName(typescript bool) string {
	if typescript {
		return "vite.config.ts"
	}
	return "vite.config.js"
}

// AppFileName returns the App component filename for the language variant.
func AppFileName(typescript bool) string {
	if typescript {
		return filepath.Join("src", "App.tsx")
	}
	return filepath.Join("src", "App.jsx")
}

// ViteConfig inserts the Tailwind plugin import and extends the plugin array
// in the generated vite config. Both edits must find their anchor text.
func ViteConfig(projectDir string, typescript bool) error {
	path := filepath.Join(projectDir, ViteConfigName(typescript))
	debug.DebugValue("[patch] Vite config", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	content := string(data)

	if !strings.Contains(content, reactImportAnchor) {
		return &AnchorError{File: path, Anchor: reactImportAnchor}
	}
	if !strings.Contains(content, pluginsAnchor) {
		return &AnchorError{File: path, Anchor: pluginsAnchor}
	}

	content = strings.Replace(content, reactImportAnchor, reactImportAnchor+"\n"+tailwindImport, 1)
	content = strings.Replace(content, pluginsAnchor, pluginsPatched, 1)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Stylesheet overwrites the entry stylesheet with the Tailwind import,
// discarding whatever default content the generator produced.
func Stylesheet(projectDir string) error {
	path := filepath.Join(projectDir, "src", "index.css")
	debug.DebugValue("[patch] Stylesheet", path)

	if err := os.WriteFile(path, []byte(TailwindEntryCSS), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// AppComponent replaces the generated App component with the selected
// template and removes the component-local stylesheet it referenced.
func AppComponent(projectDir string, typescript bool, id catalog.TemplateID) error {
	path := filepath.Join(projectDir, AppFileName(typescript))
	debug.DebugValue("[patch] App component", path)
	debug.DebugValue("[patch] Template", id)

	blob := catalog.App(id, typescript)
	if err := os.WriteFile(path, []byte(blob), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	appCSS := filepath.Join(projectDir, "src", "App.css")
	if err := os.Remove(appCSS); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %s: %w", appCSS, err)
	}
	return nil
}
