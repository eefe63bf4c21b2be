package patch

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Justinkarso/create-revite/internal/catalog"
)

// defaultViteConfig mirrors create-vite's react template output.
const defaultViteConfig = `import { defineConfig } from 'vite'
import react from '@vitejs/plugin-react'

// https://vite.dev/config/
export default defineConfig({
  plugins: [react()],
})
`

func writeProject(t *testing.T, typescript bool) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "src"), 0755); err != nil {
		t.Fatal(err)
	}
	files := map[string]string{
		ViteConfigName(typescript):        defaultViteConfig,
		filepath.Join("src", "index.css"): ":root {\n  font-family: sans-serif;\n}\n",
		AppFileName(typescript):           "function App() {}\n\nexport default App\n",
		filepath.Join("src", "App.css"):   "#root {\n  margin: 0 auto;\n}\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestViteConfig(t *testing.T) {
	t.Run("inserts import and extends plugin array", func(t *testing.T) {
		dir := writeProject(t, false)

		if err := ViteConfig(dir, false); err != nil {
			t.Fatalf("ViteConfig failed: %v", err)
		}

		data, err := os.ReadFile(filepath.Join(dir, "vite.config.js"))
		if err != nil {
			t.Fatal(err)
		}
		content := string(data)

		wantImports := "import react from '@vitejs/plugin-react'\nimport tailwindcss from '@tailwindcss/vite'"
		if !strings.Contains(content, wantImports) {
			t.Errorf("Expected tailwind import after react import, got:\n%s", content)
		}
		if !strings.Contains(content, "plugins: [react(), tailwindcss()]") {
			t.Errorf("Expected extended plugin array, got:\n%s", content)
		}
		if strings.Contains(content, "plugins: [react()],\n") && !strings.Contains(content, "tailwindcss()") {
			t.Errorf("Plugin array was not patched:\n%s", content)
		}
	})

	t.Run("typescript variant patches vite.config.ts", func(t *testing.T) {
		dir := writeProject(t, true)

		if err := ViteConfig(dir, true); err != nil {
			t.Fatalf("ViteConfig failed: %v", err)
		}

		data, err := os.ReadFile(filepath.Join(dir, "vite.config.ts"))
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(data), "tailwindcss()") {
			t.Error("Expected vite.config.ts to gain the tailwind plugin")
		}
	})

	t.Run("missing import anchor is an error", func(t *testing.T) {
		dir := writeProject(t, false)
		path := filepath.Join(dir, "vite.config.js")
		changed := strings.Replace(defaultViteConfig,
			"import react from '@vitejs/plugin-react'",
			"import react from \"@vitejs/plugin-react\"", 1)
		if err := os.WriteFile(path, []byte(changed), 0644); err != nil {
			t.Fatal(err)
		}

		err := ViteConfig(dir, false)
		var anchorErr *AnchorError
		if !errors.As(err, &anchorErr) {
			t.Fatalf("Expected AnchorError, got %T: %v", err, err)
		}
		if anchorErr.File != path {
			t.Errorf("Expected error to name %s, got %s", path, anchorErr.File)
		}

		// The file must be left untouched on failure.
		data, _ := os.ReadFile(path)
		if string(data) != changed {
			t.Error("Expected file to be unchanged after anchor mismatch")
		}
	})

	t.Run("missing plugin anchor is an error", func(t *testing.T) {
		dir := writeProject(t, false)
		path := filepath.Join(dir, "vite.config.js")
		changed := strings.Replace(defaultViteConfig, "plugins: [react()]", "plugins: [react(), svgr()]", 1)
		if err := os.WriteFile(path, []byte(changed), 0644); err != nil {
			t.Fatal(err)
		}

		err := ViteConfig(dir, false)
		var anchorErr *AnchorError
		if !errors.As(err, &anchorErr) {
			t.Fatalf("Expected AnchorError, got %T: %v", err, err)
		}
	})

	t.Run("missing config file", func(t *testing.T) {
		if err := ViteConfig(t.TempDir(), false); err == nil {
			t.Error("Expected error for missing config file")
		}
	})
}

func TestStylesheet(t *testing.T) {
	dir := writeProject(t, false)

	if err := Stylesheet(dir); err != nil {
		t.Fatalf("Stylesheet failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "src", "index.css"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "@import \"tailwindcss\";\n" {
		t.Errorf("Expected stylesheet to contain only the tailwind import, got: %q", string(data))
	}
}

func TestAppComponent(t *testing.T) {
	t.Run("writes template and removes App.css", func(t *testing.T) {
		dir := writeProject(t, false)

		if err := AppComponent(dir, false, catalog.Dashboard); err != nil {
			t.Fatalf("AppComponent failed: %v", err)
		}

		data, err := os.ReadFile(filepath.Join(dir, "src", "App.jsx"))
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != catalog.App(catalog.Dashboard, false) {
			t.Error("Expected App.jsx to contain exactly the dashboard blob")
		}

		if _, err := os.Stat(filepath.Join(dir, "src", "App.css")); !os.IsNotExist(err) {
			t.Error("Expected App.css to be removed")
		}
	})

	t.Run("missing App.css is not an error", func(t *testing.T) {
		dir := writeProject(t, false)
		if err := os.Remove(filepath.Join(dir, "src", "App.css")); err != nil {
			t.Fatal(err)
		}

		if err := AppComponent(dir, false, catalog.Basic); err != nil {
			t.Errorf("Expected success when App.css is already gone, got: %v", err)
		}
	})

	t.Run("typescript variant writes App.tsx", func(t *testing.T) {
		dir := writeProject(t, true)

		if err := AppComponent(dir, true, catalog.Blog); err != nil {
			t.Fatalf("AppComponent failed: %v", err)
		}

		data, err := os.ReadFile(filepath.Join(dir, "src", "App.tsx"))
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != catalog.App(catalog.Blog, true) {
			t.Error("Expected App.tsx to contain exactly the blog TSX blob")
		}
	})
}
