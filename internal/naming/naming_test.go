package naming

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	t.Run("valid simple name", func(t *testing.T) {
		result := Validate("my-app")
		if !result.Valid {
			t.Errorf("Expected my-app to be valid, got errors: %v", result.Errors)
		}
		if len(result.Errors) != 0 {
			t.Errorf("Expected no errors, got: %v", result.Errors)
		}
		if len(result.Warnings) != 0 {
			t.Errorf("Expected no warnings, got: %v", result.Warnings)
		}
	})

	t.Run("valid names", func(t *testing.T) {
		names := []string{"app", "my-app", "my.app", "my_app", "app2", "a"}
		for _, name := range names {
			if result := Validate(name); !result.Valid {
				t.Errorf("Expected %q to be valid, got errors: %v", name, result.Errors)
			}
		}
	})

	t.Run("empty name", func(t *testing.T) {
		result := Validate("")
		if result.Valid {
			t.Error("Expected empty name to be invalid")
		}
		if len(result.Errors) == 0 {
			t.Error("Expected at least one error for empty name")
		}
	})

	t.Run("capital letters", func(t *testing.T) {
		result := Validate("MyApp")
		if result.Valid {
			t.Error("Expected MyApp to be invalid")
		}
		if !containsSubstring(result.Errors, "capital") {
			t.Errorf("Expected capital-letter error, got: %v", result.Errors)
		}
	})

	t.Run("leading period", func(t *testing.T) {
		result := Validate(".app")
		if result.Valid {
			t.Error("Expected .app to be invalid")
		}
		if !containsSubstring(result.Errors, "period") {
			t.Errorf("Expected period error, got: %v", result.Errors)
		}
	})

	t.Run("leading underscore", func(t *testing.T) {
		result := Validate("_app")
		if result.Valid {
			t.Error("Expected _app to be invalid")
		}
	})

	t.Run("spaces in name", func(t *testing.T) {
		result := Validate("my app")
		if result.Valid {
			t.Error("Expected name with spaces to be invalid")
		}
	})

	t.Run("uppercase and spaces reports multiple errors", func(t *testing.T) {
		result := Validate("My App")
		if result.Valid {
			t.Error("Expected invalid result")
		}
		if len(result.Errors) < 1 {
			t.Error("Expected at least one error")
		}
	})

	t.Run("special characters", func(t *testing.T) {
		for _, name := range []string{"my~app", "my)app", "my('app", "my!app", "my*app", "my/app"} {
			if result := Validate(name); result.Valid {
				t.Errorf("Expected %q to be invalid", name)
			}
		}
	})

	t.Run("name too long", func(t *testing.T) {
		result := Validate(strings.Repeat("a", MaxNameLength+1))
		if result.Valid {
			t.Error("Expected over-length name to be invalid")
		}
	})

	t.Run("name at length limit", func(t *testing.T) {
		result := Validate(strings.Repeat("a", MaxNameLength))
		if !result.Valid {
			t.Errorf("Expected name at limit to be valid, got: %v", result.Errors)
		}
	})

	t.Run("reserved names", func(t *testing.T) {
		for _, name := range []string{"node_modules", "favicon.ico"} {
			if result := Validate(name); result.Valid {
				t.Errorf("Expected reserved name %q to be invalid", name)
			}
		}
	})

	t.Run("core module name warns but is valid", func(t *testing.T) {
		result := Validate("http")
		if !result.Valid {
			t.Errorf("Expected http to be valid, got errors: %v", result.Errors)
		}
		if len(result.Warnings) == 0 {
			t.Error("Expected a warning for core module name")
		}
	})
}

func containsSubstring(msgs []string, sub string) bool {
	for _, m := range msgs {
		if strings.Contains(m, sub) {
			return true
		}
	}
	return false
}
