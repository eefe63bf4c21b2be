package pm

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	t.Run("known managers", func(t *testing.T) {
		for _, name := range []string{"npm", "pnpm", "yarn", "bun", "NPM", " yarn "} {
			if _, err := Parse(name); err != nil {
				t.Errorf("Expected %q to parse, got: %v", name, err)
			}
		}
	})

	t.Run("unknown manager", func(t *testing.T) {
		if _, err := Parse("cargo"); err == nil {
			t.Error("Expected error for unknown manager")
		}
	})
}

func TestDetect(t *testing.T) {
	tests := []struct {
		agent string
		want  Manager
	}{
		{"", Npm},
		{"npm/10.2.4 node/v20.11.0 linux x64", Npm},
		{"pnpm/9.1.0 npm/? node/v20.11.0 linux x64", Pnpm},
		{"yarn/1.22.22 npm/? node/v20.11.0 linux x64", Yarn},
		{"bun/1.1.8 npm/? node/v20.11.0 linux x64", Bun},
	}
	for _, tt := range tests {
		t.Run("agent "+tt.agent, func(t *testing.T) {
			t.Setenv("npm_config_user_agent", tt.agent)
			if got := Detect(); got != tt.want {
				t.Errorf("Detect() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCreateVite(t *testing.T) {
	t.Run("npm forwards flags past npm itself", func(t *testing.T) {
		name, args := Npm.CreateVite("my-app", "react")
		if name != "npm" {
			t.Errorf("Expected npm, got %s", name)
		}
		joined := strings.Join(args, " ")
		if joined != "create vite@latest my-app -- --template react" {
			t.Errorf("Unexpected npm args: %s", joined)
		}
	})

	t.Run("pnpm", func(t *testing.T) {
		name, args := Pnpm.CreateVite(".", "react-ts")
		if name != "pnpm" {
			t.Errorf("Expected pnpm, got %s", name)
		}
		joined := strings.Join(args, " ")
		if joined != "create vite . --template react-ts" {
			t.Errorf("Unexpected pnpm args: %s", joined)
		}
	})
}

func TestAddAndInstall(t *testing.T) {
	t.Run("add packages", func(t *testing.T) {
		name, args := Npm.Add("tailwindcss", "@tailwindcss/vite")
		if name != "npm" || strings.Join(args, " ") != "install tailwindcss @tailwindcss/vite" {
			t.Errorf("Unexpected npm add command: %s %v", name, args)
		}

		name, args = Bun.Add("tailwindcss")
		if name != "bun" || strings.Join(args, " ") != "add tailwindcss" {
			t.Errorf("Unexpected bun add command: %s %v", name, args)
		}
	})

	t.Run("bulk install", func(t *testing.T) {
		name, args := Yarn.Install()
		if name != "yarn" || len(args) != 0 {
			t.Errorf("Unexpected yarn install command: %s %v", name, args)
		}

		name, args = Npm.Install()
		if name != "npm" || strings.Join(args, " ") != "install" {
			t.Errorf("Unexpected npm install command: %s %v", name, args)
		}
	})
}

func TestRun(t *testing.T) {
	if got := Npm.Run("dev"); got != "npm run dev" {
		t.Errorf("Expected npm run dev, got %q", got)
	}
	if got := Yarn.Run("build"); got != "yarn build" {
		t.Errorf("Expected yarn build, got %q", got)
	}
}
