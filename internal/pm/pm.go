// Package pm maps a package manager choice to the concrete command lines the
// materialization workflow shells out with.
package pm

import (
	"fmt"
	"os"
	"strings"
)

// Manager identifies a JavaScript package manager.
type Manager string

const (
	Npm  Manager = "npm"
	Pnpm Manager = "pnpm"
	Yarn Manager = "yarn"
	Bun  Manager = "bun"
)

// Managers lists the supported package managers.
func Managers() []Manager {
	return []Manager{Npm, Pnpm, Yarn, Bun}
}

// Parse converts a user-supplied string into a Manager.
func Parse(s string) (Manager, error) {
	m := Manager(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case Npm, Pnpm, Yarn, Bun:
		return m, nil
	}
	return "", fmt.Errorf("unknown package manager %q (supported: npm, pnpm, yarn, bun)", s)
}

// Detect infers the running package manager from npm_config_user_agent,
// which every manager sets when it executes a "create" script. Falls back
// to npm when the variable is absent or unrecognized.
func Detect() Manager {
	agent := os.Getenv("npm_config_user_agent")
	for _, m := range []Manager{Pnpm, Yarn, Bun} {
		if strings.HasPrefix(agent, string(m)+"/") {
			return m
		}
	}
	return Npm
}

// CreateVite returns the command that scaffolds a Vite project into target
// with the given create-vite template (e.g. "react", "react-ts").
func (m Manager) CreateVite(target, template string) (string, []string) {
	switch m {
	case Pnpm:
		return "pnpm", []string{"create", "vite", target, "--template", template}
	case Yarn:
		return "yarn", []string{"create", "vite", target, "--template", template}
	case Bun:
		return "bun", []string{"create", "vite", target, "--template", template}
	default:
		// npm needs "--" so the flags reach create-vite instead of npm itself.
		return "npm", []string{"create", "vite@latest", target, "--", "--template", template}
	}
}

// Add returns the command that adds the named packages to the project.
func (m Manager) Add(pkgs ...string) (string, []string) {
	switch m {
	case Pnpm:
		return "pnpm", append([]string{"add"}, pkgs...)
	case Yarn:
		return "yarn", append([]string{"add"}, pkgs...)
	case Bun:
		return "bun", append([]string{"add"}, pkgs...)
	default:
		return "npm", append([]string{"install"}, pkgs...)
	}
}

// Install returns the bulk dependency install command.
func (m Manager) Install() (string, []string) {
	switch m {
	case Yarn:
		return "yarn", nil
	case Pnpm:
		return "pnpm", []string{"install"}
	case Bun:
		return "bun", []string{"install"}
	default:
		return "npm", []string{"install"}
	}
}

// Run returns the command prefix for a package.json script, used in the
// post-generation summary (e.g. "npm run dev").
func (m Manager) Run(script string) string {
	switch m {
	case Yarn:
		return "yarn " + script
	case Pnpm:
		return "pnpm " + script
	case Bun:
		return "bun run " + script
	default:
		return "npm run " + script
	}
}
