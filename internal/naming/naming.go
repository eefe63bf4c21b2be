// Package naming validates candidate project directory names against npm
// package naming rules, since the generated project's package.json takes its
// name from the directory.
package naming

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxNameLength is the npm registry's package name length limit.
const MaxNameLength = 214

// ValidationResult reports whether a name is acceptable, with human-readable
// messages. Errors make the name unusable; warnings are advisory only.
type ValidationResult struct {
	// Valid is true when the name produced no errors.
	Valid bool
	// Errors lists the rule violations, in the order they were detected.
	Errors []string
	// Warnings lists advisory issues that do not block the name.
	Warnings []string
}

// namePattern matches names built from URL-safe lowercase characters.
var namePattern = regexp.MustCompile(`^[a-z0-9-._]+$`)

// reservedNames can never be used as a package name.
var reservedNames = map[string]bool{
	"node_modules": true,
	"favicon.ico":  true,
}

// coreModules are Node.js built-in module names. Shadowing one is allowed but
// discouraged, so it surfaces as a warning.
var coreModules = map[string]bool{
	"assert": true, "buffer": true, "child_process": true, "cluster": true,
	"console": true, "constants": true, "crypto": true, "dgram": true,
	"dns": true, "domain": true, "events": true, "fs": true, "http": true,
	"https": true, "module": true, "net": true, "os": true, "path": true,
	"process": true, "punycode": true, "querystring": true, "readline": true,
	"repl": true, "stream": true, "string_decoder": true, "timers": true,
	"tls": true, "tty": true, "url": true, "util": true, "v8": true,
	"vm": true, "zlib": true,
}

// Validate checks a candidate directory name against npm package naming rules.
func Validate(name string) ValidationResult {
	var result ValidationResult

	if name == "" {
		result.Errors = append(result.Errors, "name cannot be empty")
		return result
	}

	if strings.TrimSpace(name) != name {
		result.Errors = append(result.Errors, "name cannot contain leading or trailing spaces")
	}

	if strings.HasPrefix(name, ".") {
		result.Errors = append(result.Errors, "name cannot start with a period")
	}
	if strings.HasPrefix(name, "_") {
		result.Errors = append(result.Errors, "name cannot start with an underscore")
	}

	if len(name) > MaxNameLength {
		result.Errors = append(result.Errors, fmt.Sprintf("name cannot contain more than %d characters", MaxNameLength))
	}

	if name != strings.ToLower(name) {
		result.Errors = append(result.Errors, "name cannot contain capital letters")
	} else if strings.TrimSpace(name) == name && !strings.HasPrefix(name, ".") && !strings.HasPrefix(name, "_") {
		if !namePattern.MatchString(name) {
			result.Errors = append(result.Errors, "name can only contain URL-friendly characters (lowercase letters, digits, hyphens, periods, and underscores)")
		}
	}

	if reservedNames[name] {
		result.Errors = append(result.Errors, fmt.Sprintf("%s is a reserved name", name))
	}

	if coreModules[name] {
		result.Warnings = append(result.Warnings, fmt.Sprintf("%s is the name of a Node.js core module", name))
	}

	result.Valid = len(result.Errors) == 0
	return result
}
