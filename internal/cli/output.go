package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
)

// colorEnabled reports whether output should carry ANSI colors. Color is off
// under --no-color and whenever stdout is not a terminal.
func colorEnabled() bool {
	if globalNoColor {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Output formatting helpers

// printInfo prints an informational message
func printInfo(msg string) {
	if globalQuiet {
		return
	}
	fmt.Println(msg)
}

// printSuccess prints a success message
func printSuccess(msg string) {
	if globalQuiet {
		return
	}
	if colorEnabled() {
		fmt.Printf("%s✓%s %s\n", colorGreen, colorReset, msg)
	} else {
		fmt.Printf("✓ %s\n", msg)
	}
}

// printWarning prints a warning message
func printWarning(msg string) {
	if globalQuiet {
		return
	}
	if colorEnabled() {
		fmt.Printf("%s⚠%s %s\n", colorYellow, colorReset, msg)
	} else {
		fmt.Printf("⚠ %s\n", msg)
	}
}

// printErrorMsg prints an error message to stderr
func printErrorMsg(msg string) {
	if colorEnabled() {
		fmt.Fprintf(os.Stderr, "%s✗%s %s\n", colorRed, colorReset, msg)
	} else {
		fmt.Fprintf(os.Stderr, "✗ %s\n", msg)
	}
}

// printProgress prints a progress indicator for a starting stage
func printProgress(msg string) {
	if globalQuiet {
		return
	}
	if colorEnabled() {
		fmt.Printf("%s→%s %s\n", colorBlue, colorReset, msg)
	} else {
		fmt.Printf("→ %s\n", msg)
	}
}

// printCommand prints a follow-up command suggestion
func printCommand(cmd string) {
	if globalQuiet {
		return
	}
	if colorEnabled() {
		fmt.Printf("  %s%s%s\n", colorCyan, cmd, colorReset)
	} else {
		fmt.Printf("  %s\n", cmd)
	}
}
