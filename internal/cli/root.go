// Package cli wires the cobra command surface to the materialization
// workflow.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Justinkarso/create-revite/internal/app"
	"github.com/Justinkarso/create-revite/internal/catalog"
	"github.com/Justinkarso/create-revite/internal/config"
	"github.com/Justinkarso/create-revite/internal/debug"
	"github.com/Justinkarso/create-revite/internal/execx"
	"github.com/Justinkarso/create-revite/internal/pm"
)

// Global flags
var (
	globalNoColor bool
	globalQuiet   bool
	globalDebug   bool
)

// Create command flags
var (
	flagTypeScript bool
	flagNoTailwind bool
	flagTemplate   string
	flagPM         string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "create-revite [directory]",
	Short: "Scaffold a React + Vite + Tailwind project",
	Long: `create-revite scaffolds a React project with Vite and wires in
Tailwind CSS and an App template of your choice.

It runs your package manager's create-vite under the hood, patches the
generated build config, and installs dependencies, so the project is ready
to run when the command finishes.

Examples:
  create-revite my-app
  create-revite my-app -ts
  create-revite my-app --template dashboard
  create-revite . --no-tailwind`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug.SetDebug(globalDebug)
		debug.SetNoColor(globalNoColor)
	},
	RunE: runCreate,
}

// Execute parses arguments and runs the root command. This is called by
// main.main().
func Execute() {
	rootCmd.SetArgs(expandShortFlags(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		printCreateError(err)
		os.Exit(1)
	}
}

// expandShortFlags rewrites the historical "-ts" alias, which cobra cannot
// register because shorthands are single characters.
func expandShortFlags(args []string) []string {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "-ts" {
			out = append(out, "--typescript")
			continue
		}
		out = append(out, arg)
	}
	return out
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, "quiet", "q", false, "Suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&globalDebug, "debug", false, "Enable debug logging")

	// Create flags
	rootCmd.Flags().BoolVar(&flagTypeScript, "typescript", false, "Use the TypeScript project variant (alias: -ts)")
	rootCmd.Flags().BoolVar(&flagNoTailwind, "no-tailwind", false, "Skip Tailwind CSS setup")
	rootCmd.Flags().StringVarP(&flagTemplate, "template", "t", string(catalog.Basic),
		fmt.Sprintf("App template to use %v", catalog.IDs()))
	rootCmd.Flags().StringVar(&flagPM, "pm", "", "Package manager to use (npm, pnpm, yarn, bun)")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	dir := ""
	if len(args) > 0 {
		dir = args[0]
	}

	opts, manager, err := buildOptions(cmd, dir)
	if err != nil {
		return err
	}

	result, err := app.Create(cmd.Context(), opts)
	if err != nil {
		if errors.Is(err, app.ErrCancelled) {
			printInfo("Cancelled. No changes were made.")
			return nil
		}
		return err
	}

	printInfo("")
	printSuccess(fmt.Sprintf("Created %s at %s", result.ProjectName, result.Path))
	printInfo("")
	printInfo("Next steps:")
	if !result.UseCurrentDirectory {
		printCommand("cd " + result.ProjectName)
	}
	printCommand(manager.Run("dev"))
	printCommand(manager.Run("build"))
	printCommand(manager.Run("preview"))
	return nil
}

// buildOptions merges flags with the user's defaults file. Explicit flags
// always win over file values.
func buildOptions(cmd *cobra.Command, dir string) (app.CreateOptions, pm.Manager, error) {
	cfg := &config.Config{}
	configPath, err := config.Path()
	if err == nil {
		cfg, err = config.Load(configPath)
		if err != nil {
			return app.CreateOptions{}, "", fmt.Errorf("failed to load defaults: %w", err)
		}
	}

	typescript := flagTypeScript
	if !cmd.Flags().Changed("typescript") && cfg.Defaults.TypeScript {
		typescript = true
	}

	tailwind := !flagNoTailwind
	if !cmd.Flags().Changed("no-tailwind") {
		tailwind = cfg.Defaults.TailwindEnabled()
	}

	template := catalog.TemplateID(flagTemplate)
	if !cmd.Flags().Changed("template") && cfg.Defaults.Template != "" {
		template = catalog.TemplateID(cfg.Defaults.Template)
	}

	manager := pm.Detect()
	if cfg.PackageManager != "" {
		m, err := pm.Parse(cfg.PackageManager)
		if err != nil {
			return app.CreateOptions{}, "", fmt.Errorf("invalid package_manager in %s: %w", configPath, err)
		}
		manager = m
	}
	if flagPM != "" {
		m, err := pm.Parse(flagPM)
		if err != nil {
			return app.CreateOptions{}, "", err
		}
		manager = m
	}

	debug.DebugValue("[cli] TypeScript", typescript)
	debug.DebugValue("[cli] Tailwind", tailwind)
	debug.DebugValue("[cli] Template", template)
	debug.DebugValue("[cli] PackageManager", manager)

	return app.CreateOptions{
		Dir:            dir,
		TypeScript:     typescript,
		Tailwind:       tailwind,
		Template:       template,
		PackageManager: manager,
		Runner:         execx.ExecRunner{},
		Reporter:       stageReporter{},
		Confirm:        confirm,
	}, manager, nil
}

// printCreateError prints the top-level failure with its fixed prefix.
func printCreateError(err error) {
	if colorEnabled() {
		fmt.Fprintf(os.Stderr, "%sError creating project:%s %v\n", colorRed, colorReset, err)
	} else {
		fmt.Fprintf(os.Stderr, "Error creating project: %v\n", err)
	}
}
