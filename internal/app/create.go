// Package app orchestrates the project materialization workflow: validate,
// resolve the target, run the external generator, patch in Tailwind and the
// selected template, then install dependencies. Stages run strictly in
// order; the first failure aborts the rest. No rollback is attempted.
package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/Justinkarso/create-revite/internal/catalog"
	"github.com/Justinkarso/create-revite/internal/debug"
	"github.com/Justinkarso/create-revite/internal/execx"
	"github.com/Justinkarso/create-revite/internal/patch"
	"github.com/Justinkarso/create-revite/internal/pm"
	"github.com/Justinkarso/create-revite/internal/target"
)

// Reporter receives stage lifecycle events so the materialization logic
// stays presentation-agnostic.
type Reporter interface {
	Start(stage string)
	Succeed(stage string)
	Fail(stage string)
}

// ConfirmFunc asks the user a yes/no question and reports the answer.
type ConfirmFunc func(question string) (bool, error)

// CreateOptions contains options for project creation.
type CreateOptions struct {
	// Dir is the raw positional directory argument ("" or "." for cwd).
	Dir string
	// TypeScript selects the statically-typed project variant.
	TypeScript bool
	// Tailwind enables the CSS framework patch stage.
	Tailwind bool
	// Template selects the App component written into the project.
	Template catalog.TemplateID
	// PackageManager runs the generator, adds, and installs.
	PackageManager pm.Manager
	// Runner invokes external commands.
	Runner execx.Runner
	// Reporter receives stage progress events.
	Reporter Reporter
	// Confirm asks for permission to use a non-empty directory.
	Confirm ConfirmFunc
}

// CreateResult contains the results of project creation.
type CreateResult struct {
	// Path is the directory the project was generated into.
	Path string
	// ProjectName is the package name derived from the directory.
	ProjectName string
	// UseCurrentDirectory is true when the project landed in the cwd.
	UseCurrentDirectory bool
}

// nopReporter discards stage events.
type nopReporter struct{}

func (nopReporter) Start(string)   {}
func (nopReporter) Succeed(string) {}
func (nopReporter) Fail(string)    {}

// Create materializes a project according to opts. Returns ErrCancelled
// (wrapped) when the user declines the non-empty-directory confirmation.
func Create(ctx context.Context, opts CreateOptions) (*CreateResult, error) {
	debug.DebugSection("[app] Create workflow start")
	debug.DebugValue("[app] Dir", opts.Dir)
	debug.DebugValue("[app] TypeScript", opts.TypeScript)
	debug.DebugValue("[app] Tailwind", opts.Tailwind)
	debug.DebugValue("[app] Template", opts.Template)
	debug.DebugValue("[app] PackageManager", opts.PackageManager)

	if opts.Reporter == nil {
		opts.Reporter = nopReporter{}
	}

	// Stage 1: validate options before any side effects.
	if !catalog.Valid(opts.Template) {
		return nil, NewValidationError(
			fmt.Sprintf("unknown template %q (available: %v)", opts.Template, catalog.IDs()), nil)
	}
	if opts.Runner == nil {
		return nil, NewValidationError("no process runner configured", nil)
	}

	// Stage 2: resolve the target directory.
	resolved, err := target.Resolve(opts.Dir)
	if err != nil {
		return nil, classifyTargetError(err)
	}
	debug.DebugValue("[app] Target", resolved.AbsolutePath)

	if resolved.UseCurrentDirectory {
		visible, err := target.NonHiddenEntries(resolved.AbsolutePath)
		if err != nil {
			return nil, NewValidationError("failed to inspect current directory", err)
		}
		if len(visible) > 0 {
			if opts.Confirm == nil {
				return nil, NewValidationError("current directory is not empty", nil)
			}
			ok, err := opts.Confirm("Current directory is not empty. Continue anyway?")
			if err != nil {
				return nil, fmt.Errorf("confirmation prompt failed: %w", err)
			}
			if !ok {
				return nil, ErrCancelled
			}
		}
	}

	// Stage 3: run the external generator in the parent of the target so it
	// creates and populates the target itself.
	viteTemplate := "react"
	if opts.TypeScript {
		viteTemplate = "react-ts"
	}
	genTarget := resolved.ProjectName
	genDir := filepath.Dir(resolved.AbsolutePath)
	if resolved.UseCurrentDirectory {
		genTarget = target.CurrentDirSentinel
		genDir = resolved.AbsolutePath
	}

	stage := "Scaffolding project with Vite"
	opts.Reporter.Start(stage)
	name, args := opts.PackageManager.CreateVite(genTarget, viteTemplate)
	if err := opts.Runner.Run(ctx, genDir, name, args...); err != nil {
		opts.Reporter.Fail(stage)
		return nil, NewGeneratorError("project generation failed", err)
	}
	opts.Reporter.Succeed(stage)

	// Stage 4: wire in Tailwind and the selected App template.
	if opts.Tailwind {
		stage = "Adding Tailwind CSS"
		opts.Reporter.Start(stage)
		name, args := opts.PackageManager.Add(patch.Packages...)
		if err := opts.Runner.Run(ctx, resolved.AbsolutePath, name, args...); err != nil {
			opts.Reporter.Fail(stage)
			return nil, NewPatchError("failed to add Tailwind packages", err)
		}
		if err := patch.ViteConfig(resolved.AbsolutePath, opts.TypeScript); err != nil {
			opts.Reporter.Fail(stage)
			return nil, NewPatchError("failed to patch vite config", err)
		}
		if err := patch.Stylesheet(resolved.AbsolutePath); err != nil {
			opts.Reporter.Fail(stage)
			return nil, NewPatchError("failed to write stylesheet", err)
		}
		if err := patch.AppComponent(resolved.AbsolutePath, opts.TypeScript, opts.Template); err != nil {
			opts.Reporter.Fail(stage)
			return nil, NewPatchError("failed to write App component", err)
		}
		opts.Reporter.Succeed(stage)
	}

	// Stage 5: bulk install.
	stage = "Installing dependencies"
	opts.Reporter.Start(stage)
	name, args = opts.PackageManager.Install()
	if err := opts.Runner.Run(ctx, resolved.AbsolutePath, name, args...); err != nil {
		opts.Reporter.Fail(stage)
		return nil, NewInstallError("dependency installation failed", err)
	}
	opts.Reporter.Succeed(stage)

	debug.Debug("[app] Create workflow completed")

	return &CreateResult{
		Path:                resolved.AbsolutePath,
		ProjectName:         resolved.ProjectName,
		UseCurrentDirectory: resolved.UseCurrentDirectory,
	}, nil
}

// classifyTargetError maps resolver errors onto the app error taxonomy.
func classifyTargetError(err error) error {
	switch err.(type) {
	case *target.InvalidNameError:
		return NewValidationError("invalid project name", err)
	case *target.ExistsError:
		return NewTargetConflictError("target directory already exists", err)
	}
	return NewValidationError("failed to resolve target", err)
}
