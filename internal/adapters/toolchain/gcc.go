// Package toolchain invokes the compiler and linker processes.
package toolchain

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/goldbuild/gold/internal/core/domain"
	"github.com/goldbuild/gold/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultCompiler is used when the manifest does not name one.
const DefaultCompiler = "gcc"

// archiver produces static library archives.
const archiver = "ar"

var _ ports.Toolchain = (*GCC)(nil)

// GCC implements ports.Toolchain for gcc-compatible compiler drivers, with
// ar for static archives.
type GCC struct {
	logger ports.Logger
}

// NewGCC creates a new GCC toolchain adapter.
func NewGCC(logger ports.Logger) *GCC {
	return &GCC{logger: logger}
}

// Invoke runs the toolchain process for the given action and returns its
// combined output as diagnostics.
func (g *GCC) Invoke(ctx context.Context, action *domain.Action) (string, error) {
	argv := Argv(action)
	g.logger.Info("exec", "command", strings.Join(argv, " "))

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // argv is derived from the manifest
	out, err := cmd.CombinedOutput()
	diagnostics := string(out)
	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		invokeErr := domain.Annotate(domain.ErrToolchainInvocation, "action", action.ID())
		invokeErr = zerr.With(invokeErr, "exit_code", exitCode)
		return diagnostics, zerr.With(invokeErr, "cause", err.Error())
	}
	return diagnostics, nil
}

// Argv builds the process argument vector for an action, following the
// conventional gcc/ar command shapes.
func Argv(a *domain.Action) []string {
	compiler := a.Compiler
	if compiler == "" {
		compiler = DefaultCompiler
	}

	if a.Kind == domain.ActionCompile {
		args := []string{compiler}
		if a.TargetKind == domain.SharedLib {
			args = append(args, "-fPIC")
		}
		args = append(args, "-c", a.Source)
		args = append(args, a.Flags...)
		return append(args, "-o", a.Output)
	}

	switch a.TargetKind {
	case domain.StaticLib:
		args := []string{archiver, "rcs", a.Output}
		return append(args, a.Inputs...)
	case domain.SharedLib:
		args := append([]string{compiler}, a.Flags...)
		args = append(args, a.Inputs...)
		return append(args, "-shared", "-fPIC", "-o", a.Output)
	default:
		args := append([]string{compiler}, a.Flags...)
		args = append(args, a.Inputs...)
		args = append(args, "-o", a.Output)
		for _, lib := range a.SysLibs {
			args = append(args, "-l"+lib)
		}
		return args
	}
}
