package subject

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/specialistvlad/battlesched/internal/ctxlog"
	"github.com/specialistvlad/battlesched/internal/scheduler"
)

// Subject runs the scheduler under test against one dataset.
type Subject interface {
	// Measure runs the subject on datasetPath and returns the wall-clock
	// time between launch and completion.
	Measure(ctx context.Context, datasetPath string) (time.Duration, error)
	// Name is a short label used in reports.
	Name() string
}

// Process runs an external program as "Launcher... Path <dataset>". Its
// standard streams are connected to the null device.
type Process struct {
	Path     string
	Launcher []string // optional interpreter prefix, e.g. ["python3"]
}

// Name returns the base name of the program under test.
func (p *Process) Name() string {
	return filepath.Base(p.Path)
}

func (p *Process) command(ctx context.Context, datasetPath string) *exec.Cmd {
	path := p.Path
	// A bare name is a file in the working directory, not a $PATH lookup.
	if len(p.Launcher) == 0 && !strings.ContainsRune(path, '/') && !strings.ContainsRune(path, filepath.Separator) {
		path = "." + string(filepath.Separator) + path
	}
	argv := make([]string, 0, len(p.Launcher)+2)
	argv = append(argv, p.Launcher...)
	argv = append(argv, path, datasetPath)
	return exec.CommandContext(ctx, argv[0], argv[1:]...)
}

// Measure launches the program and waits for it to exit. Only a failure to
// start the process, or cancellation of ctx, is reported as an error.
func (p *Process) Measure(ctx context.Context, datasetPath string) (time.Duration, error) {
	logger := ctxlog.FromContext(ctx)
	cmd := p.command(ctx, datasetPath)

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("failed to launch %s: %w", cmd.Path, err)
	}
	err := cmd.Wait()
	elapsed := time.Since(start)

	if err != nil {
		if ctx.Err() != nil {
			return elapsed, ctx.Err()
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return elapsed, fmt.Errorf("failed waiting for %s: %w", cmd.Path, err)
		}
		logger.Debug("Subject exited with an error; timing kept.", "dataset", datasetPath, "exit_code", exitErr.ExitCode())
	}
	return elapsed, nil
}

// InProcess runs the scheduler package in the current process, discarding
// its output.
type InProcess struct{}

// Name implements Subject.
func (InProcess) Name() string {
	return "in-process"
}

// Measure implements Subject. Scheduler errors are returned.
func (InProcess) Measure(ctx context.Context, datasetPath string) (time.Duration, error) {
	start := time.Now()
	_, err := scheduler.Run(ctx, io.Discard, datasetPath)
	return time.Since(start), err
}

// Func adapts an ordinary function to the Subject interface.
type Func func(ctx context.Context, datasetPath string) (time.Duration, error)

// Name implements Subject.
func (f Func) Name() string {
	return "func"
}

// Measure implements Subject.
func (f Func) Measure(ctx context.Context, datasetPath string) (time.Duration, error) {
	return f(ctx, datasetPath)
}
