// Package runner executes exercises from the catalogue and logs their steps
// the way the original demonstration script did: one "Label: value" line per
// input and result, in catalogue order.
package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/born-ml/numtasks/backend/cpu"
	"github.com/born-ml/numtasks/internal/logging"
	"github.com/born-ml/numtasks/internal/npy"
	"github.com/born-ml/numtasks/internal/report"
	"github.com/born-ml/numtasks/internal/tasks"
)

// Runner executes tasks on a shared CPU backend.
type Runner struct {
	logger  *log.Logger
	backend *cpu.Backend
	workers int
	saveDir string
}

// Option configures a Runner.
type Option func(*Runner)

// WithWorkers bounds how many exercises run at once. Values below 1 mean 1.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		r.workers = max(n, 1)
	}
}

// WithBackend replaces the default parallel CPU backend.
func WithBackend(b *cpu.Backend) Option {
	return func(r *Runner) {
		r.backend = b
	}
}

// WithSaveDir writes every array a step produces to dir as a .npy file
// named <id>_<name>_<step>.npy.
func WithSaveDir(dir string) Option {
	return func(r *Runner) {
		r.saveDir = dir
	}
}

// New creates a Runner that logs to logger and runs one exercise at a time.
// A nil logger discards output.
func New(logger *log.Logger, opts ...Option) *Runner {
	if logger == nil {
		logger = logging.Discard()
	}
	r := &Runner{
		logger:  logger,
		backend: cpu.New(),
		workers: 1,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes ts and returns their results in the order given. A failing or
// panicking exercise is recorded in its Result and does not stop the others.
// Cancelling ctx stops scheduling; the partial report is returned together
// with ctx.Err().
func (r *Runner) Run(ctx context.Context, ts []tasks.Task) (*report.Report, error) {
	rep := &report.Report{
		RunID:     uuid.New().String(),
		StartedAt: time.Now(),
	}
	if r.saveDir != "" {
		if err := os.MkdirAll(r.saveDir, 0o750); err != nil {
			return rep, fmt.Errorf("create save dir: %w", err)
		}
	}
	r.logger.Debug("run started", "run_id", rep.RunID, "tasks", len(ts), "workers", r.workers)

	results := make([]report.Result, len(ts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	scheduled := 0
	for i, t := range ts {
		if gctx.Err() != nil {
			break
		}
		scheduled++
		g.Go(func() error {
			results[i] = r.runTask(t)
			return nil
		})
	}
	_ = g.Wait()

	rep.Results = results[:scheduled]
	rep.Duration = time.Since(rep.StartedAt)

	for _, res := range rep.Results {
		r.logResult(res)
	}

	if err := ctx.Err(); err != nil {
		r.logger.Warn("run interrupted", "run_id", rep.RunID, "completed", scheduled, "total", len(ts))
		return rep, err
	}
	r.logger.Debug("run finished", "run_id", rep.RunID, "failed", rep.Failed(), "duration", rep.Duration)
	return rep, nil
}

func (r *Runner) runTask(t tasks.Task) (res report.Result) {
	res = report.Result{
		TaskID:   t.ID,
		Name:     t.Name,
		Category: string(t.Category),
	}
	start := time.Now()
	defer func() {
		res.Duration = time.Since(start)
		if p := recover(); p != nil {
			res.Steps = nil
			res.Error = fmt.Sprintf("panic: %v", p)
			r.logger.Debug("task panicked", "task", t.Name, "stack", string(debug.Stack()))
		}
	}()

	if t.Run == nil {
		res.Error = "task has no implementation"
		return res
	}
	steps, err := t.Run(r.backend)
	res.Steps = steps
	if err != nil {
		res.Error = err.Error()
		return res
	}
	if r.saveDir != "" {
		files, err := r.save(t, steps)
		res.Files = files
		if err != nil {
			res.Error = err.Error()
		}
	}
	return res
}

func (r *Runner) save(t tasks.Task, steps []tasks.Step) ([]string, error) {
	var files []string
	for i, s := range steps {
		if s.Array == nil {
			continue
		}
		path := filepath.Join(r.saveDir, fmt.Sprintf("%02d_%s_%d.npy", t.ID, t.Name, i))
		if err := npy.Save(path, s.Array); err != nil {
			return files, fmt.Errorf("save step %d: %w", i, err)
		}
		files = append(files, path)
	}
	return files, nil
}

func (r *Runner) logResult(res report.Result) {
	r.logger.Debug("task", "id", res.TaskID, "name", res.Name, "duration", res.Duration)
	for _, s := range res.Steps {
		r.logger.Info(s.Label + ": " + s.Value)
	}
	if !res.OK() {
		r.logger.Error("task failed", "id", res.TaskID, "name", res.Name, "err", res.Error)
	}
}
