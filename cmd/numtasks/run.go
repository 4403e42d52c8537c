package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/born-ml/numtasks/internal/report"
	"github.com/born-ml/numtasks/internal/runner"
	"github.com/born-ml/numtasks/internal/tasks"
)

func newRunCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run exercises and report their results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd)
		},
	}

	f := cmd.Flags()
	f.IntSlice("tasks", nil, "exercise IDs to run (default all)")
	f.StringSlice("category", nil, "only run exercises in these categories")
	f.StringP("output", "o", "text", "report format: text, json, yaml")
	f.IntP("workers", "w", 1, "exercises to run concurrently")
	f.Bool("parallel", true, "split large element-wise loops across goroutines")
	f.String("save-dir", "", "write every result array to this directory as .npy")
	return cmd
}

func (a *app) run(cmd *cobra.Command) error {
	format, err := report.ParseFormat(a.cfg.Run.Output)
	if err != nil {
		return err
	}
	categories := make([]tasks.Category, len(a.cfg.Run.Categories))
	for i, c := range a.cfg.Run.Categories {
		categories[i] = tasks.Category(c)
	}
	selected, err := tasks.Filter(a.cfg.Run.Tasks, categories)
	if err != nil {
		return err
	}

	logger, closeLog, err := a.logger(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	r := runner.New(logger,
		runner.WithWorkers(a.cfg.Run.Workers),
		runner.WithBackend(a.backend()),
		runner.WithSaveDir(a.cfg.Run.SaveDir),
	)
	rep, runErr := r.Run(cmd.Context(), selected)
	if err := report.Render(cmd.OutOrStdout(), rep, format); err != nil {
		return err
	}
	if runErr != nil {
		return runErr
	}
	if n := rep.Failed(); n > 0 {
		return &ExitError{Code: 2, Err: fmt.Errorf("%d of %d tasks failed", n, len(rep.Results))}
	}
	return nil
}
