package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/born-ml/numtasks/backend/cpu"
	"github.com/born-ml/numtasks/internal/config"
	"github.com/born-ml/numtasks/internal/logging"
)

// flagKeys maps command line flags to config keys. Only flags defined on the
// executing command are bound.
var flagKeys = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
	"log-file":   "log.file",
	"workers":    "run.workers",
	"tasks":      "run.tasks",
	"category":   "run.categories",
	"output":     "run.output",
	"parallel":   "run.parallel",
	"save-dir":   "run.save_dir",
}

// app carries state shared by subcommands for a single invocation.
type app struct {
	cfgFile string
	cfg     *config.Config
}

func newRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "numtasks",
		Short: "Run a catalogue of small array exercises",
		Long: TitleStyle.Render("numtasks") + SubtitleStyle.Render(" - array exercises with logged results") + `

Each exercise builds or transforms an N-dimensional array and logs the
input followed by the result, one "Label: value" line each.

` + SubtitleStyle.Render("Examples:") + `
  numtasks list                    List all exercises
  numtasks run                     Run every exercise
  numtasks run --category set      Run the set operation exercises
  numtasks run -o json --tasks 1,2 Run two exercises, JSON report
  numtasks show checkerboard       Run one exercise and print its steps
  numtasks run --save-dir out      Also write every result array as .npy
  numtasks load out/02_create_matrix_0.npy`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.loadConfig(cmd.Flags())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is ./"+config.FileName+".yaml)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", "text", "log format: text, json, logfmt")
	pf.String("log-file", "", "also append logs to this file")

	root.AddCommand(
		newRunCommand(a),
		newListCommand(),
		newShowCommand(a),
		newLoadCommand(),
		newVersionCommand(),
	)
	return root
}

func (a *app) loadConfig(flags *pflag.FlagSet) error {
	v := config.New()
	for name, key := range flagKeys {
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}
	cfg, err := config.Load(v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

// logger builds the run logger on the command's stderr.
func (a *app) logger(cmd *cobra.Command) (*log.Logger, func() error, error) {
	return logging.New(logging.Options{
		Level:  a.cfg.Log.Level,
		Format: a.cfg.Log.Format,
		File:   a.cfg.Log.File,
		Output: cmd.ErrOrStderr(),
	})
}

func (a *app) backend() *cpu.Backend {
	if a.cfg.Run.Parallel {
		return cpu.New()
	}
	return cpu.NewSequential()
}
