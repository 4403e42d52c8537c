package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/born-ml/numtasks/internal/tasks"
)

func newShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id|name>",
		Short: "Run one exercise and print its steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := tasks.Lookup(args[0])
			if err != nil {
				return err
			}
			steps, err := t.Run(a.backend())
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), ErrorStyle.Render("failed: ")+err.Error())
				return &ExitError{Code: 2, Err: err}
			}
			fmt.Fprint(cmd.OutOrStdout(), renderTask(t, steps))
			return nil
		},
	}
}

func renderTask(t tasks.Task, steps []tasks.Step) string {
	var sb strings.Builder
	sb.WriteString(TitleStyle.Render(fmt.Sprintf("%d %s", t.ID, t.Name)))
	sb.WriteString(SubtitleStyle.Render(" (" + string(t.Category) + ")"))
	sb.WriteByte('\n')
	sb.WriteString(SubtitleStyle.Render(t.Summary))
	sb.WriteString("\n\n")
	for _, s := range steps {
		label := LabelStyle.Render(s.Label)
		if s.Shape != "" {
			label += SubtitleStyle.Render(fmt.Sprintf(" %s %s", s.Shape, s.DType))
		}
		sb.WriteString(label)
		sb.WriteByte('\n')
		sb.WriteString(valueStyle.Render(s.Value))
		sb.WriteByte('\n')
	}
	sb.WriteString(SuccessStyle.Render("ok"))
	sb.WriteByte('\n')
	return sb.String()
}
