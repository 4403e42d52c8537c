package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/born-ml/numtasks/internal/tasks"
)

func newListCommand() *cobra.Command {
	var categories []string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the exercise catalogue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cats := make([]tasks.Category, len(categories))
			for i, c := range categories {
				cats[i] = tasks.Category(c)
			}
			ts, err := tasks.Filter(nil, cats)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderList(ts))
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&categories, "category", nil, "only list exercises in these categories")
	return cmd
}

func renderList(ts []tasks.Task) string {
	nameWidth := len("NAME")
	for _, t := range ts {
		nameWidth = max(nameWidth, len(t.Name))
	}

	var sb strings.Builder
	sb.WriteString(TitleStyle.Render(fmt.Sprintf("%3s  %-*s  %-13s  %s", "ID", nameWidth, "NAME", "CATEGORY", "SUMMARY")))
	sb.WriteByte('\n')
	for _, t := range ts {
		fmt.Fprintf(&sb, "%3d  %s  %s  %s\n",
			t.ID,
			LabelStyle.Render(fmt.Sprintf("%-*s", nameWidth, t.Name)),
			fmt.Sprintf("%-13s", t.Category),
			SubtitleStyle.Render(t.Summary),
		)
	}
	return sb.String()
}
