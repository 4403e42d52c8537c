package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/born-ml/numtasks/internal/npy"
	"github.com/born-ml/numtasks/tensor"
)

func newLoadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "load <file.npy>...",
		Short: "Print arrays stored in .npy files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				raw, err := npy.Load(path)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(),
					LabelStyle.Render(path)+SubtitleStyle.Render(fmt.Sprintf(" %s %s", raw.Shape(), raw.DType())))
				fmt.Fprintln(cmd.OutOrStdout(), valueStyle.Render(tensor.FormatRaw(raw)))
			}
			return nil
		},
	}
}
