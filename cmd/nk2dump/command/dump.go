package command

import (
	"NK2Reader/internal/application/service"
	"fmt"

	"github.com/spf13/cobra"
)

var dumpFormat string

func newDumpCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "print a plain text dump of a file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			text, err := dumpFile(args[0], dumpFormat)
			if err != nil {
				cmdFailedf(cmd, "dump %s failed: %s", args[0], err)
			}
			fmt.Fprint(cmd.OutOrStdout(), text)
		},
	}
	cmd.Flags().StringVar(&dumpFormat, "format", service.DumpFormatText, "dump format: text or spew")
	return cmd
}

func dumpFile(path, format string) (string, error) {
	if globalFlags.Server != "" {
		data, name, err := readInput(path)
		if err != nil {
			return "", err
		}
		return remoteClient().DumpFile(name, data, format)
	}
	file, err := decodeLocal(path)
	if err != nil {
		return "", err
	}
	result := service.NewDumpFileService().Execute(service.DumpFileQuery{File: file, Format: format})
	return result.Text, result.Err
}
