package command

import (
	"NK2Reader/internal/application/service"
	"NK2Reader/internal/platform/api/dto"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newDecodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <file>",
		Short: "decode a file and print every property of every row",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			if outputFormat(cmd) == FormatSpew {
				text, err := dumpFile(args[0], service.DumpFormatSpew)
				if err != nil {
					cmdFailedf(cmd, "decode %s failed: %s", args[0], err)
				}
				fmt.Fprint(w, text)
				return
			}

			file, err := decodeFile(args[0])
			if err != nil {
				cmdFailedf(cmd, "decode %s failed: %s", args[0], err)
			}
			if IsFormatJSON(cmd) {
				err = printJSON(w, file)
			} else {
				renderFile(w, file)
			}
			if err != nil {
				cmdFailedf(cmd, "print %s failed: %s", args[0], err)
			}
		},
	}
	return cmd
}

func decodeFile(path string) (dto.FileResponse, error) {
	if globalFlags.Server != "" {
		data, name, err := readInput(path)
		if err != nil {
			return dto.FileResponse{}, err
		}
		resp, err := remoteClient().DecodeFile(name, data)
		if err != nil {
			return dto.FileResponse{}, err
		}
		return *resp, nil
	}
	file, err := decodeLocal(path)
	if err != nil {
		return dto.FileResponse{}, err
	}
	return dto.MapToFileResponse(file), nil
}

func renderFile(w io.Writer, file dto.FileResponse) {
	summary := newTable(w, table.Row{"Signature", "Version", "Rows", "Extra Information", "Last Modified"})
	summary.AppendRow(table.Row{
		file.Signature,
		formatVersion(file.MajorVersion, file.MinorVersion),
		len(file.Rows),
		fmt.Sprintf("%d bytes", len(file.ExtraInformation)),
		file.LastModificationTime.Format(time.RFC3339),
	})
	summary.Render()

	props := newTable(w, table.Row{"Row", "Property", "Kind", "Value"})
	for i, row := range file.Rows {
		for _, p := range row.Properties {
			props.AppendRow(table.Row{i, p.ID, p.Kind, formatValue(p.Value)}, table.RowConfig{AutoMerge: true})
		}
		props.AppendSeparator()
	}
	props.Render()
}

func formatVersion(major, minor uint32) string {
	return fmt.Sprintf("%d.%d", major, minor)
}

func formatValue(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case []byte:
		return fmt.Sprintf("% X", x)
	case [][]byte:
		parts := make([]string, 0, len(x))
		for _, b := range x {
			parts = append(parts, fmt.Sprintf("% X", b))
		}
		return strings.Join(parts, " | ")
	case []string:
		return strings.Join(x, " | ")
	case []interface{}:
		parts := make([]string, 0, len(x))
		for _, e := range x {
			parts = append(parts, formatValue(e))
		}
		return strings.Join(parts, " | ")
	}
	return fmt.Sprint(v)
}
