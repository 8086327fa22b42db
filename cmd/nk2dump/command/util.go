package command

import (
	"NK2Reader/internal/platform/config"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func cmdFailedf(cmd *cobra.Command, format string, a ...interface{}) {
	errStr := format
	if a != nil {
		errStr = fmt.Sprintf(format, a...)
	}
	if IsFormatJSON(cmd) {
		m := map[string]string{"ERROR": errStr}
		data, _ := json.Marshal(m)
		color.Red(string(data))
	} else {
		t := table.NewWriter()
		t.AppendHeader(table.Row{"ERROR"})
		t.AppendRow(table.Row{errStr})
		t.SetColumnConfigs([]table.ColumnConfig{
			{Number: 1, VAlign: text.VAlignMiddle, Align: text.AlignCenter, AlignHeader: text.AlignCenter},
		})
		t.SetOutputMirror(os.Stdout)
		t.Render()
	}

	os.Exit(-1)
}

func printJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func newTable(w io.Writer, header table.Row) table.Writer {
	t := table.NewWriter()
	t.AppendHeader(header)
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

// cliConfig is the configuration for local decoding: no size limit beyond
// the service default and no event transport.
func cliConfig() config.Config {
	return config.Config{
		Codepage:         globalFlags.Codepage,
		StrictDuplicates: globalFlags.Strict,
		MaxFileSize:      config.DefaultMaxFileSize,
	}
}
