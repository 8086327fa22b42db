package command

import (
	"NK2Reader/internal/domain"
	"NK2Reader/internal/platform/messaging/zeromq/listener"
	"NK2Reader/internal/platform/messaging/zeromq/message"
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var watchEndpoint string

func newWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "print decode events published by a server or relay",
		Run: func(cmd *cobra.Command, args []string) {
			if watchEndpoint == "" {
				cmdFailedf(cmd, "the --endpoint flag MUST be set")
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			l := listener.NewFileDecodedListener(ctx, watchEndpoint)
			defer l.Close()

			w := cmd.OutOrStdout()
			jsonOutput := IsFormatJSON(cmd)
			err := l.Listen(func(event domain.FileDecodedEvent) {
				if jsonOutput {
					_ = printJSON(w, message.FileDecodedMessageFrom(event))
					return
				}
				t := newTable(w, table.Row{"Decoded At", "Source", "Rows", "Version", "Last Modified"})
				t.AppendRow(table.Row{
					event.DecodedAt.Format(time.RFC3339),
					event.Source,
					event.Rows,
					formatVersion(event.MajorVersion, event.MinorVersion),
					event.LastModificationTime.Format(time.RFC3339),
				})
				t.Render()
			}, func(err error) {
				color.Yellow("skipping event: %s", err)
			})
			if err != nil {
				cmdFailedf(cmd, "watch %s failed: %s", watchEndpoint, err)
			}
		},
	}
	cmd.Flags().StringVar(&watchEndpoint, "endpoint", "", "event endpoint, e.g. tcp://localhost:7000")
	return cmd
}
