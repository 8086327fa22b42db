package command

import (
	"NK2Reader/internal/application/service"
	"NK2Reader/internal/platform/api/dto"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newContactsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contacts <file>",
		Short: "list the recipients cached in a file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			contacts, err := listContacts(args[0])
			if err != nil {
				cmdFailedf(cmd, "list contacts of %s failed: %s", args[0], err)
			}
			w := cmd.OutOrStdout()
			switch outputFormat(cmd) {
			case FormatJSON:
				err = printJSON(w, contacts)
			case FormatSpew:
				spew.Fdump(w, contacts)
			default:
				renderContacts(w, contacts)
			}
			if err != nil {
				cmdFailedf(cmd, "print contacts failed: %s", err)
			}
		},
	}
	return cmd
}

func listContacts(path string) ([]dto.ContactResponse, error) {
	if globalFlags.Server != "" {
		data, name, err := readInput(path)
		if err != nil {
			return nil, err
		}
		return remoteClient().ListContacts(name, data)
	}
	file, err := decodeLocal(path)
	if err != nil {
		return nil, err
	}
	result := service.NewListContactsService().Execute(service.ListContactsQuery{File: file})
	return dto.MapToContactResponses(result.Contacts), nil
}

func renderContacts(w io.Writer, contacts []dto.ContactResponse) {
	t := newTable(w, table.Row{"#", "Display Name", "Address", "Address Type", "Nickname"})
	for i, c := range contacts {
		address := c.SmtpAddress
		if address == "" {
			address = c.EmailAddress
		}
		t.AppendRow(table.Row{i, c.DisplayName, address, c.AddressType, c.Nickname})
	}
	t.AppendFooter(table.Row{"", "Total", len(contacts)})
	t.Render()
}
