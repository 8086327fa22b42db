package service

import (
	"NK2Reader/internal/domain"
	"fmt"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

const (
	DumpFormatText = "text"
	DumpFormatSpew = "spew"
)

var ErrUnknownDumpFormat = errors.New("unknown dump format")

type DumpFileService struct {
	spew *spew.ConfigState
}

func NewDumpFileService() *DumpFileService {
	return &DumpFileService{
		spew: &spew.ConfigState{
			Indent:                  "  ",
			DisablePointerAddresses: true,
			DisableCapacities:       true,
			SortKeys:                true,
		},
	}
}

type DumpFileQuery struct {
	File   domain.File
	Format string
}

type DumpFileResult struct {
	Text string
	Err  error
}

func (s *DumpFileService) Execute(query DumpFileQuery) DumpFileResult {
	switch strings.ToLower(query.Format) {
	case "", DumpFormatText:
		return DumpFileResult{Text: dumpText(query.File)}
	case DumpFormatSpew:
		return DumpFileResult{Text: s.dumpSpew(query.File)}
	}
	return DumpFileResult{Err: errors.Wrapf(ErrUnknownDumpFormat, "%q", query.Format)}
}

// dumpText writes one header line per file, one line per row and one
// indented line per property in stream order.
func dumpText(file domain.File) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "version %d.%d, %d rows, %d bytes extra information, modified %s\n",
		file.MajorVersion(), file.MinorVersion(), len(file.Rows()),
		len(file.ExtraInformation()), file.LastModificationTime().Format(time.RFC3339))
	for i, row := range file.Rows() {
		fmt.Fprintf(&sb, "row %d: %d properties\n", i, row.Len())
		for _, id := range row.IDs() {
			v, _ := row.Value(id)
			fmt.Fprintf(&sb, "  0x%04X %s %s\n", id, v.Kind(), v)
		}
	}
	return sb.String()
}

type spewRow struct {
	Index      int
	Properties []spewProperty
}

type spewProperty struct {
	ID    string
	Kind  string
	Value interface{}
}

func (s *DumpFileService) dumpSpew(file domain.File) string {
	rows := make([]spewRow, 0, len(file.Rows()))
	for i, row := range file.Rows() {
		r := spewRow{Index: i}
		for _, id := range row.IDs() {
			v, _ := row.Value(id)
			r.Properties = append(r.Properties, spewProperty{
				ID:    fmt.Sprintf("0x%04X", id),
				Kind:  v.Kind().String(),
				Value: v.Interface(),
			})
		}
		rows = append(rows, r)
	}
	return s.spew.Sdump(rows)
}
