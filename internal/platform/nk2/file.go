package nk2

import (
	"NK2Reader/internal/domain"
	"NK2Reader/internal/platform/stream"

	"go.uber.org/zap"
)

const minRowSize = 4

// DecodeFile reads a complete autocomplete stream starting at the cursor. On
// error the cursor position is undefined.
func (d *Decoder) DecodeFile(c *stream.Cursor) (domain.File, error) {
	start := c.Position()
	signature, err := c.ReadUint32()
	if err != nil {
		return domain.File{}, err
	}
	if signature != domain.FileSignature {
		return domain.File{}, domain.InvalidSignature(signature, start)
	}

	major, err := c.ReadUint32()
	if err != nil {
		return domain.File{}, err
	}
	minor, err := c.ReadUint32()
	if err != nil {
		return domain.File{}, err
	}

	rows, err := d.decodeRowSet(c)
	if err != nil {
		return domain.File{}, err
	}

	extraLen, err := c.ReadUint32()
	if err != nil {
		return domain.File{}, err
	}
	extra, err := c.ReadBytes(int(extraLen))
	if err != nil {
		return domain.File{}, err
	}

	ticks, err := c.ReadUint64()
	if err != nil {
		return domain.File{}, err
	}

	file := domain.NewFile(major, minor, rows, extra, domain.TimeFromFiletime(ticks))
	d.logger.Debug("nk2 file decoded",
		zap.Uint32("major_version", major),
		zap.Uint32("minor_version", minor),
		zap.Int("rows", len(rows)),
		zap.Int("extra_information_bytes", len(extra)),
		zap.Int("bytes", c.Position()-start))
	return file, nil
}

func (d *Decoder) decodeRowSet(c *stream.Cursor) ([]domain.Row, error) {
	count, err := c.ReadUint32()
	if err != nil {
		return nil, err
	}
	rows := make([]domain.Row, 0, capacityHint(count, c, minRowSize))
	for i := uint32(0); i < count; i++ {
		row, err := d.DecodeRow(c)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// capacityHint bounds a slice pre-allocation by the number of elements the
// remaining bytes could hold.
func capacityHint(count uint32, c *stream.Cursor, minSize int) int {
	limit := c.Remaining() / minSize
	if int64(count) < int64(limit) {
		return int(count)
	}
	return limit
}
