package nk2

import (
	"NK2Reader/internal/domain"
	"NK2Reader/internal/platform/stream"

	"go.uber.org/zap"
)

const propertyHeaderSize = 16

// DecodeRow reads a property count and that many properties. A repeated
// identifier replaces the earlier value unless the decoder is strict.
func (d *Decoder) DecodeRow(c *stream.Cursor) (domain.Row, error) {
	count, err := c.ReadUint32()
	if err != nil {
		return domain.Row{}, err
	}

	hint := capacityHint(count, c, propertyHeaderSize)
	properties := make(map[uint16]domain.Value, hint)
	order := make([]uint16, 0, hint)
	for i := uint32(0); i < count; i++ {
		offset := c.Position()
		tag, value, err := d.DecodeProperty(c)
		if err != nil {
			return domain.Row{}, err
		}
		if _, exists := properties[tag.ID]; exists {
			if d.strict {
				return domain.Row{}, domain.DuplicateProperty(tag.ID, offset)
			}
			d.logger.Debug("duplicate property overwritten",
				zap.Uint16("property_id", tag.ID),
				zap.Stringer("property_type", tag.Type),
				zap.Int("offset", offset))
		} else {
			order = append(order, tag.ID)
		}
		properties[tag.ID] = value
	}
	return domain.NewRow(properties, order), nil
}
