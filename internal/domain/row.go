package domain

import "time"

// Row holds the properties of one autocomplete entry. Identifiers are unique;
// when the stream repeats one, the last decoded value is kept.
type Row struct {
	properties map[uint16]Value
	order      []uint16
}

// NewRow takes ownership of properties. order lists every key of properties
// once, in the order the identifiers first appeared in the stream.
func NewRow(properties map[uint16]Value, order []uint16) Row {
	if properties == nil {
		properties = map[uint16]Value{}
	}
	return Row{
		properties: properties,
		order:      order,
	}
}

func (r Row) Len() int {
	return len(r.properties)
}

// IDs returns the property identifiers in stream order.
func (r Row) IDs() []uint16 {
	ids := make([]uint16, len(r.order))
	copy(ids, r.order)
	return ids
}

func (r Row) Has(id uint16) bool {
	_, ok := r.properties[id]
	return ok
}

// Value returns whatever is stored for id, regardless of its kind.
func (r Row) Value(id uint16) (Value, bool) {
	v, ok := r.properties[id]
	return v, ok
}

// Property returns the value stored for id when it holds the requested kind,
// and an absent Value otherwise.
func (r Row) Property(id uint16, kind ValueKind) Value {
	v, ok := r.properties[id]
	if !ok || v.Kind() != kind {
		return AbsentValue()
	}
	return v
}

// Text returns a PT_UNICODE or PT_STRING8 property.
func (r Row) Text(id uint16) (string, bool) {
	v, ok := r.properties[id]
	if !ok {
		return "", false
	}
	return v.Text()
}

func (r Row) Unicode(id uint16) (string, bool) {
	return r.Property(id, KindUnicode).Unicode()
}

func (r Row) String8(id uint16) (string, bool) {
	return r.Property(id, KindString8).String8()
}

func (r Row) Integer32(id uint16) (uint32, bool) {
	return r.Property(id, KindInteger32).Integer32()
}

func (r Row) Boolean(id uint16) (bool, bool) {
	return r.Property(id, KindBoolean).Boolean()
}

func (r Row) Time(id uint16) (time.Time, bool) {
	return r.Property(id, KindTime).Time()
}

func (r Row) Binary(id uint16) ([]byte, bool) {
	return r.Property(id, KindBinary).Binary()
}
