package domain

import (
	"encoding/binary"
	"time"

	"github.com/google/uuid"
)

const (
	// seconds between 1601-01-01 and 1970-01-01
	filetimeEpochDelta = 11644473600
	ticksPerSecond     = 10000000
	nanosPerTick       = 100
)

// TimeFromFiletime converts 100ns ticks since 1601-01-01 UTC.
func TimeFromFiletime(ticks uint64) time.Time {
	secs := int64(ticks/ticksPerSecond) - filetimeEpochDelta
	nsec := int64(ticks%ticksPerSecond) * nanosPerTick
	return time.Unix(secs, nsec).UTC()
}

// FiletimeFromTime is the inverse of TimeFromFiletime. Sub-tick precision is
// truncated and times before 1601 are not representable.
func FiletimeFromTime(t time.Time) uint64 {
	secs := uint64(t.Unix() + filetimeEpochDelta)
	return secs*ticksPerSecond + uint64(t.Nanosecond()/nanosPerTick)
}

// GUIDFromBytes reads the Windows GUID layout: Data1, Data2 and Data3 are
// little-endian, Data4 is 8 raw bytes.
func GUIDFromBytes(b [16]byte) uuid.UUID {
	var g uuid.UUID
	binary.BigEndian.PutUint32(g[0:4], binary.LittleEndian.Uint32(b[0:4]))
	binary.BigEndian.PutUint16(g[4:6], binary.LittleEndian.Uint16(b[4:6]))
	binary.BigEndian.PutUint16(g[6:8], binary.LittleEndian.Uint16(b[6:8]))
	copy(g[8:], b[8:])
	return g
}

// GUIDToBytes is the inverse of GUIDFromBytes.
func GUIDToBytes(g uuid.UUID) [16]byte {
	var b [16]byte
	binary.LittleEndian.PutUint32(b[0:4], binary.BigEndian.Uint32(g[0:4]))
	binary.LittleEndian.PutUint16(b[4:6], binary.BigEndian.Uint16(g[4:6]))
	binary.LittleEndian.PutUint16(b[6:8], binary.BigEndian.Uint16(g[6:8]))
	copy(b[8:], g[8:])
	return b
}
