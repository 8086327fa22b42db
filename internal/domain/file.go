package domain

import "time"

// FileSignature is the metadata value every autocomplete stream starts with.
const FileSignature uint32 = 0xBAADF00D

// File is a fully decoded autocomplete stream.
type File struct {
	majorVersion         uint32
	minorVersion         uint32
	rows                 []Row
	extraInformation     []byte
	lastModificationTime time.Time
}

func NewFile(majorVersion, minorVersion uint32, rows []Row, extraInformation []byte,
	lastModificationTime time.Time) File {
	if rows == nil {
		rows = []Row{}
	}
	if extraInformation == nil {
		extraInformation = []byte{}
	}
	return File{
		majorVersion:         majorVersion,
		minorVersion:         minorVersion,
		rows:                 rows,
		extraInformation:     extraInformation,
		lastModificationTime: lastModificationTime,
	}
}

func (f File) Signature() uint32 {
	return FileSignature
}

func (f File) MajorVersion() uint32 {
	return f.majorVersion
}

func (f File) MinorVersion() uint32 {
	return f.minorVersion
}

// Rows returns the rows in stream order. The slice must not be modified.
func (f File) Rows() []Row {
	return f.rows
}

// ExtraInformation is the opaque blob that follows the row-set.
func (f File) ExtraInformation() []byte {
	return f.extraInformation
}

func (f File) LastModificationTime() time.Time {
	return f.lastModificationTime
}
