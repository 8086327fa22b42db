// Package dto holds the JSON shapes shared by the HTTP and ZMQ transports.
package dto

import (
	"NK2Reader/internal/domain"
	"fmt"
	"math"
	"strconv"
	"time"
)

type FileResponse struct {
	Signature            string        `json:"signature"`
	MajorVersion         uint32        `json:"major_version"`
	MinorVersion         uint32        `json:"minor_version"`
	LastModificationTime time.Time     `json:"last_modification_time"`
	ExtraInformation     []byte        `json:"extra_information"`
	Rows                 []RowResponse `json:"rows"`
}

type RowResponse struct {
	Properties []PropertyResponse `json:"properties"`
}

type PropertyResponse struct {
	ID    string      `json:"id"`
	Kind  string      `json:"kind"`
	Value interface{} `json:"value"`
}

type ContactResponse struct {
	DisplayName  string `json:"display_name,omitempty"`
	AddressType  string `json:"address_type,omitempty"`
	EmailAddress string `json:"email_address,omitempty"`
	SmtpAddress  string `json:"smtp_address,omitempty"`
	Nickname     string `json:"nickname,omitempty"`
	EntryID      []byte `json:"entry_id,omitempty"`
	SearchKey    []byte `json:"search_key,omitempty"`
	ObjectType   uint32 `json:"object_type"`
	DisplayType  uint32 `json:"display_type"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func MapToFileResponse(f domain.File) FileResponse {
	rows := make([]RowResponse, 0, len(f.Rows()))
	for _, row := range f.Rows() {
		rows = append(rows, MapToRowResponse(row))
	}
	return FileResponse{
		Signature:            fmt.Sprintf("0x%08X", f.Signature()),
		MajorVersion:         f.MajorVersion(),
		MinorVersion:         f.MinorVersion(),
		LastModificationTime: f.LastModificationTime(),
		ExtraInformation:     f.ExtraInformation(),
		Rows:                 rows,
	}
}

func MapToRowResponse(row domain.Row) RowResponse {
	ids := row.IDs()
	props := make([]PropertyResponse, 0, len(ids))
	for _, id := range ids {
		v, _ := row.Value(id)
		props = append(props, PropertyResponse{
			ID:    fmt.Sprintf("0x%04X", id),
			Kind:  v.Kind().String(),
			Value: jsonValue(v),
		})
	}
	return RowResponse{Properties: props}
}

func MapToContactResponses(contacts []domain.Contact) []ContactResponse {
	out := make([]ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, ContactResponse{
			DisplayName:  c.DisplayName,
			AddressType:  c.AddressType,
			EmailAddress: c.EmailAddress,
			SmtpAddress:  c.SmtpAddress,
			Nickname:     c.Nickname,
			EntryID:      c.EntryID,
			SearchKey:    c.SearchKey,
			ObjectType:   c.ObjectType,
			DisplayType:  c.DisplayType,
		})
	}
	return out
}

// jsonValue converts v into something encoding/json accepts. Non-finite
// floats become strings, GUIDs their canonical form, bytes stay base64.
func jsonValue(v domain.Value) interface{} {
	switch v.Kind() {
	case domain.KindFloating32:
		f, _ := v.Floating32()
		return jsonFloat(float64(f), 32)
	case domain.KindFloating64:
		f, _ := v.Floating64()
		return jsonFloat(f, 64)
	case domain.KindTime:
		t, _ := v.Time()
		return t.Format(time.RFC3339Nano)
	case domain.KindGUID:
		g, _ := v.GUID()
		return g.String()
	}
	return v.Interface()
}

func jsonFloat(f float64, bits int) interface{} {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, bits)
	}
	return f
}
