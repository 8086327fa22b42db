package service

import (
	"NK2Reader/internal/domain"
)

type ListContactsService struct{}

func NewListContactsService() *ListContactsService {
	return &ListContactsService{}
}

type ListContactsQuery struct {
	File domain.File
}

type ListContactsResult struct {
	Contacts []domain.Contact
}

// Execute projects every row onto the well-known recipient properties, one
// contact per row in stream order.
func (s *ListContactsService) Execute(query ListContactsQuery) ListContactsResult {
	rows := query.File.Rows()
	contacts := make([]domain.Contact, 0, len(rows))
	for _, row := range rows {
		contacts = append(contacts, domain.ContactFromRow(row))
	}
	return ListContactsResult{Contacts: contacts}
}
