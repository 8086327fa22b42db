package domain

// Well-known property identifiers found in autocomplete rows.
const (
	PidTagObjectType   uint16 = 0x0FFE
	PidTagEntryID      uint16 = 0x0FFF
	PidTagDisplayName  uint16 = 0x3001
	PidTagAddressType  uint16 = 0x3002
	PidTagEmailAddress uint16 = 0x3003
	PidTagSearchKey    uint16 = 0x300B
	PidTagDisplayType  uint16 = 0x3900
	PidTagSmtpAddress  uint16 = 0x39FE
	PidTagNickname     uint16 = 0x6001
)

// Contact is the recipient view of a Row.
type Contact struct {
	DisplayName  string
	AddressType  string
	EmailAddress string
	SmtpAddress  string
	Nickname     string
	EntryID      []byte
	SearchKey    []byte
	ObjectType   uint32
	DisplayType  uint32
}

func ContactFromRow(row Row) Contact {
	c := Contact{}
	c.DisplayName, _ = row.Text(PidTagDisplayName)
	c.AddressType, _ = row.Text(PidTagAddressType)
	c.EmailAddress, _ = row.Text(PidTagEmailAddress)
	c.SmtpAddress, _ = row.Text(PidTagSmtpAddress)
	c.Nickname, _ = row.Text(PidTagNickname)
	c.EntryID, _ = row.Binary(PidTagEntryID)
	c.SearchKey, _ = row.Binary(PidTagSearchKey)
	c.ObjectType, _ = row.Integer32(PidTagObjectType)
	c.DisplayType, _ = row.Integer32(PidTagDisplayType)
	return c
}

// Address prefers the SMTP address over the transport specific one.
func (c Contact) Address() string {
	if c.SmtpAddress != "" {
		return c.SmtpAddress
	}
	return c.EmailAddress
}
