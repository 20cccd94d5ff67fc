package types

import (
	"strings"
)

// Recipient is either an Address or an Alias.
type Recipient struct {
	address *Address
	alias   *Alias
}

func NewRecipientFromAddress(a Address) Recipient {
	return Recipient{address: &a}
}

func NewRecipientFromAlias(a Alias) Recipient {
	return Recipient{alias: &a}
}

// NewRecipientFromString accepts a base58 address or "alias:<c>:<name>".
func NewRecipientFromString(s string) (Recipient, error) {
	if strings.HasPrefix(s, AliasPrefix+":") {
		alias, err := NewAliasFromString(s)
		if err != nil {
			return Recipient{}, err
		}
		return NewRecipientFromAlias(alias), nil
	}
	addr, err := NewAddressFromString(s)
	if err != nil {
		return Recipient{}, err
	}
	return NewRecipientFromAddress(addr), nil
}

func (r Recipient) Address() (Address, bool) {
	if r.address == nil {
		return Address{}, false
	}
	return *r.address, true
}

func (r Recipient) Alias() (Alias, bool) {
	if r.alias == nil {
		return Alias{}, false
	}
	return *r.alias, true
}

func (r Recipient) IsAlias() bool {
	return r.alias != nil
}

func (r Recipient) ChainID() ChainID {
	switch {
	case r.address != nil:
		return r.address.ChainID()
	case r.alias != nil:
		return r.alias.ChainID()
	default:
		return 0
	}
}

func (r Recipient) String() string {
	switch {
	case r.address != nil:
		return r.address.String()
	case r.alias != nil:
		return r.alias.String()
	default:
		return ""
	}
}

func (r Recipient) Equal(other Recipient) bool {
	return r.String() == other.String()
}
