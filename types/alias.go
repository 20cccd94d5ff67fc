package types

import (
	"regexp"
	"strings"

	"github.com/mezonai/wavesgo/errors"
)

const (
	AliasPrefix    = "alias"
	AliasVersion   = 2
	MinAliasLength = 4
	MaxAliasLength = 30
)

var aliasPattern = regexp.MustCompile(`^[-.0-9@_a-z]{4,30}$`)

// Alias is a human readable name bound to an address on one chain.
type Alias struct {
	chain ChainID
	name  string
}

// NewAlias validates name on chain. A leading "alias:<c>:" is stripped first and its
// chain character must equal chain.
func NewAlias(chain ChainID, name string) (Alias, error) {
	if prefixChain, stripped, ok := splitAliasPrefix(name); ok {
		if prefixChain != chain {
			return Alias{}, errors.Newf(errors.KindInvalidAliasName, "alias %q belongs to chain %s, expected %s", name, prefixChain, chain)
		}
		name = stripped
	}
	if !aliasPattern.MatchString(name) {
		return Alias{}, errors.Newf(errors.KindInvalidAliasName, errors.ErrMsgInvalidAliasName, name, aliasPattern.String())
	}
	return Alias{chain: chain, name: name}, nil
}

// NewAliasFromString parses the full "alias:<c>:<name>" form, taking the chain from it.
func NewAliasFromString(s string) (Alias, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) != 3 || parts[0] != AliasPrefix || len(parts[1]) != 1 {
		return Alias{}, errors.Newf(errors.KindInvalidAliasName, "%q is not of form alias:<chain>:<name>", s)
	}
	return NewAlias(ChainID(parts[1][0]), parts[2])
}

func splitAliasPrefix(s string) (ChainID, string, bool) {
	if len(s) >= 8 && strings.HasPrefix(s, AliasPrefix+":") && s[7] == ':' {
		return ChainID(s[6]), s[8:], true
	}
	return 0, s, false
}

func (a Alias) ChainID() ChainID {
	return a.chain
}

func (a Alias) Name() string {
	return a.name
}

// IsValid reports whether the alias belongs to chain and has a legal name.
func (a Alias) IsValid(chain ChainID) bool {
	return a.chain == chain && aliasPattern.MatchString(a.name)
}

// Bytes is [0x02][chain][utf8 name].
func (a Alias) Bytes() []byte {
	out := make([]byte, 0, 2+len(a.name))
	out = append(out, AliasVersion, a.chain.Byte())
	return append(out, a.name...)
}

func (a Alias) String() string {
	return AliasPrefix + ":" + a.chain.String() + ":" + a.name
}
