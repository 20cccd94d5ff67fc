package types

// ChainID is the single network byte carried by addresses, aliases and transactions.
type ChainID byte

const (
	Mainnet  ChainID = 'W'
	Testnet  ChainID = 'T'
	Stagenet ChainID = 'S'
)

func (c ChainID) Byte() byte {
	return byte(c)
}

func (c ChainID) String() string {
	return string(rune(c))
}
