package config

import (
	"time"

	"github.com/mezonai/wavesgo/types"
)

var (
	Mainnet  = Profile{Name: "mainnet", ChainID: types.Mainnet, URL: "https://nodes.wavesnodes.com"}
	Testnet  = Profile{Name: "testnet", ChainID: types.Testnet, URL: "https://nodes-testnet.wavesnodes.com"}
	Stagenet = Profile{Name: "stagenet", ChainID: types.Stagenet, URL: "https://nodes-stagenet.wavesnodes.com"}
)

var Profiles = []Profile{Mainnet, Testnet, Stagenet}

const (
	DefaultTimeout      = 60 * time.Second
	DefaultPollInterval = time.Second
	DefaultWaitTimeout  = 60 * time.Second
)
