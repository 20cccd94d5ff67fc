package cmd

import (
	"fmt"

	"github.com/mezonai/wavesgo/config"
	"github.com/mezonai/wavesgo/crypto"
	"github.com/mezonai/wavesgo/types"
	"github.com/spf13/cobra"
)

type AddressConfig struct {
	Seed     string
	SeedFile string
	Nonce    uint8
	Chain    string
}

var addressConfig AddressConfig

var addressCmd = &cobra.Command{
	Use:   "address [flags]",
	Short: "Derive the public key and address of a seed",
	Long: `Derives the key pair for a seed phrase and nonce and prints the public key and the
address on the selected network.

Examples:
  address --seed "blame vacant regret company chase trip grant funny brisk innocent" --chain T
  address --seed-file /path/to/seed.txt --nonce 1 --chain mainnet`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := deriveAddress(addressConfig)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addressCmd)

	addressCmd.Flags().StringVarP(&addressConfig.Seed, "seed", "s", "", "seed phrase")
	addressCmd.Flags().StringVarP(&addressConfig.SeedFile, "seed-file", "f", "", "file holding the seed phrase")
	addressCmd.Flags().Uint8VarP(&addressConfig.Nonce, "nonce", "n", 0, "account nonce")
	addressCmd.Flags().StringVar(&addressConfig.Chain, "chain", "T", "network profile name or chain character")
}

func deriveAddress(ac AddressConfig) (string, error) {
	seed, err := loadSeed(ac.Seed, ac.SeedFile)
	if err != nil {
		return "", err
	}
	profile, err := config.ProfileByName(ac.Chain)
	if err != nil {
		return "", err
	}
	kp, err := crypto.NewKeyPair(seed, ac.Nonce)
	if err != nil {
		return "", err
	}
	addr := types.NewAddressFromPublicKey(profile.ChainID, kp.PublicKey)
	return fmt.Sprintf("public key: %s\naddress:    %s\n", kp.PublicKey.String(), addr.String()), nil
}
