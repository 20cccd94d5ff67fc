package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/holiman/uint256"
	"github.com/mezonai/wavesgo/crypto"
	"github.com/mezonai/wavesgo/logx"
	"github.com/mezonai/wavesgo/transaction"
	"github.com/mezonai/wavesgo/types"
	"github.com/spf13/cobra"
)

type TransferConfig struct {
	Seed       string
	SeedFile   string
	Nonce      uint8
	To         string
	Amount     string
	Asset      string
	Fee        string
	Attachment string
	Wait       bool
	Verbose    bool
}

var transferConfig TransferConfig

// transferCmd represents the transfer command
var transferCmd = &cobra.Command{
	Use:   "transfer [flags]",
	Short: "Transfer WAVES or an asset to another account",
	Long: `This command signs a transfer transaction with the account derived from a seed and
broadcasts it to the node. The seed can be provided directly via --seed or via a file
using --seed-file. Amounts are in the smallest unit and may use "_" separators.

Examples:
  # Transfer 1 WAVES on testnet
  transfer -t 3Ms87NGAAaPWZux233TB9A3TXps4LDkyJWN -a 100_000_000 -f /path/to/seed.txt --wait

  # Transfer an asset to an alias
  transfer -t alias:T:merry -a 500 --asset 25FEqEjRkqK6yCkiT7Lz6SAYz7gUFCtxfCChnrVFD5AT -s "seed words"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := transferToken(cmd.Context(), rootConfig, transferConfig)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(transferCmd)

	transferCmd.PersistentFlags().StringVarP(&transferConfig.SeedFile, "seed-file", "f", "", "file holding the sender seed phrase")
	transferCmd.PersistentFlags().StringVarP(&transferConfig.Seed, "seed", "s", "", "sender seed phrase")
	transferCmd.PersistentFlags().Uint8VarP(&transferConfig.Nonce, "nonce", "n", 0, "sender account nonce")
	transferCmd.PersistentFlags().StringVarP(&transferConfig.To, "to", "t", "", "recipient address or alias")
	transferCmd.PersistentFlags().StringVarP(&transferConfig.Amount, "amount", "a", "", "amount")
	transferCmd.PersistentFlags().StringVar(&transferConfig.Asset, "asset", "", "asset id, empty for WAVES")
	transferCmd.PersistentFlags().StringVar(&transferConfig.Fee, "fee", "", "fee in WAVES units, defaults to the minimum")
	transferCmd.PersistentFlags().StringVarP(&transferConfig.Attachment, "message", "m", "", "attachment text")
	transferCmd.PersistentFlags().BoolVarP(&transferConfig.Wait, "wait", "w", false, "wait until the transaction is confirmed")
	transferCmd.PersistentFlags().BoolVarP(&transferConfig.Verbose, "verbose", "v", false, "verbose output")
}

// parseAmount parses a non-negative decimal that fits in 64 bits, ignoring "_" separators.
func parseAmount(s string) (uint64, error) {
	amount, err := uint256.FromDecimal(strings.ReplaceAll(s, "_", ""))
	if err != nil {
		return 0, fmt.Errorf("could not parse amount string: %v", err)
	}
	if !amount.IsUint64() {
		return 0, fmt.Errorf("amount %s does not fit in 64 bits", s)
	}
	return amount.Uint64(), nil
}

func loadSeed(seed, seedFile string) (string, error) {
	if seed != "" {
		return seed, nil
	}
	if seedFile == "" {
		return "", fmt.Errorf("either --seed or --seed-file must be provided")
	}
	data, err := os.ReadFile(seedFile)
	if err != nil {
		return "", fmt.Errorf("failed to read seed file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func buildTransfer(chain types.ChainID, kp crypto.KeyPair, tc TransferConfig) (*transaction.Transaction, error) {
	recipient, err := types.NewRecipientFromString(tc.To)
	if err != nil {
		return nil, fmt.Errorf("invalid recipient: %w", err)
	}
	value, err := parseAmount(tc.Amount)
	if err != nil {
		return nil, err
	}
	asset, err := types.ParseOptionalAssetID(tc.Asset)
	if err != nil {
		return nil, fmt.Errorf("invalid asset: %w", err)
	}
	tx := transaction.New(chain, kp.PublicKey, transaction.TransferTx{
		Recipient:  recipient,
		Amount:     types.NewAmount(value, asset),
		Attachment: types.Base58String(tc.Attachment),
	})
	if tc.Fee != "" {
		fee, err := parseAmount(tc.Fee)
		if err != nil {
			return nil, err
		}
		tx.Fee = types.NativeAmount(fee)
	}
	return tx, nil
}

func transferToken(ctx context.Context, rc RootConfig, tc TransferConfig) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	seed, err := loadSeed(tc.Seed, tc.SeedFile)
	if err != nil {
		return "", err
	}
	kp, err := crypto.NewKeyPair(seed, tc.Nonce)
	if err != nil {
		return "", fmt.Errorf("failed to derive key pair: %w", err)
	}

	nodeClient, resolved, err := createClient(rc)
	if err != nil {
		return "", err
	}
	tx, err := buildTransfer(resolved.Profile.ChainID, kp, tc)
	if err != nil {
		return "", err
	}
	if tc.Verbose {
		logx.Info("TRANSFER CLI", fmt.Sprintf("sending %d to %s with fee %d", tx.Data.(transaction.TransferTx).Amount.Value, tc.To, tx.Fee.Value))
	}

	signed, err := nodeClient.SignAndBroadcast(ctx, tx, kp.PrivateKey)
	if err != nil {
		return "", fmt.Errorf("failed to send transaction: %w", err)
	}
	id, err := signed.ID()
	if err != nil {
		return "", err
	}
	logx.Info("TRANSFER CLI", "transaction sent: ", id.String())

	if tc.Wait {
		info, err := nodeClient.WaitForTransaction(ctx, id, resolved.PollInterval, resolved.WaitTimeout)
		if err != nil {
			return "", fmt.Errorf("transaction %s not confirmed: %w", id.String(), err)
		}
		logx.Info("TRANSFER CLI", fmt.Sprintf("confirmed at height %d (%s)", info.Height, info.ApplicationStatus))
	}
	return id.String(), nil
}
