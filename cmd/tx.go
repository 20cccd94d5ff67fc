package cmd

import (
	"fmt"
	"io"

	"github.com/mezonai/wavesgo/errors"
	"github.com/mezonai/wavesgo/jsonx"
	"github.com/mezonai/wavesgo/transaction"
	"github.com/mezonai/wavesgo/types"
	"github.com/spf13/cobra"
)

var txWait bool

var txCmd = &cobra.Command{
	Use:   "tx <id>",
	Short: "Show a transaction by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := types.NewIDFromString(args[0])
		if err != nil {
			return err
		}
		nodeClient, resolved, err := createClient(rootConfig)
		if err != nil {
			return err
		}
		var info *transaction.TransactionInfo
		if txWait {
			info, err = nodeClient.WaitForTransaction(cmd.Context(), id, resolved.PollInterval, resolved.WaitTimeout)
		} else {
			info, err = nodeClient.TransactionInfo(cmd.Context(), id)
		}
		if errors.IsNotFound(err) {
			return fmt.Errorf("transaction %s is not known to %s", args[0], resolved.NodeURL)
		}
		if err != nil {
			return err
		}
		return printInfo(cmd.OutOrStdout(), info)
	},
}

func init() {
	rootCmd.AddCommand(txCmd)
	txCmd.Flags().BoolVarP(&txWait, "wait", "w", false, "poll until the transaction is confirmed")
}

func printInfo(w io.Writer, info *transaction.TransactionInfo) error {
	obj, err := info.Transaction.JSON()
	if err != nil {
		return err
	}
	obj["height"] = info.Height
	obj["applicationStatus"] = info.ApplicationStatus
	out, err := jsonx.MarshalIndent(obj)
	if err != nil {
		return fmt.Errorf("failed to print transaction: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
