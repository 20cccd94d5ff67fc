package transaction

import (
	"github.com/mezonai/wavesgo/errors"
)

// TxType is the numeric transaction type carried on the wire.
type TxType byte

const (
	TxTypeGenesis         TxType = 1
	TxTypePayment         TxType = 2
	TxTypeIssue           TxType = 3
	TxTypeTransfer        TxType = 4
	TxTypeReissue         TxType = 5
	TxTypeBurn            TxType = 6
	TxTypeExchange        TxType = 7
	TxTypeLease           TxType = 8
	TxTypeLeaseCancel     TxType = 9
	TxTypeCreateAlias     TxType = 10
	TxTypeMassTransfer    TxType = 11
	TxTypeData            TxType = 12
	TxTypeSetScript       TxType = 13
	TxTypeSponsorFee      TxType = 14
	TxTypeSetAssetScript  TxType = 15
	TxTypeInvokeScript    TxType = 16
	TxTypeUpdateAssetInfo TxType = 17
	TxTypeEthereum        TxType = 18
)

var txTypeNames = map[TxType]string{
	TxTypeGenesis:         "genesis",
	TxTypePayment:         "payment",
	TxTypeIssue:           "issue",
	TxTypeTransfer:        "transfer",
	TxTypeReissue:         "reissue",
	TxTypeBurn:            "burn",
	TxTypeExchange:        "exchange",
	TxTypeLease:           "lease",
	TxTypeLeaseCancel:     "lease_cancel",
	TxTypeCreateAlias:     "create_alias",
	TxTypeMassTransfer:    "mass_transfer",
	TxTypeData:            "data",
	TxTypeSetScript:       "set_script",
	TxTypeSponsorFee:      "sponsor_fee",
	TxTypeSetAssetScript:  "set_asset_script",
	TxTypeInvokeScript:    "invoke_script",
	TxTypeUpdateAssetInfo: "update_asset_info",
	TxTypeEthereum:        "ethereum",
}

func (t TxType) String() string {
	if name, ok := txTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

type versionRange struct {
	min, max uint8
}

var supportedVersions = map[TxType]versionRange{
	TxTypeGenesis:         {1, 2},
	TxTypePayment:         {1, 1},
	TxTypeIssue:           {3, 3},
	TxTypeTransfer:        {3, 3},
	TxTypeReissue:         {3, 3},
	TxTypeBurn:            {3, 3},
	TxTypeExchange:        {3, 3},
	TxTypeLease:           {3, 3},
	TxTypeLeaseCancel:     {3, 3},
	TxTypeCreateAlias:     {3, 3},
	TxTypeMassTransfer:    {2, 2},
	TxTypeData:            {2, 2},
	TxTypeSetScript:       {2, 2},
	TxTypeSponsorFee:      {2, 2},
	TxTypeSetAssetScript:  {2, 2},
	TxTypeInvokeScript:    {2, 2},
	TxTypeUpdateAssetInfo: {1, 1},
	TxTypeEthereum:        {1, 1},
}

// MinVersion is the lowest version with a canonical protobuf body.
func MinVersion(t TxType) uint8 {
	return supportedVersions[t].min
}

// MaxVersion is the newest version and the default for new transactions.
func MaxVersion(t TxType) uint8 {
	return supportedVersions[t].max
}

func checkVersion(t TxType, version uint8) error {
	r, ok := supportedVersions[t]
	if !ok || version < r.min || version > r.max {
		return errors.Newf(errors.KindUnsupportedTransactionVersion, errors.ErrMsgUnsupportedTxVersion, t, r.min, r.max, version)
	}
	return nil
}
