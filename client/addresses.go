package client

import (
	"context"
	"net/url"

	"github.com/mezonai/wavesgo/jsonx"
	"github.com/mezonai/wavesgo/types"
)

// Addresses lists the addresses held in the node's wallet.
func (c *NodeClient) Addresses(ctx context.Context) ([]types.Address, error) {
	v, err := c.get(ctx, "/addresses", nil)
	if err != nil {
		return nil, err
	}
	return parseEach(v, readAddress)
}

func (c *NodeClient) AddressesSeq(ctx context.Context, from, to uint32) ([]types.Address, error) {
	v, err := c.get(ctx, "/addresses/seq/"+pathUint(uint64(from))+"/"+pathUint(uint64(to)), nil)
	if err != nil {
		return nil, err
	}
	return parseEach(v, readAddress)
}

func (c *NodeClient) Balance(ctx context.Context, addr types.Address) (uint64, error) {
	v, err := c.get(ctx, "/addresses/balance/"+addr.String(), nil)
	if err != nil {
		return 0, err
	}
	return v.Get("balance").Uint64()
}

func (c *NodeClient) BalanceWithConfirmations(ctx context.Context, addr types.Address, confirmations uint32) (uint64, error) {
	v, err := c.get(ctx, "/addresses/balance/"+addr.String()+"/"+pathUint(uint64(confirmations)), nil)
	if err != nil {
		return 0, err
	}
	return v.Get("balance").Uint64()
}

// Balances queries several addresses at once, optionally at a past height (0 means current).
func (c *NodeClient) Balances(ctx context.Context, addrs []types.Address, height uint32) ([]AddressBalance, error) {
	body := jsonx.Object{"addresses": addressStrings(addrs)}
	if height > 0 {
		body["height"] = height
	}
	v, err := c.post(ctx, "/addresses/balance", body)
	if err != nil {
		return nil, err
	}
	return parseEach(v, func(item jsonx.Value) (AddressBalance, error) {
		var b AddressBalance
		var err error
		if b.Address, err = readAddress(item.Get("id")); err != nil {
			return b, err
		}
		b.Balance, err = item.Get("balance").Uint64()
		return b, err
	})
}

func (c *NodeClient) BalanceDetails(ctx context.Context, addr types.Address) (*BalanceDetails, error) {
	v, err := c.get(ctx, "/addresses/balance/details/"+addr.String(), nil)
	if err != nil {
		return nil, err
	}
	d := &BalanceDetails{}
	if d.Address, err = readAddress(v.Get("address")); err != nil {
		return nil, err
	}
	if d.Regular, err = v.Get("regular").Uint64(); err != nil {
		return nil, err
	}
	if d.Generating, err = v.Get("generating").Uint64(); err != nil {
		return nil, err
	}
	if d.Available, err = v.Get("available").Uint64(); err != nil {
		return nil, err
	}
	if d.Effective, err = v.Get("effective").Uint64(); err != nil {
		return nil, err
	}
	return d, nil
}

func (c *NodeClient) Data(ctx context.Context, addr types.Address) ([]types.DataEntry, error) {
	v, err := c.get(ctx, "/addresses/data/"+addr.String(), nil)
	if err != nil {
		return nil, err
	}
	return types.ParseDataEntries(v)
}

// DataByRegex returns the entries whose keys match the regular expression.
func (c *NodeClient) DataByRegex(ctx context.Context, addr types.Address, regex string) ([]types.DataEntry, error) {
	v, err := c.get(ctx, "/addresses/data/"+addr.String(), url.Values{"matches": {regex}})
	if err != nil {
		return nil, err
	}
	return types.ParseDataEntries(v)
}

func (c *NodeClient) DataByKey(ctx context.Context, addr types.Address, key string) (types.DataEntry, error) {
	v, err := c.get(ctx, "/addresses/data/"+addr.String()+"/"+url.PathEscape(key), nil)
	if err != nil {
		return nil, err
	}
	return types.ParseDataEntry(v)
}

func (c *NodeClient) DataByKeys(ctx context.Context, addr types.Address, keys []string) ([]types.DataEntry, error) {
	v, err := c.post(ctx, "/addresses/data/"+addr.String(), jsonx.Object{"keys": keys})
	if err != nil {
		return nil, err
	}
	return types.ParseDataEntries(v)
}

func (c *NodeClient) ScriptInfo(ctx context.Context, addr types.Address) (*ScriptInfo, error) {
	v, err := c.get(ctx, "/addresses/scriptInfo/"+addr.String(), nil)
	if err != nil {
		return nil, err
	}
	info := &ScriptInfo{}
	if info.Address, err = readAddress(v.Get("address")); err != nil {
		return nil, err
	}
	if info.Script, err = readScript(v.Get("script")); err != nil {
		return nil, err
	}
	if info.ScriptText, _, err = v.Get("scriptText").OptString(); err != nil {
		return nil, err
	}
	version, err := v.Get("version").OptUint64(0)
	if err != nil {
		return nil, err
	}
	info.Version = uint8(version)
	if info.Complexity, err = v.Get("complexity").OptUint64(0); err != nil {
		return nil, err
	}
	if info.VerifierComplexity, err = v.Get("verifierComplexity").OptUint64(0); err != nil {
		return nil, err
	}
	if info.CallableComplexities, err = readComplexities(v.Get("callableComplexities")); err != nil {
		return nil, err
	}
	if info.ExtraFee, err = v.Get("extraFee").OptUint64(0); err != nil {
		return nil, err
	}
	return info, nil
}

func (c *NodeClient) ScriptMeta(ctx context.Context, addr types.Address) (*ScriptMeta, error) {
	v, err := c.get(ctx, "/addresses/scriptInfo/"+addr.String()+"/meta", nil)
	if err != nil {
		return nil, err
	}
	meta := &ScriptMeta{CallableFuncTypes: map[string][]ArgMeta{}}
	if meta.Address, err = readAddress(v.Get("address")); err != nil {
		return nil, err
	}
	m := v.Get("meta")
	if m.IsNull() {
		return meta, nil
	}
	if version := m.Get("version"); !version.IsNull() {
		if meta.MetaVersion, err = version.Int(); err != nil {
			return nil, err
		}
	}
	funcs := m.Get("callableFuncTypes")
	if funcs.IsNull() {
		return meta, nil
	}
	names, err := funcs.Keys()
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		args, err := parseEach(funcs.Get(name), func(a jsonx.Value) (ArgMeta, error) {
			var arg ArgMeta
			var err error
			if arg.Name, err = a.Get("name").String(); err != nil {
				return arg, err
			}
			arg.Type, err = a.Get("type").String()
			return arg, err
		})
		if err != nil {
			return nil, err
		}
		meta.CallableFuncTypes[name] = args
	}
	return meta, nil
}
