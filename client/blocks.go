package client

import (
	"context"

	"github.com/mezonai/wavesgo/jsonx"
	"github.com/mezonai/wavesgo/types"
)

func (c *NodeClient) Height(ctx context.Context) (uint32, error) {
	v, err := c.get(ctx, "/blocks/height", nil)
	if err != nil {
		return 0, err
	}
	return readUint32(v.Get("height"))
}

func (c *NodeClient) BlockHeightByID(ctx context.Context, id types.ID) (uint32, error) {
	v, err := c.get(ctx, "/blocks/height/"+id.String(), nil)
	if err != nil {
		return 0, err
	}
	return readUint32(v.Get("height"))
}

// HeightByTimestamp returns the height of the block that was current at ts (ms).
func (c *NodeClient) HeightByTimestamp(ctx context.Context, ts uint64) (uint32, error) {
	v, err := c.get(ctx, "/blocks/heightByTimestamp/"+pathUint(ts), nil)
	if err != nil {
		return 0, err
	}
	return readUint32(v.Get("height"))
}

// BlocksDelay returns the average delay in ms between count blocks ending at startID.
func (c *NodeClient) BlocksDelay(ctx context.Context, startID types.ID, count uint32) (uint64, error) {
	v, err := c.get(ctx, "/blocks/delay/"+startID.String()+"/"+pathUint(uint64(count)), nil)
	if err != nil {
		return 0, err
	}
	return v.Get("delay").Uint64()
}

func (c *NodeClient) BlockHeadersAt(ctx context.Context, height uint32) (*BlockHeader, error) {
	return c.blockHeader(ctx, "/blocks/headers/at/"+pathUint(uint64(height)))
}

func (c *NodeClient) BlockHeadersSeq(ctx context.Context, from, to uint32) ([]*BlockHeader, error) {
	v, err := c.get(ctx, "/blocks/headers/seq/"+pathUint(uint64(from))+"/"+pathUint(uint64(to)), nil)
	if err != nil {
		return nil, err
	}
	return parseEach(v, parseBlockHeader)
}

func (c *NodeClient) LastBlockHeaders(ctx context.Context) (*BlockHeader, error) {
	return c.blockHeader(ctx, "/blocks/headers/last")
}

func (c *NodeClient) BlockHeadersByID(ctx context.Context, id types.ID) (*BlockHeader, error) {
	return c.blockHeader(ctx, "/blocks/headers/"+id.String())
}

func (c *NodeClient) BlockAt(ctx context.Context, height uint32) (*Block, error) {
	return c.block(ctx, "/blocks/at/"+pathUint(uint64(height)))
}

func (c *NodeClient) BlocksSeq(ctx context.Context, from, to uint32) ([]*Block, error) {
	v, err := c.get(ctx, "/blocks/seq/"+pathUint(uint64(from))+"/"+pathUint(uint64(to)), nil)
	if err != nil {
		return nil, err
	}
	return parseEach(v, parseBlock)
}

func (c *NodeClient) BlockByID(ctx context.Context, id types.ID) (*Block, error) {
	return c.block(ctx, "/blocks/"+id.String())
}

func (c *NodeClient) LastBlock(ctx context.Context) (*Block, error) {
	return c.block(ctx, "/blocks/last")
}

// BlocksByAddress returns the blocks generated by addr between two heights.
func (c *NodeClient) BlocksByAddress(ctx context.Context, addr types.Address, from, to uint32) ([]*Block, error) {
	v, err := c.get(ctx, "/blocks/address/"+addr.String()+"/"+pathUint(uint64(from))+"/"+pathUint(uint64(to)), nil)
	if err != nil {
		return nil, err
	}
	return parseEach(v, parseBlock)
}

func (c *NodeClient) blockHeader(ctx context.Context, path string) (*BlockHeader, error) {
	v, err := c.get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	return parseBlockHeader(v)
}

func (c *NodeClient) block(ctx context.Context, path string) (*Block, error) {
	v, err := c.get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	return parseBlock(v)
}

func parseBlockHeader(v jsonx.Value) (*BlockHeader, error) {
	h := &BlockHeader{}
	version, err := v.Get("version").Uint64()
	if err != nil {
		return nil, err
	}
	h.Version = uint8(version)
	if h.Timestamp, err = v.Get("timestamp").Uint64(); err != nil {
		return nil, err
	}
	if h.Reference, err = readBase58(v.Get("reference")); err != nil {
		return nil, err
	}
	consensus := v.Get("nxt-consensus")
	if h.BaseTarget, err = consensus.Get("base-target").Uint64(); err != nil {
		return nil, err
	}
	if h.GenerationSignature, err = readBase58(consensus.Get("generation-signature")); err != nil {
		return nil, err
	}
	if h.TransactionsRoot, err = readBase58(v.Get("transactionsRoot")); err != nil {
		return nil, err
	}
	if h.ID, err = readID(v.Get("id")); err != nil {
		return nil, err
	}
	features, err := v.Get("features").OptArray()
	if err != nil {
		return nil, err
	}
	for _, f := range features {
		n, err := readUint32(f)
		if err != nil {
			return nil, err
		}
		h.Features = append(h.Features, n)
	}
	if d := v.Get("desiredReward"); !d.IsNull() {
		if h.DesiredReward, err = d.Int64(); err != nil {
			return nil, err
		}
	}
	if h.Generator, err = readAddress(v.Get("generator")); err != nil {
		return nil, err
	}
	if h.GeneratorPublicKey, err = readPublicKey(v.Get("generatorPublicKey")); err != nil {
		return nil, err
	}
	if h.Signature, err = readBase58(v.Get("signature")); err != nil {
		return nil, err
	}
	size, err := v.Get("blocksize").OptUint64(0)
	if err != nil {
		return nil, err
	}
	h.BlockSize = uint32(size)
	count, err := v.Get("transactionCount").OptUint64(0)
	if err != nil {
		return nil, err
	}
	h.TransactionCount = uint32(count)
	if h.Height, err = readUint32(v.Get("height")); err != nil {
		return nil, err
	}
	if h.TotalFee, err = v.Get("totalFee").OptUint64(0); err != nil {
		return nil, err
	}
	if h.Reward, err = v.Get("reward").OptUint64(0); err != nil {
		return nil, err
	}
	if h.VRF, err = readBase58(v.Get("VRF")); err != nil {
		return nil, err
	}
	return h, nil
}

func parseBlock(v jsonx.Value) (*Block, error) {
	header, err := parseBlockHeader(v)
	if err != nil {
		return nil, err
	}
	b := &Block{BlockHeader: *header}
	if b.Fee, err = v.Get("fee").OptUint64(0); err != nil {
		return nil, err
	}
	txs, err := v.Get("transactions").OptArray()
	if err != nil {
		return nil, err
	}
	b.Transactions, err = parseSlice(txs, parseSigned)
	if err != nil {
		return nil, err
	}
	return b, nil
}
