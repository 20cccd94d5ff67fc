package client

import (
	"context"

	"github.com/mezonai/wavesgo/jsonx"
)

// BlockchainRewards reports the mining reward state at the current height.
func (c *NodeClient) BlockchainRewards(ctx context.Context) (*BlockchainRewards, error) {
	v, err := c.get(ctx, "/blockchain/rewards", nil)
	if err != nil {
		return nil, err
	}
	return parseRewards(v)
}

func (c *NodeClient) BlockchainRewardsAt(ctx context.Context, height uint32) (*BlockchainRewards, error) {
	v, err := c.get(ctx, "/blockchain/rewards/"+pathUint(uint64(height)), nil)
	if err != nil {
		return nil, err
	}
	return parseRewards(v)
}

func parseRewards(v jsonx.Value) (*BlockchainRewards, error) {
	r := &BlockchainRewards{}
	u32 := []struct {
		key string
		dst *uint32
	}{
		{"height", &r.Height},
		{"term", &r.Term},
		{"nextCheck", &r.NextCheck},
		{"votingIntervalStart", &r.VotingIntervalStart},
		{"votingInterval", &r.VotingInterval},
		{"votingThreshold", &r.VotingThreshold},
	}
	for _, f := range u32 {
		n, err := readUint32(v.Get(f.key))
		if err != nil {
			return nil, err
		}
		*f.dst = n
	}
	u64 := []struct {
		key string
		dst *uint64
	}{
		{"totalWavesAmount", &r.TotalWavesAmount},
		{"currentReward", &r.CurrentReward},
		{"minIncrement", &r.MinIncrement},
	}
	for _, f := range u64 {
		n, err := v.Get(f.key).Uint64()
		if err != nil {
			return nil, err
		}
		*f.dst = n
	}
	votes := v.Get("votes")
	var err error
	if r.Votes.Increase, err = readUint32(votes.Get("increase")); err != nil {
		return nil, err
	}
	if r.Votes.Decrease, err = readUint32(votes.Get("decrease")); err != nil {
		return nil, err
	}
	return r, nil
}
