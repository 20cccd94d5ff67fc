package client

import (
	"context"
	"net/url"
	"strconv"
)

// CompileScript compiles Ride source on the node. compact shortens identifiers in the result.
func (c *NodeClient) CompileScript(ctx context.Context, source string, compact bool) (*CompiledScript, error) {
	query := url.Values{"compact": {strconv.FormatBool(compact)}}
	v, err := c.postText(ctx, "/utils/script/compileCode", query, source)
	if err != nil {
		return nil, err
	}
	s := &CompiledScript{}
	if s.Script, err = readScript(v.Get("script")); err != nil {
		return nil, err
	}
	if s.Complexity, err = v.Get("complexity").OptUint64(0); err != nil {
		return nil, err
	}
	if s.VerifierComplexity, err = v.Get("verifierComplexity").OptUint64(0); err != nil {
		return nil, err
	}
	if s.CallableComplexities, err = readComplexities(v.Get("callableComplexities")); err != nil {
		return nil, err
	}
	if s.ExtraFee, err = v.Get("extraFee").OptUint64(0); err != nil {
		return nil, err
	}
	return s, nil
}
