package client

import "context"

func (c *NodeClient) NodeVersion(ctx context.Context) (string, error) {
	v, err := c.get(ctx, "/node/version", nil)
	if err != nil {
		return "", err
	}
	return v.Get("version").String()
}
