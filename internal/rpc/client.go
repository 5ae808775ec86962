package rpc

import (
	"context"
	"encoding/json"
	"time"

	"stayhub/internal/pkg/errs"
	"stayhub/internal/transport"
)

// Client is a typed façade bound to one destination service. It delegates to
// the underlying link without retry, backoff or circuit breaking: any failure
// surfaces immediately to the caller.
type Client struct {
	link    *transport.Link
	timeout time.Duration
}

// NewClient wraps a link. A non-zero timeout caps every Call that does not
// already carry a tighter deadline, so an unresponsive remote cannot suspend
// the caller forever.
func NewClient(link *transport.Link, timeout time.Duration) *Client {
	return &Client{
		link:    link,
		timeout: timeout,
	}
}

func (c *Client) Call(ctx context.Context, pattern string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return errs.Wrap(err, "failed to marshal request payload")
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	reply, err := c.link.Request(ctx, pattern, payload)
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(reply, out); err != nil {
		return errs.Wrap(err, "failed to unmarshal reply payload")
	}
	return nil
}

func (c *Client) Notify(pattern string, in any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return errs.Wrap(err, "failed to marshal event payload")
	}
	return c.link.Emit(pattern, payload)
}
