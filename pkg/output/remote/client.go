package remote

import (
	"bytes"
	"image/png"
	"net/rpc"

	"github.com/Xenfo/swaylock-effects-improved/pkg/output"
	"github.com/Xenfo/swaylock-effects-improved/pkg/surface"
)

func New(addr string) (output.Output, error) {
	client, err := rpc.DialHTTP("tcp", addr)
	if err != nil {
		return nil, err
	}

	return &Client{rpc: client}, nil
}

type Client struct {
	rpc *rpc.Client
}

func (c *Client) Startup() error {
	return c.rpc.Call("Service.Command", "startup", nil)
}

func (c *Client) Shutdown() error {
	return c.rpc.Call("Service.Command", "shutdown", nil)
}

func (c *Client) Present(frame *surface.Surface) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, frame); err != nil {
		return err
	}

	return c.rpc.Call("Service.Present", &PresentRequest{
		Frame: buf.Bytes(),
	}, nil)
}
