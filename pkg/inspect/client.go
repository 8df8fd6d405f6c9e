package inspect

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/sourcegraph/jsonrpc2"

	"src.jubako.dev/pkg/render"
	"src.jubako.dev/pkg/session"
)

// ErrNoSession is returned by Client.Tree for a session id that is not live.
var ErrNoSession = errors.New("no such session")

// Client talks to the inspection service of a running server.
type Client struct {
	conn *jsonrpc2.Conn
}

// Dial connects to the inspection service listening on the UNIX socket at
// path.
func Dial(ctx context.Context, path string) (*Client, error) {
	var d net.Dialer
	nc, err := d.DialContext(ctx, "unix", path)
	if err != nil {
		return nil, err
	}
	// The service never calls the client.
	conn := jsonrpc2.NewConn(context.Background(),
		jsonrpc2.NewBufferedStream(nc, jsonrpc2.VSCodeObjectCodec{}),
		routingHandler(nil))
	return &Client{conn}, nil
}

// Close closes the connection.
func (c *Client) Close() error { return c.conn.Close() }

// Sessions lists the live sessions of the server.
func (c *Client) Sessions(ctx context.Context) ([]session.Info, error) {
	var infos []session.Info
	err := c.conn.Call(ctx, "sessions", nil, &infos)
	return infos, err
}

// Tree returns the retained render trees of the session with the given id.
func (c *Client) Tree(ctx context.Context, id string) (render.Snapshot, error) {
	var snap render.Snapshot
	err := c.conn.Call(ctx, "tree", TreeParams{ID: id}, &snap)
	var rpcErr *jsonrpc2.Error
	if errors.As(err, &rpcErr) && rpcErr.Code == CodeNoSession {
		return render.Snapshot{}, fmt.Errorf("%w: %s", ErrNoSession, id)
	}
	return snap, err
}
