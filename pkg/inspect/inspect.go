// Package inspect implements a JSON-RPC 2.0 service for looking into a running
// server, and the client and subprogram that use it.
//
// The service listens on a UNIX socket and supports two methods: "sessions",
// which lists the live sessions, and "tree", which returns the retained
// render trees of one session.
package inspect

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"os"
	"sync"

	"github.com/sourcegraph/jsonrpc2"

	"src.jubako.dev/pkg/logutil"
	"src.jubako.dev/pkg/render"
	"src.jubako.dev/pkg/session"
)

var logger = logutil.GetLogger("[inspect] ")

// CodeNoSession is the JSON-RPC error code for a session id that is not live.
const CodeNoSession int64 = -32001

var (
	errMethodNotFound = &jsonrpc2.Error{
		Code: jsonrpc2.CodeMethodNotFound, Message: "method not found"}
	errInvalidParams = &jsonrpc2.Error{
		Code: jsonrpc2.CodeInvalidParams, Message: "invalid params"}
	errNoSession = &jsonrpc2.Error{
		Code: CodeNoSession, Message: "no such session"}
)

// Source is what the service inspects. It is implemented by *server.Server.
type Source interface {
	Sessions() []session.Info
	Tree(id string) (render.Snapshot, bool)
}

// TreeParams are the params of the "tree" method.
type TreeParams struct {
	ID string `json:"id"`
}

// ErrInUse is returned by Listen when another process serves on the socket.
var ErrInUse = errors.New("socket is in use")

// Listen listens on the UNIX socket at path, accessible only by the current
// user. A stale socket file left by a process that has exited is removed.
func Listen(path string) (net.Listener, error) {
	if _, err := os.Lstat(path); err == nil {
		if conn, err := net.Dial("unix", path); err == nil {
			conn.Close()
			return nil, ErrInUse
		}
		logger.Info("removing stale socket", "path", path)
		if err := os.Remove(path); err != nil {
			return nil, err
		}
	}
	return listenPrivate(path)
}

// Serve serves the inspection service on l until ctx is done, then closes l
// and every client connection. It returns nil when stopped by ctx.
func Serve(ctx context.Context, l net.Listener, src Source) error {
	h := handler(&service{src})
	stop := context.AfterFunc(ctx, func() { l.Close() })
	defer stop()

	var (
		mu    sync.Mutex
		conns = make(map[*jsonrpc2.Conn]struct{})
		wg    sync.WaitGroup
	)
	var err error
	for {
		var nc net.Conn
		nc, err = l.Accept()
		if err != nil {
			break
		}
		conn := jsonrpc2.NewConn(ctx,
			jsonrpc2.NewBufferedStream(nc, jsonrpc2.VSCodeObjectCodec{}), h)
		mu.Lock()
		conns[conn] = struct{}{}
		mu.Unlock()
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-conn.DisconnectNotify()
			mu.Lock()
			delete(conns, conn)
			mu.Unlock()
		}()
	}

	mu.Lock()
	logger.Debug("closing client connections", "n", len(conns))
	for conn := range conns {
		// The client may have closed it already; nothing to do either way.
		conn.Close()
	}
	mu.Unlock()
	wg.Wait()
	if ctx.Err() != nil {
		return nil
	}
	return err
}

type method func(context.Context, json.RawMessage) (any, error)

func handler(s *service) jsonrpc2.Handler {
	return routingHandler(map[string]method{
		"sessions": s.sessions,
		"tree":     s.tree,
	})
}

func routingHandler(methods map[string]method) jsonrpc2.Handler {
	return jsonrpc2.HandlerWithError(func(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
		fn, ok := methods[req.Method]
		if !ok {
			return nil, errMethodNotFound
		}
		var params json.RawMessage
		if req.Params != nil {
			params = *req.Params
		}
		return fn(ctx, params)
	})
}

// Handler implementations. These are all called synchronously.

type service struct {
	src Source
}

func (s *service) sessions(context.Context, json.RawMessage) (any, error) {
	infos := s.src.Sessions()
	if infos == nil {
		infos = []session.Info{}
	}
	return infos, nil
}

func (s *service) tree(_ context.Context, rawParams json.RawMessage) (any, error) {
	var params TreeParams
	if rawParams == nil || json.Unmarshal(rawParams, &params) != nil || params.ID == "" {
		return nil, errInvalidParams
	}
	snap, ok := s.src.Tree(params.ID)
	if !ok {
		return nil, errNoSession
	}
	return snap, nil
}
