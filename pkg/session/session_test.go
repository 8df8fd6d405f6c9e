package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"src.jubako.dev/pkg/render"
	"src.jubako.dev/pkg/testutil"
	"src.jubako.dev/pkg/vdom"
)

type incr struct{}
type noop struct{}

type counter struct {
	n            int
	ctx          *Context
	updated      chan vdom.Msg
	disconnected atomic.Bool
}

func (c *counter) Update(msg vdom.Msg) DirtyFlag {
	defer func() { c.updated <- msg }()
	if _, ok := msg.(incr); ok {
		c.n++
		return ShouldRender
	}
	return NoRender
}

func (c *counter) View() vdom.Node {
	return vdom.El("div",
		vdom.Textf("%d", c.n),
		vdom.El("button", vdom.Text("+")).WithHandlers(vdom.Handlers{
			Click: vdom.Handle(func(vdom.MouseEvent) incr { return incr{} }),
		}),
	)
}

func (c *counter) Disconnected() { c.disconnected.Store(true) }

func newCounter() (Creator, *counter) {
	c := &counter{updated: make(chan vdom.Msg, 16)}
	return CreatorFunc(func(ctx *Context) App {
		c.ctx = ctx
		return c
	}), c
}

func waitUpdate(t *testing.T, c *counter) vdom.Msg {
	t.Helper()
	select {
	case msg := <-c.updated:
		return msg
	case <-time.After(testutil.Scaled(time.Second)):
		t.Fatal("timed out waiting for an update")
		return nil
	}
}

// waitDirty waits until the update loop has marked the view dirty.
func waitDirty(t *testing.T, s *Session) {
	t.Helper()
	deadline := time.Now().Add(testutil.Scaled(time.Second))
	for !s.dirty.Load() {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for the view to become dirty")
		}
		time.Sleep(time.Millisecond)
	}
}

func serve(t *testing.T, s *Session) (*testutil.Stream, <-chan error) {
	t.Helper()
	stream := testutil.NewStream()
	errCh := make(chan error, 1)
	go func() { errCh <- s.Serve(context.Background(), stream) }()
	t.Cleanup(func() { stream.Hangup() })
	return stream, errCh
}

func waitServe(t *testing.T, errCh <-chan error) error {
	t.Helper()
	select {
	case err := <-errCh:
		return err
	case <-time.After(testutil.Scaled(time.Second)):
		t.Fatal("timed out waiting for Serve to return")
		return nil
	}
}

// batchJSON is the shape of a batch on the wire.
type batchJSON struct {
	Main    []json.RawMessage `json:"main"`
	Portals []json.RawMessage `json:"portals"`
	Styles  []json.RawMessage `json:"styles"`
}

func recvBatch(t *testing.T, stream *testutil.Stream) batchJSON {
	t.Helper()
	var b batchJSON
	if err := json.Unmarshal(stream.Recv(t, time.Second), &b); err != nil {
		t.Fatal(err)
	}
	return b
}

func TestSession_CounterOverStream(t *testing.T) {
	creator, app := newCounter()
	s := New(creator, Options{Route: "counter"})
	stream, errCh := serve(t, s)

	stream.SendJSON(DrawRequest)
	first := recvBatch(t, stream)
	if len(first.Main) != 1 || len(first.Styles) != 0 {
		t.Fatalf("first batch = %+v", first)
	}

	id := s.Snapshot().Main[0].Children[1].HandleID
	stream.Send(fmt.Sprintf(`{"handle_id": %q, "kind": {"type": "Click", "content": {}}}`, id))
	if msg := waitUpdate(t, app); msg != (incr{}) {
		t.Fatalf("got message %v, want incr{}", msg)
	}
	waitDirty(t, s)

	stream.SendJSON(DrawRequest)
	second := recvBatch(t, stream)
	want := `{"type":"UpdateElement","content":{"index":0,"class_diff":[],"props_diff":[],` +
		`"event_diff":{"type":"None"},"children":[{"type":"UpdateText","content":{"index":0,"new_text":"1"}}]}}`
	if len(second.Main) != 1 || string(second.Main[0]) != want {
		t.Errorf("second batch main = %s, want [%s]", second.Main, want)
	}

	stream.Hangup()
	if err := waitServe(t, errCh); err != nil {
		t.Errorf("Serve -> %v, want nil", err)
	}
	if !app.disconnected.Load() {
		t.Error("Disconnected not called")
	}
	if err := app.ctx.Dispatch(incr{}); !errors.Is(err, ErrClosed) {
		t.Errorf("Dispatch after end -> %v, want ErrClosed", err)
	}
	select {
	case <-app.ctx.Done():
	default:
		t.Error("Context.Done not closed after end")
	}
}

func TestSession_CleanDrawSendsNothing(t *testing.T) {
	creator, app := newCounter()
	s := New(creator, Options{})
	stream, _ := serve(t, s)

	stream.SendJSON(DrawRequest)
	recvBatch(t, stream)
	// A message that does not change the view.
	if err := app.ctx.Dispatch(noop{}); err != nil {
		t.Fatal(err)
	}
	waitUpdate(t, app)
	stream.SendJSON(DrawRequest)
	if data, ok := stream.TryRecv(50 * time.Millisecond); ok {
		t.Errorf("clean draw sent %s", data)
	}
}

func TestSession_DropsMalformedInput(t *testing.T) {
	creator, _ := newCounter()
	s := New(creator, Options{})
	stream, errCh := serve(t, s)

	for _, raw := range []string{
		`not json`,
		`42`,
		`"REDRAW"`,
		`{"handle_id": "x"}`,
		`{"handle_id": "x", "kind": "Explode"}`,
		`{"handle_id": "stale", "kind": "Click", "payload": {}}`,
	} {
		stream.Send(raw)
	}
	stream.SendJSON(DrawRequest)
	if b := recvBatch(t, stream); len(b.Main) != 1 {
		t.Errorf("draw after malformed input -> %+v", b)
	}
	select {
	case err := <-errCh:
		t.Errorf("Serve returned %v early", err)
	default:
	}
}

func TestSession_ContextCancel(t *testing.T) {
	creator, app := newCounter()
	s := New(creator, Options{})
	stream := testutil.NewStream()
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- s.Serve(ctx, stream) }()
	cancel()
	if err := waitServe(t, errCh); err != nil {
		t.Errorf("Serve -> %v, want nil", err)
	}
	if !app.disconnected.Load() {
		t.Error("Disconnected not called")
	}
}

func TestSession_Draw(t *testing.T) {
	creator, app := newCounter()
	s := New(creator, Options{})
	s.startUpdateLoop()
	defer s.Close()

	if _, ok := s.Draw(); !ok {
		t.Fatal("first Draw did not render")
	}
	if _, ok := s.Draw(); ok {
		t.Error("second Draw rendered a clean view")
	}
	app.ctx.Dispatch(incr{})
	waitUpdate(t, app)
	waitDirty(t, s)
	b, ok := s.Draw()
	if !ok {
		t.Fatal("Draw after update did not render")
	}
	want := []render.Command{render.UpdateElement{Index: 0, Children: []render.Command{
		render.UpdateText{Index: 0, NewText: "1"},
	}}}
	if diff := cmp.Diff(want, b.Main); diff != "" {
		t.Errorf("main commands (-want +got):\n%s", diff)
	}

	info := s.Info()
	if info.Dirty || info.Handles != 1 || info.Cycles != 2 {
		t.Errorf("Info() = %+v", info)
	}
}

func TestSession_MessagesApplyInOrder(t *testing.T) {
	creator, app := newCounter()
	s := New(creator, Options{})
	for i := 0; i < 10; i++ {
		app.ctx.Dispatch(i)
	}
	s.startUpdateLoop()
	defer s.Close()
	for i := 0; i < 10; i++ {
		if msg := waitUpdate(t, app); msg != i {
			t.Fatalf("update %d got %v", i, msg)
		}
	}
}

func TestSession_SendAfterEndIsFatal(t *testing.T) {
	creator, _ := newCounter()
	s := New(creator, Options{})
	s.Draw()
	id := s.Snapshot().Main[0].Children[1].HandleID
	// The queue stops accepting messages before the handlers are released.
	s.q.close()
	err := s.HandleEvent(json.RawMessage(fmt.Sprintf(`{"handle_id": %q, "kind": "Click"}`, id)))
	if !errors.Is(err, ErrClosed) {
		t.Errorf("HandleEvent -> %v, want ErrClosed", err)
	}
}
