package testutil

import (
	"encoding/json"
	"io"
	"sync"
	"time"
)

// Stream is an in-memory jsonrpc2.ObjectStream. The code under test reads
// and writes it like a connection; the test plays the remote side with Send,
// Recv and Hangup.
type Stream struct {
	in        chan []byte
	out       chan []byte
	closed    chan struct{}
	closeOnce sync.Once
	hangOnce  sync.Once
}

// NewStream returns a new Stream.
func NewStream() *Stream {
	return &Stream{
		in:     make(chan []byte, 64),
		out:    make(chan []byte, 64),
		closed: make(chan struct{}),
	}
}

// ReadObject decodes the next message sent by the remote side. It returns
// io.EOF after Hangup or Close. A message that is not valid JSON yields the
// decoding error; the stream stays usable.
func (s *Stream) ReadObject(v any) error {
	select {
	case data, ok := <-s.in:
		if !ok {
			return io.EOF
		}
		return json.Unmarshal(data, v)
	case <-s.closed:
		return io.EOF
	}
}

// WriteObject sends v to the remote side as JSON.
func (s *Stream) WriteObject(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	select {
	case <-s.closed:
		return io.ErrClosedPipe
	default:
	}
	select {
	case s.out <- data:
		return nil
	case <-s.closed:
		return io.ErrClosedPipe
	}
}

// Close closes the local side.
func (s *Stream) Close() error {
	s.closeOnce.Do(func() { close(s.closed) })
	return nil
}

// Closed returns a channel that is closed when the local side is closed.
func (s *Stream) Closed() <-chan struct{} { return s.closed }

// Send sends a raw message from the remote side.
func (s *Stream) Send(raw string) { s.in <- []byte(raw) }

// SendJSON sends v, encoded as JSON, from the remote side.
func (s *Stream) SendJSON(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	s.in <- data
}

// Hangup disconnects the remote side. Reads return io.EOF once the messages
// already sent are consumed.
func (s *Stream) Hangup() {
	s.hangOnce.Do(func() { close(s.in) })
}

// Recv waits for the next message written by the code under test, failing
// the test after a timeout scaled by Scaled.
func (s *Stream) Recv(t Fataler, timeout time.Duration) []byte {
	t.Helper()
	select {
	case data := <-s.out:
		return data
	case <-time.After(Scaled(timeout)):
		t.Fatalf("timed out waiting for a message")
		return nil
	}
}

// TryRecv returns the next written message if there is one within the
// timeout, and false otherwise.
func (s *Stream) TryRecv(timeout time.Duration) ([]byte, bool) {
	select {
	case data := <-s.out:
		return data, true
	case <-time.After(Scaled(timeout)):
		return nil, false
	}
}
