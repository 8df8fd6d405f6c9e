package server

import (
	"encoding/json"
	"sync"

	"golang.org/x/net/websocket"
)

// wsStream adapts a websocket connection to jsonrpc2.ObjectStream. Each
// object is one text frame.
type wsStream struct {
	conn *websocket.Conn
	wmu  sync.Mutex
}

// ReadObject receives the next frame and decodes it into v. A frame that is
// not valid JSON yields the decoding error and leaves the connection usable.
func (s *wsStream) ReadObject(v any) error {
	var data []byte
	if err := websocket.Message.Receive(s.conn, &data); err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func (s *wsStream) WriteObject(obj any) error {
	data, err := json.Marshal(obj)
	if err != nil {
		return err
	}
	s.wmu.Lock()
	defer s.wmu.Unlock()
	return websocket.Message.Send(s.conn, string(data))
}

func (s *wsStream) Close() error { return s.conn.Close() }
