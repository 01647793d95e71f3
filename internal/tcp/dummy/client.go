package dummy

import (
	"io"
	"net"

	"github.com/indigo-web/utils/unreader"
)

// StaticClient returns the chunks it was initialised with, one chunk per
// read-operation, and io.EOF after they are exhausted. Everything written
// into it is recorded and can be retrieved via Written.
type StaticClient struct {
	unreader *unreader.Unreader
	data     [][]byte
	written  []byte
	pointer  int
	closed   bool
}

func NewStaticClient(data ...[]byte) *StaticClient {
	return &StaticClient{
		unreader: new(unreader.Unreader),
		data:     data,
	}
}

func (s *StaticClient) Read() ([]byte, error) {
	if s.closed {
		return nil, io.EOF
	}

	return s.unreader.PendingOr(func() ([]byte, error) {
		if s.pointer == len(s.data) {
			return nil, io.EOF
		}

		chunk := s.data[s.pointer]
		s.pointer++

		return chunk, nil
	})
}

func (s *StaticClient) Unread(takeback []byte) {
	s.unreader.Unread(takeback)
}

func (s *StaticClient) Write(b []byte) error {
	s.written = append(s.written, b...)
	return nil
}

func (s *StaticClient) Written() []byte {
	return s.written
}

func (s *StaticClient) Closed() bool {
	return s.closed
}

func (s *StaticClient) Remote() net.Addr {
	return nil
}

func (s *StaticClient) Close() error {
	s.closed = true
	return nil
}

// NopClient always reports io.EOF on reads and swallows writes.
type NopClient struct{}

func NewNopClient() NopClient {
	return NopClient{}
}

func (NopClient) Read() ([]byte, error) {
	return nil, io.EOF
}

func (NopClient) Unread([]byte) {}

func (NopClient) Write([]byte) error {
	return nil
}

func (NopClient) Remote() net.Addr {
	return nil
}

func (NopClient) Close() error {
	return nil
}
