package http

import (
	"github.com/smoky-web/smoky/http/method"
	"github.com/smoky-web/smoky/http/proto"
	"github.com/smoky-web/smoky/kv"
)

// RequestLine is the parsed first line of a request. It is constructed
// once per connection and never mutated afterwards.
type RequestLine struct {
	Method method.Method
	Proto  proto.Proto
	// Path is kept byte-for-byte as it appeared on the wire. No decoding
	// or normalization is applied.
	Path string
}

// Request is a fully parsed request. All fields are owned exclusively
// by the connection that produced them.
type Request struct {
	Line    RequestLine
	Headers *kv.Storage
	// Body holds exactly content-length bytes, or nil when the request
	// carried none.
	Body []byte
}
