package http1

import (
	"strconv"

	"github.com/smoky-web/smoky/http/status"
)

// The success path emits lower-cased header keys while the error path
// keeps the canonical casing. Conformant clients treat header names
// case-insensitively, so the historical difference is preserved as-is.
const (
	successHeaders = "content-type: text/plain\r\ncontent-length: "
	errorHeaders   = "Content-Type: text/plain\r\nContent-Length: 0\r\nConnection: close\r\n\r\n"
	protocol       = "HTTP/1.1 "
)

type Writer interface {
	Write([]byte) error
}

// Serializer renders responses into a reusable buffer and pushes them
// into a writer. A single instance serves a single connection.
type Serializer struct {
	buff []byte
}

func NewSerializer(buff []byte) *Serializer {
	return &Serializer{
		buff: buff[:0],
	}
}

// WriteSuccess sends a 200 OK carrying the body, with content-length set
// to the exact body length.
func (s *Serializer) WriteSuccess(body []byte, writer Writer) error {
	defer s.clear()

	s.renderStatusLine(status.OK)
	s.buff = append(s.buff, successHeaders...)
	s.buff = strconv.AppendInt(s.buff, int64(len(body)), 10)
	s.crlf()
	s.crlf()
	s.buff = append(s.buff, body...)

	return writer.Write(s.buff)
}

// WriteError sends a bodiless response for the status code.
func (s *Serializer) WriteError(code status.Code, writer Writer) error {
	defer s.clear()

	s.renderStatusLine(code)
	s.buff = append(s.buff, errorHeaders...)

	return writer.Write(s.buff)
}

func (s *Serializer) renderStatusLine(code status.Code) {
	s.buff = append(s.buff, protocol...)
	s.buff = strconv.AppendInt(s.buff, int64(code), 10)
	s.sp()
	s.buff = append(s.buff, status.Text(code)...)
	s.crlf()
}

func (s *Serializer) sp() {
	s.buff = append(s.buff, ' ')
}

func (s *Serializer) crlf() {
	s.buff = append(s.buff, '\r', '\n')
}

func (s *Serializer) clear() {
	s.buff = s.buff[:0]
}
