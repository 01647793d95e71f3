package http1

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/indigo-web/utils/buffer"
	"github.com/indigo-web/utils/uf"
	"github.com/smoky-web/smoky/config"
	"github.com/smoky-web/smoky/http"
	"github.com/smoky-web/smoky/http/method"
	"github.com/smoky-web/smoky/http/proto"
	"github.com/smoky-web/smoky/http/status"
	"github.com/smoky-web/smoky/internal/tcp"
	"github.com/smoky-web/smoky/kv"
)

const host = "host"

// Parser consumes the request byte stream stage by stage: request line,
// then the header block, then the sized body. Each stage either returns
// a value or a status.HTTPError; the first failure invalidates the rest
// of the stream.
type Parser struct {
	client   tcp.Client
	lineBuff *buffer.Buffer
	headers  *kv.Storage
	hostSeen bool
}

func NewParser(client tcp.Client, cfg *config.Config) *Parser {
	return &Parser{
		client: client,
		lineBuff: buffer.New(
			cfg.Headers.LineSize.Default,
			cfg.Headers.LineSize.Maximal,
		),
		headers: kv.NewPrealloc(cfg.Headers.Number.Default),
	}
}

// ParseRequestLine reads the first CRLF-terminated line of the stream and
// splits it on single spaces into exactly three tokens: method, path and
// the protocol marker. The path is left untouched.
func (p *Parser) ParseRequestLine() (http.RequestLine, error) {
	line, err := p.readLine()
	if err != nil {
		return http.RequestLine{}, err
	}

	line, ok := cutCR(line)
	if !ok {
		return http.RequestLine{}, status.ErrMalformedRequestLine
	}

	tokens := bytes.Split(line, []byte(" "))
	if len(tokens) != 3 {
		return http.RequestLine{}, status.ErrMalformedRequestLine
	}

	m := method.Parse(uf.B2S(tokens[0]))
	if m == method.Unknown {
		return http.RequestLine{}, status.ErrMethodNotRecognized
	}

	protocol := proto.Parse(uf.B2S(tokens[2]))
	if protocol == proto.Unknown {
		return http.RequestLine{}, status.ErrUnsupportedProtocol
	}

	return http.RequestLine{
		Method: m,
		Proto:  protocol,
		Path:   uf.B2S(tokens[1]),
	}, nil
}

// ParseHeaders reads header lines up to and including the bare CRLF
// terminating the block. Keys and values are trimmed and lower-cased.
// Exactly one Host header must be seen: none or more than one violates
// the framing contract.
func (p *Parser) ParseHeaders() (*kv.Storage, error) {
	for {
		line, err := p.readLine()
		if err != nil {
			return nil, err
		}

		if len(line) == 1 && line[0] == '\r' {
			break
		}

		if err = p.parseHeaderLine(line); err != nil {
			return nil, err
		}
	}

	if !p.hostSeen {
		return nil, status.ErrNoHostHeader
	}

	return p.headers, nil
}

func (p *Parser) parseHeaderLine(line []byte) error {
	line, ok := cutCR(line)
	if !ok {
		return status.ErrMalformedHeaderLine
	}

	colon := bytes.IndexByte(line, ':')
	if colon == -1 {
		return status.ErrMalformedHeaderLine
	}

	if !utf8.Valid(line) {
		return status.ErrBadEncoding
	}

	key := strings.ToLower(strings.TrimSpace(uf.B2S(line[:colon])))
	if len(key) == 0 {
		return status.ErrEmptyHeaderKey
	}

	value := strings.ToLower(strings.TrimSpace(uf.B2S(line[colon+1:])))
	if len(value) == 0 {
		return status.ErrEmptyHeaderValue
	}

	if key == host {
		if p.hostSeen {
			return status.ErrDuplicateHost
		}

		p.hostSeen = true
	}

	p.headers.Set(key, value)

	return nil
}

// readLine assembles a single line from however many reads it takes,
// giving the bytes past the line feed back to the client. The returned
// line excludes the line feed but keeps the carriage return, so callers
// can tell a proper CRLF terminator from a bare LF.
func (p *Parser) readLine() ([]byte, error) {
	for {
		data, err := p.client.Read()
		if err != nil {
			return nil, err
		}

		lf := bytes.IndexByte(data, '\n')
		if lf == -1 {
			if !p.lineBuff.Append(data) {
				return nil, status.ErrTooLongLine
			}

			continue
		}

		if !p.lineBuff.Append(data[:lf]) {
			return nil, status.ErrTooLongLine
		}

		p.client.Unread(data[lf+1:])

		return p.lineBuff.Finish(), nil
	}
}

// cutCR strips the trailing carriage return, reporting whether there was
// one to strip. Lines terminated by a bare LF are not well-formed.
func cutCR(line []byte) ([]byte, bool) {
	if len(line) == 0 || line[len(line)-1] != '\r' {
		return line, false
	}

	return line[:len(line)-1], true
}
