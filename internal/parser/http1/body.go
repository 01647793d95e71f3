package http1

import (
	"strconv"

	"github.com/smoky-web/smoky/http/status"
	"github.com/smoky-web/smoky/kv"
)

const contentLength = "content-length"

// maxBodyPrealloc caps how much the declared content-length may
// pre-allocate. The declared value is untrusted: anything beyond the cap
// is allocated only as the bytes actually arrive.
const maxBodyPrealloc = 64 * 1024

// ReadBody resolves the body length from the headers and reads exactly
// that many bytes off the stream. A missing content-length counts as
// zero; zero means no body at all, reported as a nil slice. The stream
// ending early is a framing violation and maps to 413.
func (p *Parser) ReadBody(headers *kv.Storage) ([]byte, error) {
	raw := headers.ValueOr(contentLength, "0")
	if !isDigits(raw) {
		return nil, status.ErrBadContentLength
	}

	length, err := strconv.Atoi(raw)
	if err != nil {
		// all-digits but beyond the int range
		return nil, status.ErrBadContentLength
	}

	if length <= 0 {
		return nil, nil
	}

	prealloc := length
	if prealloc > maxBodyPrealloc {
		prealloc = maxBodyPrealloc
	}

	body := make([]byte, 0, prealloc)

	for len(body) < length {
		data, err := p.client.Read()
		if err != nil {
			return nil, status.ErrIncompleteBody
		}

		take := length - len(body)
		if take > len(data) {
			take = len(data)
		}

		body = append(body, data[:take]...)
		p.client.Unread(data[take:])
	}

	return body, nil
}

func isDigits(str string) bool {
	if len(str) == 0 {
		return false
	}

	for i := 0; i < len(str); i++ {
		if str[i] < '0' || str[i] > '9' {
			return false
		}
	}

	return true
}
