package proto

type Proto uint8

const (
	Unknown Proto = iota
	HTTP11
)

const token = "HTTP/1.1"

// Parse accepts solely the literal HTTP/1.1 token. Every other version
// marker, including HTTP/1.0, is Unknown.
func Parse(str string) Proto {
	if str == token {
		return HTTP11
	}

	return Unknown
}

func (p Proto) String() string {
	if p == HTTP11 {
		return token
	}

	return ""
}

// Version returns the numeric protocol version as it appears in the
// echo payload.
func (p Proto) Version() float64 {
	if p == HTTP11 {
		return 1.1
	}

	return 0
}
