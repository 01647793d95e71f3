package config

type (
	HeadersNumber struct {
		// Default is the initial capacity of the headers storage.
		Default int
	}

	LineSize struct {
		Default, Maximal int
	}
)

type (
	NET struct {
		// Host is the address the listening socket binds to.
		Host string
		// Port is the port the listening socket binds to.
		Port uint16
		// ReadBufferSize is a size of the buffer in bytes which will be used
		// to read from the socket.
		ReadBufferSize int
		// WriteBufferSize stores the serialized HTTP response, which is going
		// to be transmitted.
		WriteBufferSize int
	}

	Headers struct {
		// Number is responsible for the headers storage prealloc.
		Number HeadersNumber
		// LineSize bounds a single CRLF-terminated line: the request line
		// and each header line. This is the only length limit the parser
		// enforces.
		LineSize LineSize
	}
)

// Config holds settings used across various parts of smoky, mainly restrictions
// and pre-allocations. There are no ambient process-wide settings: an instance
// is passed once into the application and stays immutable for its lifetime.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to
// initialize the config manually, because most likely this will result in
// ambiguous errors.
type Config struct {
	NET     NET
	Headers Headers
}

// Default returns the default config.
func Default() *Config {
	return &Config{
		NET: NET{
			Host:            "127.0.0.1",
			Port:            9999,
			ReadBufferSize:  2 * 1024,
			WriteBufferSize: 1024,
		},
		Headers: Headers{
			Number: HeadersNumber{
				Default: 10,
			},
			LineSize: LineSize{
				Default: 1 * 1024,
				Maximal: 16 * 1024,
			},
		},
	}
}
