package status

type (
	Code   uint16
	Status string
)

// The registry is deliberately closed: these are the only codes the
// pipeline is allowed to put on the wire.
const (
	OK                  Code = 200 // RFC 9110, 15.3.1
	BadRequest          Code = 400 // RFC 9110, 15.5.1
	EntityTooLarge      Code = 413 // RFC 9110, 15.5.14
	InternalServerError Code = 500 // RFC 9110, 15.6.1
)

// Text returns a reason phrase for the status code. Asking for a code
// outside of the registry is a programming error, so the returned
// placeholder is never meant to reach a client.
func Text(code Code) Status {
	switch code {
	case OK:
		return "OK"
	case BadRequest:
		return "Bad Request"
	case EntityTooLarge:
		return "Entity Too Large"
	case InternalServerError:
		return "Internal Server Error"
	default:
		return "Unknown Status Code"
	}
}
