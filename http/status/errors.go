package status

type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	ErrBadRequest           = NewError(BadRequest, "bad request")
	ErrMalformedRequestLine = NewError(BadRequest, "request line must consist of exactly three space-separated tokens")
	ErrMethodNotRecognized  = NewError(BadRequest, "request method is not recognized")
	ErrUnsupportedProtocol  = NewError(BadRequest, "protocol is not supported")
	ErrMalformedHeaderLine  = NewError(BadRequest, "header line must be a colon-separated key-value pair")
	ErrEmptyHeaderKey       = NewError(BadRequest, "empty header key")
	ErrEmptyHeaderValue     = NewError(BadRequest, "empty header value")
	ErrBadEncoding          = NewError(BadRequest, "bad request encoding")
	ErrBadContentLength     = NewError(BadRequest, "content-length value must be a non-negative integer")
	ErrTooLongLine          = NewError(BadRequest, "line is too long")

	// the Host invariants and a body shorter than the declared
	// content-length all report 413. The reuse is kept intact for wire
	// compatibility with prior deployments.
	ErrNoHostHeader   = NewError(EntityTooLarge, "request has no host header")
	ErrDuplicateHost  = NewError(EntityTooLarge, "request can have at most one host header")
	ErrIncompleteBody = NewError(EntityTooLarge, "stream ended before the declared content-length was read")

	ErrInternalServerError = NewError(InternalServerError, "internal server error")
)
