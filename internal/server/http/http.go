package http

import (
	"errors"
	"log"

	json "github.com/json-iterator/go"
	"github.com/smoky-web/smoky/config"
	"github.com/smoky-web/smoky/http"
	"github.com/smoky-web/smoky/http/status"
	parser "github.com/smoky-web/smoky/internal/parser/http1"
	"github.com/smoky-web/smoky/internal/tcp"
	transport "github.com/smoky-web/smoky/internal/transport/http1"
)

// NoBody is what the echo payload carries instead of a body when the
// request didn't have one.
const NoBody = "$NONE"

// echo mirrors the parsed request back at the client. It lives solely for
// the duration of one response.
type echo struct {
	Method  string  `json:"method"`
	Version float64 `json:"version"`
	Path    string  `json:"path"`
	Body    string  `json:"body"`
}

type Server struct {
	cfg *config.Config
}

func NewServer(cfg *config.Config) *Server {
	return &Server{
		cfg: cfg,
	}
}

// Run serves exactly one request off the client: parse, echo, respond.
// Any protocol error short-circuits into an error response. The
// connection is closed on the way out no matter what happened before.
func (s *Server) Run(client tcp.Client) {
	p := parser.NewParser(client, s.cfg)
	serializer := transport.NewSerializer(make([]byte, s.cfg.NET.WriteBufferSize))

	if err := s.serve(client, p, serializer); err != nil {
		s.respondError(client, serializer, err)
	}

	_ = client.Close()
}

func (s *Server) serve(client tcp.Client, p *parser.Parser, serializer *transport.Serializer) error {
	line, err := p.ParseRequestLine()
	if err != nil {
		return err
	}

	headers, err := p.ParseHeaders()
	if err != nil {
		return err
	}

	body, err := p.ReadBody(headers)
	if err != nil {
		return err
	}

	request := &http.Request{
		Line:    line,
		Headers: headers,
		Body:    body,
	}

	payload, err := json.ConfigDefault.Marshal(newEcho(request))
	if err != nil {
		return status.ErrInternalServerError
	}

	return serializer.WriteSuccess(payload, client)
}

func newEcho(request *http.Request) echo {
	body := NoBody
	if request.Body != nil {
		body = string(request.Body)
	}

	return echo{
		Method:  request.Line.Method.String(),
		Version: request.Line.Proto.Version(),
		Path:    request.Line.Path,
		Body:    body,
	}
}

// respondError is the sole recovery point of the pipeline: the error is
// logged once, converted into a wire-level response and discarded.
// Failures outside of the protocol taxonomy fall back to 500.
func (s *Server) respondError(client tcp.Client, serializer *transport.Serializer, err error) {
	var httpErr status.HTTPError
	if !errors.As(err, &httpErr) {
		httpErr = status.HTTPError{
			Code:    status.InternalServerError,
			Message: err.Error(),
		}
	}

	log.Printf("%d %s - %s", httpErr.Code, status.Text(httpErr.Code), httpErr.Message)
	_ = serializer.WriteError(httpErr.Code, client)
}
