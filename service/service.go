// Package service implements the request contract shared by the HTTP server
// and the command line: SQL text in, one JSON payload out.
package service

import (
	"fmt"
	"strings"

	"github.com/shibukawa/sqlflat/flatten"
	"github.com/shibukawa/sqlflat/parser"
	"github.com/shibukawa/sqlflat/wire"
)

// MetaRequest is the body that asks for the wire schema instead of a parse.
const MetaRequest = "META"

// Response is the payload for one request. Errors repeats the parse errors
// contained in Payload.
type Response struct {
	Payload wire.Object
	Errors  []*parser.ParseError
}

// JSON encodes the payload.
func (r Response) JSON() ([]byte, error) {
	return wire.Marshal(r.Payload)
}

// Processor answers requests. It holds no state and is safe for concurrent use.
type Processor struct{}

// NewProcessor returns a Processor.
func NewProcessor() *Processor {
	return &Processor{}
}

// Process handles one request body. Structural problems of the SQL are part
// of the payload; a non-nil error means the tree could not be flattened.
func (p *Processor) Process(body string) (Response, error) {
	trimmed := strings.TrimSpace(body)
	switch trimmed {
	case "":
		return Response{Payload: wire.Empty()}, nil
	case MetaRequest:
		return Response{Payload: wire.Meta()}, nil
	}

	result := parser.Parse(body)
	if len(result.Errors) > 0 {
		return Response{Payload: wire.Errors(result.Errors), Errors: result.Errors}, nil
	}

	nodes, err := flatten.New(result.Tokens).Flatten(result.Script)
	if err != nil {
		return Response{}, fmt.Errorf("flatten: %w", err)
	}
	return Response{Payload: wire.Tree(nodes, result.Tokens)}, nil
}
