package grpc

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// The loan service speaks JSON over gRPC framing: clients dial with the
// "json" content-subtype (content-type application/grpc+json). Generated
// protobuf stubs are not committed in this repo; api/loan/v1/loan.proto
// documents the schema.
const codecName = "json"

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error)   { return json.Marshal(v) }
func (jsonCodec) Unmarshal(b []byte, v any) error { return json.Unmarshal(b, v) }
func (jsonCodec) Name() string                    { return codecName }

func init() { encoding.RegisterCodec(jsonCodec{}) }
