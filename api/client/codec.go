package client

import "fmt"

// codecName keeps the content-type at application/grpc+proto, which the
// node expects.
const codecName = "proto"

// Codec implements grpc/encoding.Codec for the pb.Node messages without
// generated protobuf code.
type Codec struct{}

func (Codec) Marshal(v any) ([]byte, error) {
	m, ok := v.(wireMessage)
	if !ok {
		return nil, fmt.Errorf("marshal: unsupported message %T", v)
	}
	return m.marshal(), nil
}

func (Codec) Unmarshal(data []byte, v any) error {
	m, ok := v.(wireMessage)
	if !ok {
		return fmt.Errorf("unmarshal: unsupported message %T", v)
	}
	if err := m.unmarshal(data); err != nil {
		return fmt.Errorf("unmarshal %T: %w", v, err)
	}
	return nil
}

func (Codec) Name() string { return codecName }
