package codec

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

type Protobuf[T proto.Message] struct {
	new func() T // constructor for a concrete message (e.g., func() *structpb.ListValue { return &structpb.ListValue{} })
}

func NewProtobuf[T proto.Message](ctor func() T) Protobuf[T] {
	return Protobuf[T]{new: ctor}
}

func (c Protobuf[T]) Encode(v T) ([]byte, error) {
	return proto.Marshal(v)
}
func (c Protobuf[T]) Decode(b []byte) (T, error) {
	m := c.new()
	err := proto.Unmarshal(b, m)
	return m, err
}

// Candidates stores a candidate list as a protobuf ListValue of strings,
// which keeps cached entries readable by any protobuf runtime without a
// generated schema.
type Candidates struct{}

var listValue = NewProtobuf(func() *structpb.ListValue { return &structpb.ListValue{} })

func (Candidates) Encode(v []string) ([]byte, error) {
	lv := &structpb.ListValue{Values: make([]*structpb.Value, len(v))}
	for i, s := range v {
		lv.Values[i] = structpb.NewStringValue(s)
	}
	return listValue.Encode(lv)
}

func (Candidates) Decode(b []byte) ([]string, error) {
	lv, err := listValue.Decode(b)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(lv.GetValues()))
	for i, v := range lv.GetValues() {
		s, ok := v.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return nil, fmt.Errorf("candidate %d is not a string", i)
		}
		out[i] = s.StringValue
	}
	return out, nil
}
