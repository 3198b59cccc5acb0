package proto

import (
	"bytes"
	"io"

	"github.com/golang/protobuf/jsonpb"
	pb "github.com/golang/protobuf/proto"
	"github.com/lyraproj/data-protobuf/datapb"
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/monkey-evaluator/eval"
)

// ToPBData converts a runtime value into a datapb.Data. A ReturnValue is converted into the
// value that it carries and Null becomes an undef value.
func ToPBData(v eval.Value) (value *datapb.Data) {
	switch v := v.(type) {
	case eval.Boolean:
		value = &datapb.Data{Kind: &datapb.Data_BooleanValue{BooleanValue: v.Bool()}}
	case *eval.Integer:
		value = &datapb.Data{Kind: &datapb.Data_IntegerValue{IntegerValue: v.Int()}}
	case *eval.ReturnValue:
		value = ToPBData(v.Unwrap())
	default:
		value = &datapb.Data{Kind: &datapb.Data_UndefValue{}}
	}
	return
}

// FromPBData converts a datapb.Data into a runtime value. Only booleans, integers and undef
// have a runtime counterpart; anything else yields an EVAL_ILLEGAL_VALUE error.
func FromPBData(v *datapb.Data) (value eval.Value, err error) {
	switch v.Kind.(type) {
	case *datapb.Data_BooleanValue:
		value = eval.WrapBoolean(v.GetBooleanValue())
	case *datapb.Data_IntegerValue:
		value = eval.WrapInteger(v.GetIntegerValue())
	case *datapb.Data_UndefValue, nil:
		value = eval.Null
	default:
		err = issue.NewReported(eval.IllegalValue, issue.SEVERITY_ERROR, issue.H{`value`: v.String()}, nil)
	}
	return
}

// ResultToPBData creates a hash describing the outcome of evaluating one source. The hash
// always has a source entry and has value, parse_errors, or error entries depending on how
// far the evaluation got.
func ResultToPBData(source string, value eval.Value, parseErrors []string, err error) *datapb.Data {
	entries := []*datapb.DataEntry{entry(`source`, stringData(source))}
	if len(parseErrors) > 0 {
		es := make([]*datapb.Data, len(parseErrors))
		for i, pe := range parseErrors {
			es[i] = stringData(pe)
		}
		entries = append(entries, entry(`parse_errors`, &datapb.Data{Kind: &datapb.Data_ArrayValue{ArrayValue: &datapb.DataArray{Values: es}}}))
	}
	if err != nil {
		entries = append(entries, entry(`error`, stringData(err.Error())))
		if ri, ok := err.(issue.Reported); ok {
			entries = append(entries, entry(`issue_code`, stringData(string(ri.Code()))))
		}
	} else if value != nil {
		entries = append(entries, entry(`value`, ToPBData(value)))
	}
	return &datapb.Data{Kind: &datapb.Data_HashValue{HashValue: &datapb.DataHash{Entries: entries}}}
}

// MarshalJSON renders data in the protobuf JSON mapping
func MarshalJSON(data *datapb.Data) (string, error) {
	b := bytes.NewBufferString(``)
	m := jsonpb.Marshaler{}
	if err := m.Marshal(b, data); err != nil {
		return ``, err
	}
	return b.String(), nil
}

// Marshal renders data in the protobuf wire format
func Marshal(data *datapb.Data) ([]byte, error) {
	return pb.Marshal(data)
}

// WriteDelimited writes data in the protobuf wire format preceded by its length as a varint
func WriteDelimited(w io.Writer, data *datapb.Data) error {
	bs, err := pb.Marshal(data)
	if err != nil {
		return err
	}
	if _, err = w.Write(pb.EncodeVarint(uint64(len(bs)))); err != nil {
		return err
	}
	_, err = w.Write(bs)
	return err
}

// Unmarshal parses data in the protobuf wire format
func Unmarshal(bs []byte) (*datapb.Data, error) {
	data := &datapb.Data{}
	if err := pb.Unmarshal(bs, data); err != nil {
		return nil, err
	}
	return data, nil
}

func entry(key string, value *datapb.Data) *datapb.DataEntry {
	return &datapb.DataEntry{Key: stringData(key), Value: value}
}

func stringData(s string) *datapb.Data {
	return &datapb.Data{Kind: &datapb.Data_StringValue{StringValue: s}}
}
