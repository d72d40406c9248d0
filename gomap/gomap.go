// Package gomap converts between plain Go values and document trees:
// map[string]any and []any on the Go side, objects and arrays on the tree
// side.
package gomap

import (
	"fmt"
	"strconv"

	"github.com/jzon-format/go-jzon/ir"
)

// FromGo builds a document tree from a Go value. Supported: nil, bool,
// string, the integer and float kinds, map[string]any, []any, and *ir.Node
// (attached as-is).
func FromGo(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case *ir.Node:
		return x, nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int8:
		return ir.FromInt(int64(x)), nil
	case int16:
		return ir.FromInt(int64(x)), nil
	case int32:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint:
		return ir.FromInt(int64(x)), nil
	case uint8:
		return ir.FromInt(int64(x)), nil
	case uint16:
		return ir.FromInt(int64(x)), nil
	case uint32:
		return ir.FromInt(int64(x)), nil
	case uint64:
		return ir.FromLiteral(ir.NumberValue, strconv.FormatUint(x, 10)), nil
	case float32:
		return ir.FromFloat(float64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case map[string]any:
		res := map[string]*ir.Node{}
		for k, mv := range x {
			node, err := FromGo(mv)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", k, err)
			}
			res[k] = node
		}
		return ir.FromMap(res), nil
	case []any:
		res := ir.NewArray()
		for i, ev := range x {
			node, err := FromGo(ev)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			res.Append(node)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("gomap: unsupported type %T", v)
	}
}

// ToGo converts a tree back to plain Go values. Objects become
// map[string]any (later duplicate names win), arrays []any, numbers int64
// when integral and float64 otherwise.
func ToGo(y *ir.Node) (any, error) {
	switch y.Kind {
	case ir.ObjectKind:
		res := make(map[string]any, len(y.Values))
		for i, name := range y.Fields {
			v, err := ToGo(y.Values[i])
			if err != nil {
				return nil, err
			}
			res[name] = v
		}
		return res, nil
	case ir.ArrayKind:
		res := make([]any, len(y.Values))
		for i, e := range y.Values {
			v, err := ToGo(e)
			if err != nil {
				return nil, err
			}
			res[i] = v
		}
		return res, nil
	}
	switch y.ValueType {
	case ir.NullValue:
		return nil, nil
	case ir.StringValue:
		return y.Text, nil
	case ir.BoolValue:
		return y.Text == "true", nil
	default:
		if i, err := strconv.ParseInt(y.Text, 10, 64); err == nil {
			return i, nil
		}
		f, err := strconv.ParseFloat(y.Text, 64)
		if err != nil {
			return nil, fmt.Errorf("gomap: bad number %q: %w", y.Text, err)
		}
		return f, nil
	}
}
