package streamjson

import (
	"fmt"
	"math"
	"strconv"
)

// appendValue writes a single JSON value. Dispatch covers nil, booleans,
// every integer width, floats, strings (escaped) and the raw types.
// NaN and the infinities are not valid JSON numbers and are written as
// null. Any other type is a caller error and panics.
func appendValue(buf Buffer, v any) {
	switch x := v.(type) {
	case nil:
		buf.AppendString("null")
	case bool:
		if x {
			buf.AppendString("true")
		} else {
			buf.AppendString("false")
		}
	case string:
		appendEscaped(buf, x)
	case RawString:
		buf.AppendByte('"')
		buf.AppendString(string(x))
		buf.AppendByte('"')
	case Raw:
		buf.AppendString(string(x))
	case int:
		appendInt(buf, int64(x))
	case int8:
		appendInt(buf, int64(x))
	case int16:
		appendInt(buf, int64(x))
	case int32:
		appendInt(buf, int64(x))
	case int64:
		appendInt(buf, x)
	case uint:
		appendUint(buf, uint64(x))
	case uint8:
		appendUint(buf, uint64(x))
	case uint16:
		appendUint(buf, uint64(x))
	case uint32:
		appendUint(buf, uint64(x))
	case uint64:
		appendUint(buf, x)
	case float32:
		appendFloat(buf, float64(x), 32)
	case float64:
		appendFloat(buf, x, 64)
	default:
		panic(fmt.Sprintf("streamjson: unsupported value type %T", v))
	}
}

// appendKey writes an object key and accepts string (escaped) or RawKey.
func appendKey(buf Buffer, key any) {
	switch k := key.(type) {
	case string:
		appendEscaped(buf, k)
	case RawKey:
		buf.AppendByte('"')
		buf.AppendString(string(k))
		buf.AppendByte('"')
	default:
		panic(fmt.Sprintf("streamjson: unsupported key type %T", key))
	}
}

func appendInt(buf Buffer, n int64) {
	var scratch [20]byte
	buf.AppendBytes(strconv.AppendInt(scratch[:0], n, 10))
}

func appendUint(buf Buffer, n uint64) {
	var scratch [20]byte
	buf.AppendBytes(strconv.AppendUint(scratch[:0], n, 10))
}

func appendFloat(buf Buffer, f float64, bits int) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		buf.AppendString("null")
		return
	}
	var scratch [32]byte
	buf.AppendBytes(strconv.AppendFloat(scratch[:0], f, 'g', -1, bits))
}
