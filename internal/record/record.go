package record

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ErrNotScalar is returned by CheckScalars for nested or composite values.
var ErrNotScalar = errors.New("value is not a scalar")

// Record is a flat mapping from field name to scalar value.
type Record map[string]any

// Fields returns the field names of rec in sorted order.
func (r Record) Fields() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Project builds a new record holding rec[source[i]] under target[i] for
// every i. A source field missing from rec is written as nil and its name is
// returned in missing. source and target must have the same length; Project
// panics otherwise.
func Project(rec Record, source, target []string) (out Record, missing []string) {
	if len(source) != len(target) {
		panic(fmt.Sprintf("record: projecting %d source fields onto %d target fields", len(source), len(target)))
	}

	out = make(Record, len(target))

	for i, name := range source {
		v, ok := rec[name]
		if !ok {
			missing = append(missing, name)
		}

		out[target[i]] = v
	}

	return out, missing
}

// Key converts an index value into the string key of the output mapping.
//
//   - strings are used as-is
//   - booleans become "true" or "false"
//   - integers are written in base 10
//   - floats are written in their shortest decimal form ("1" for 1.0,
//     "0.000001" for 1e-6), switching to exponent form below 1e-6 and
//     from 1e21 on ("1e-7", "1e+21"); negative zero becomes "0" and
//     infinities become "Infinity" and "-Infinity"
//   - nil becomes ""
//   - anything else is formatted with fmt.Sprint
func Key(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return formatFloat(float64(x), 32)
	case float64:
		return formatFloat(x, 64)
	default:
		return fmt.Sprint(v)
	}
}

func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		// covers negative zero
		return "0"
	}

	if abs := math.Abs(f); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, bits)
	}

	// exponent without padding: 1e-07 becomes 1e-7
	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, bits), "e")

	return mantissa + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
}

// CheckScalars returns an error naming the first field (in sorted order)
// whose value is not a scalar.
func CheckScalars(rec Record) error {
	for _, name := range rec.Fields() {
		if !KindOf(rec[name]).IsScalar() {
			return fmt.Errorf("field %q: %w (got %T)", name, ErrNotScalar, rec[name])
		}
	}

	return nil
}
