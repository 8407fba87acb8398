package record

//go:generate go tool stringer -type=Kind -output=kind_string.go

type Kind int

const (
	_ Kind = iota // zero value marks a non-scalar value

	KindNull
	KindBool
	KindInt
	KindFloat
	KindString

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsScalar reports whether values of this kind may appear in a Record.
func (k Kind) IsScalar() bool {
	return k > 0 && int(k) < KindTotal
}

// KindOf classifies a value read from a record.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return KindInt
	case float32, float64:
		return KindFloat
	case string:
		return KindString
	default:
		return 0
	}
}
