package form

import "fmt"

type Type int

const (
	ReaderErrorType Type = iota
	ScalarType
	ListType
	VectorType
	MapType
	SetType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		ReaderErrorType: "ReaderError",
		ScalarType:      "Scalar",
		ListType:        "List",
		VectorType:      "Vector",
		MapType:         "Map",
		SetType:         "Set",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"ReaderError": ReaderErrorType,
		"Scalar":      ScalarType,
		"List":        ListType,
		"Vector":      VectorType,
		"Map":         MapType,
		"Set":         SetType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		ReaderErrorType,
		ScalarType,
		ListType,
		VectorType,
		MapType,
		SetType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ReaderErrorType, ScalarType:
		return true
	default:
		return false
	}
}
