package stringify

import (
	"io"
	"math/big"
	"strconv"
)

// Leaf types. Each writes its plain textual form and resolves no roles.
type (
	Bool    bool
	Int     int
	Int8    int8
	Int16   int16
	Int32   int32
	Int64   int64
	Uint    uint
	Uint8   uint8
	Uint16  uint16
	Uint32  uint32
	Uint64  uint64
	Float32 float32
	Float64 float64
	String  string
)

func (v Bool) Stringify(w io.Writer, _ Styles) error {
	return WriteString(w, strconv.FormatBool(bool(v)))
}

func (v Int) Stringify(w io.Writer, _ Styles) error {
	return WriteString(w, strconv.FormatInt(int64(v), 10))
}

func (v Int8) Stringify(w io.Writer, _ Styles) error {
	return WriteString(w, strconv.FormatInt(int64(v), 10))
}

func (v Int16) Stringify(w io.Writer, _ Styles) error {
	return WriteString(w, strconv.FormatInt(int64(v), 10))
}

func (v Int32) Stringify(w io.Writer, _ Styles) error {
	return WriteString(w, strconv.FormatInt(int64(v), 10))
}

func (v Int64) Stringify(w io.Writer, _ Styles) error {
	return WriteString(w, strconv.FormatInt(int64(v), 10))
}

func (v Uint) Stringify(w io.Writer, _ Styles) error {
	return WriteString(w, strconv.FormatUint(uint64(v), 10))
}

func (v Uint8) Stringify(w io.Writer, _ Styles) error {
	return WriteString(w, strconv.FormatUint(uint64(v), 10))
}

func (v Uint16) Stringify(w io.Writer, _ Styles) error {
	return WriteString(w, strconv.FormatUint(uint64(v), 10))
}

func (v Uint32) Stringify(w io.Writer, _ Styles) error {
	return WriteString(w, strconv.FormatUint(uint64(v), 10))
}

func (v Uint64) Stringify(w io.Writer, _ Styles) error {
	return WriteString(w, strconv.FormatUint(uint64(v), 10))
}

func (v Float32) Stringify(w io.Writer, _ Styles) error {
	return WriteString(w, strconv.FormatFloat(float64(v), 'g', -1, 32))
}

func (v Float64) Stringify(w io.Writer, _ Styles) error {
	return WriteString(w, strconv.FormatFloat(float64(v), 'g', -1, 64))
}

// Stringify writes the text unquoted and unescaped.
func (v String) Stringify(w io.Writer, _ Styles) error {
	return WriteString(w, string(v))
}

// BigInt renders integers wider than 64 bits. A nil Int renders as "0".
type BigInt struct {
	*big.Int
}

func (v BigInt) Stringify(w io.Writer, _ Styles) error {
	if v.Int == nil {
		return WriteString(w, "0")
	}
	return WriteString(w, v.Int.String())
}

// Nil renders an absent value as "nil".
type Nil struct{}

func (Nil) Stringify(w io.Writer, _ Styles) error {
	return WriteString(w, "nil")
}
