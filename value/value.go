// Package value doubles numbers and measures text.
package value

import "unicode/utf16"

// Value is either Text or Number. The set is closed: no other package can
// add a variant.
type Value interface {
	sealedValue()
}

type Text string

func (Text) sealedValue() {}

type Number float64

func (Number) sealedValue() {}

var (
	_ Value = Text("")
	_ Value = Number(0)
)

// Match calls onText or onNumber depending on the variant of v.
func Match[R any](v Value, onText func(Text) R, onNumber func(Number) R) R {
	switch v := v.(type) {
	case Text:
		return onText(v)
	case Number:
		return onNumber(v)
	default:
		panic("exhaustive match")
	}
}

// Process returns the length of a Text in UTF-16 code units and twice a Number.
// Characters outside the Basic Multilingual Plane count as two.
func Process(v Value) float64 {
	return Match(v,
		func(t Text) float64 {
			return float64(len(utf16.Encode([]rune(string(t)))))
		},
		func(n Number) float64 {
			return float64(n) * 2
		},
	)
}
