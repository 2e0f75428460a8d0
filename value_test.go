package toon

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValue_ZeroIsNull(t *testing.T) {
	var v Value
	require.True(t, v.IsNull())
	require.Equal(t, KindNull, v.Kind())
	require.True(t, v.Equal(Null()))
}

func TestValue_String(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"null renders empty", Null(), ""},
		{"true is lowercase", Bool(true), "true"},
		{"false is lowercase", Bool(false), "false"},
		{"int", Int(30), "30"},
		{"negative int", Int(-7), "-7"},
		{"float keeps a decimal point", Float(30.0), "30.0"},
		{"fractional float", Float(95.5), "95.5"},
		{"large float uses an exponent", Float(1e21), "1e+21"},
		{"negative zero", Float(math.Copysign(0, -1)), "-0.0"},
		{"nan renders empty", Float(math.NaN()), ""},
		{"string is verbatim", String("New York"), "New York"},
		{"empty string value", String(""), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.v.String())
		})
	}
}

func TestValue_Accessors(t *testing.T) {
	require.Equal(t, true, Bool(true).Bool())
	require.Equal(t, int64(42), Int(42).Int())
	require.Equal(t, 1.5, Float(1.5).Float())
	require.Equal(t, "x", String("x").String())

	// Wrong-kind access returns the zero payload.
	require.Equal(t, int64(0), String("42").Int())
	require.Equal(t, false, Int(1).Bool())
	require.Equal(t, 0.0, Int(3).Float())
}

func TestValue_Equal(t *testing.T) {
	require.True(t, Int(1).Equal(Int(1)))
	require.False(t, Int(1).Equal(Int(2)))
	require.False(t, Int(1).Equal(Float(1)), "int and float with the same magnitude are distinct")
	require.False(t, Null().Equal(String("")))
	require.True(t, Float(math.NaN()).Equal(Float(math.NaN())))
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "null", KindNull.String())
	require.Equal(t, "bool", KindBool.String())
	require.Equal(t, "int", KindInt.String())
	require.Equal(t, "float", KindFloat.String())
	require.Equal(t, "string", KindString.String())
	require.Equal(t, "invalid", Kind(99).String())
}
