package huffpack

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseContainer(t *testing.T) {
	c, err := ParseContainer(append([]byte("16;97:0,98:11,99:10"), 0x07, 0x1f, 0x00))
	require.NoError(t, err)

	require.Equal(t, 3, c.Table.Len())
	require.Equal(t, 7, c.Pad)
	require.Equal(t, []byte{0x1f, 0x00}, c.Payload)
	require.Equal(t, uint64(9), c.BitLen())
	require.Equal(t, "97:0,98:11,99:10", c.Header())
}

func TestParseHeader_ZeroSymbol(t *testing.T) {
	table, err := ParseHeader("0:0,10:1")
	require.NoError(t, err)
	require.Equal(t, []Symbol{0, 10}, table.Symbols())
}

func TestParseHeader_AnyOrder(t *testing.T) {
	table, err := ParseHeader("99:10,97:0,98:11")
	require.NoError(t, err)
	require.Equal(t, "97:0,98:11,99:10", FormatHeader(table))
}

func TestParseContainer_Corrupt(t *testing.T) {
	type testRow struct {
		name  string
		input []byte
	}

	testData := [...]testRow{
		{name: "empty", input: nil},
		{name: "no-delimiter", input: []byte("1697:0")},
		{name: "no-length", input: []byte(";97:0\x00\x00")},
		{name: "bad-length", input: []byte("1a;97:0\x00\x00")},
		{name: "long-length", input: []byte("0000004;97:0\x00\x00")},
		{name: "short-data", input: []byte("99;97:0\x00")},
		{name: "no-pad-byte", input: []byte("4;97:0")},
		{name: "empty-header", input: []byte("0;\x00")},
		{name: "pad-range", input: []byte("4;97:0\x09\x00")},
		{name: "pad-no-payload", input: []byte("4;97:0\x03")},
		{name: "pair-no-colon", input: []byte("2;97\x00\x00")},
		{name: "symbol-range", input: []byte("5;256:0\x00\x00")},
		{name: "symbol-nan", input: []byte("3;x:0\x00\x00")},
		{name: "empty-code", input: []byte("3;97:\x00\x00")},
		{name: "bad-code", input: []byte("4;97:2\x00\x00")},
		{name: "duplicate", input: []byte("9;97:0,97:1\x00\x00")},
		{name: "length-leading-zero", input: []byte("04;97:0\x00\x00")},
		{name: "symbol-leading-zero", input: []byte("5;097:0\x00\x00")},
		{name: "symbol-sign", input: []byte("5;+97:0\x00\x00")},
		{name: "padding-not-zero", input: append([]byte("16;97:0,98:11,99:10"), 0x07, 0x1f, 0x7f)},
		{name: "padding-low-bit", input: []byte("4;97:0\x03\x01")},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, err := ParseContainer(row.input)
			if !errors.Is(err, ErrCorrupt) {
				t.Errorf("expected ErrCorrupt, got %v", err)
			}
		})
	}
}

func TestParseContainer_NotPrefixFree(t *testing.T) {
	for _, header := range []string{"97:0,98:01", "97:01,98:0", "97:10,98:10"} {
		data := append([]byte{}, []byte(strconv.Itoa(len(header))+";"+header)...)
		data = append(data, 0x00, 0x00)

		_, err := ParseContainer(data)
		require.True(t, errors.Is(err, ErrCorrupt), "%s: got %v", header, err)
		require.True(t, errors.Is(err, ErrNotPrefixFree), "%s: got %v", header, err)
	}
}
