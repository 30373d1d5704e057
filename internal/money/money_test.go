package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "100.00", want: 10000},
		{in: "100", want: 10000},
		{in: "0.01", want: 1},
		{in: "10000.00", want: 1000000},
		{in: "-5", want: -500},
		{in: "1.5", want: 150},
		{in: "1.005", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range cases {
		got, err := Parse(tc.in)
		if tc.wantErr {
			assert.Error(t, err, "Parse(%q)", tc.in)
			continue
		}
		require.NoError(t, err, "Parse(%q)", tc.in)
		assert.Equal(t, tc.want, got, "Parse(%q)", tc.in)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "100.00", Format(10000))
	assert.Equal(t, "0.01", Format(1))
	assert.Equal(t, "0.00", Format(0))
	assert.Equal(t, "10000.00", Format(1000000))
}

func TestRoundTrip(t *testing.T) {
	for _, minor := range []int64{0, 1, 99, 100, 12345, 1000000} {
		got, err := Parse(Format(minor))
		require.NoError(t, err)
		assert.Equal(t, minor, got)
	}
}
