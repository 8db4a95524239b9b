package styled

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{name: "named", input: "red", want: RGB(0xff5555)},
		{name: "named_upper", input: "DARK_AQUA", want: RGB(0x00aaaa)},
		{name: "alias", input: "grey", want: RGB(0xaaaaaa)},
		{name: "hex", input: "#12ab9f", want: Color{0x12, 0xab, 0x9f}},
		{name: "hex_upper", input: "#FFAA00", want: RGB(0xffaa00)},
		{name: "short_hex", input: "#fff", wantErr: true},
		{name: "bad_hex", input: "#gg0000", wantErr: true},
		{name: "unknown", input: "mauve", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseColor(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				require.False(t, IsColorName(tc.input))
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.want, got)
			require.True(t, IsColorName(tc.input))
		})
	}
}

func TestColorHex(t *testing.T) {
	require.Equal(t, "#ffaa00", RGB(0xffaa00).Hex())
	require.Equal(t, "#000000", Color{}.Hex())
}

func TestNameOf(t *testing.T) {
	name, ok := NameOf(RGB(0x55ff55))
	require.True(t, ok)
	require.Equal(t, "green", name)

	_, ok = NameOf(RGB(0x123456))
	require.False(t, ok)
}

func TestLerp(t *testing.T) {
	black := RGB(0x000000)
	white := RGB(0xffffff)

	require.Equal(t, black, Lerp(0, black, white))
	require.Equal(t, white, Lerp(1, black, white))
	require.Equal(t, Color{128, 128, 128}, Lerp(0.5, black, white))

	// out of range factors are clamped
	require.Equal(t, black, Lerp(-3, black, white))
	require.Equal(t, white, Lerp(7, black, white))
}
