package method

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, m := range List {
		require.Equalf(t, m, Parse(m.String()), "method: %s", m)
	}
}

func TestParseUnknown(t *testing.T) {
	for _, str := range []string{"", "GTE", "get", "Get", "HEAD", "TRACE", "CONNECT", "LOREM"} {
		require.Equalf(t, Unknown, Parse(str), "token: %q", str)
	}
}

func TestString(t *testing.T) {
	require.Equal(t, "DELETE", DELETE.String())
	require.Empty(t, Unknown.String())
}
