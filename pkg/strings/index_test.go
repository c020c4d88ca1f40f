package strings

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIndex(t *testing.T) {
	for _, tt := range []struct {
		s      string
		substr string
		index  int
	}{
		{"Lorem ipsum dolor sit amet", "amet", 22},
		{"Lorem ipsum dolor sit amet", "Lorem", 0},
		{"Lorem ipsum dolor sit amet", "amen", -1},
		{"abc", "", -1},
		{"", "", -1},
		{"", "a", -1},
		{"ab", "abc", -1},
		{"héllo wörld", "wö", 7},
	} {
		tt := tt
		t.Run(fmt.Sprintf("`%s` in `%s`", tt.substr, tt.s), func(t *testing.T) {
			require.Equal(t, tt.index, Index(tt.s, tt.substr))
		})
	}
}

func TestRawmatch(t *testing.T) {
	pos, ok := Rawmatch("AC", "ABAC")
	require.True(t, ok)
	require.Equal(t, 3, pos)

	pos, ok = Rawmatch("X", "ABC")
	require.False(t, ok)
	require.Equal(t, 0, pos)
}
