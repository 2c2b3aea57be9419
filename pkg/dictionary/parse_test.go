package dictionary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDic(t *testing.T) {
	dic := `4
# comment
casa/ABC
Città/XY
re
casa
sasso
`
	words, err := ParseDic(strings.NewReader(dic), 2)
	require.NoError(t, err)
	require.Equal(t, []string{"casa", "citta", "re", "sasso"}, words)

	words, err = ParseDic(strings.NewReader(dic), 4)
	require.NoError(t, err)
	require.Equal(t, []string{"casa", "citta", "sasso"}, words)
}

func TestParseList(t *testing.T) {
	list := "pranzo\n\n# skip\nAzzurro\nnon-parola\npranzo\n"
	words, err := ParseList(strings.NewReader(list), 2)
	require.NoError(t, err)
	require.Equal(t, []string{"pranzo", "azzurro"}, words)
}
