package cli

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRequest_ParsesScopeFocusAndQuery(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want ViewRequest
	}{
		{"empty", nil, ViewRequest{}},
		{"query only", []string{"laptop", "dell"}, ViewRequest{Query: "laptop dell"}},
		{"employee scope", []string{"e:42"}, ViewRequest{EmployeeID: 42}},
		{"focus", []string{"f:117"}, ViewRequest{FocusID: 117}},
		{"edit", []string{"ed:7"}, ViewRequest{EditID: 7}},
		{"mixed", []string{"f:117", "e:42", "ed:7", "monitor"}, ViewRequest{FocusID: 117, EmployeeID: 42, EditID: 7, Query: "monitor"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, listRequest(tt.args))
		})
	}
}

func TestGetSimpleText_TrimsLine(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("  hello world  \n"))
	var out strings.Builder

	s, err := GetSimpleText(r, "Prompt", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", s)
	assert.Contains(t, out.String(), "Prompt")
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("partial"))
	var out strings.Builder

	s, err := GetSimpleText(r, "Prompt", &out)
	require.NoError(t, err)
	assert.Equal(t, "partial", s)
}
