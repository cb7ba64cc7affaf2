package nodes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindID_String(t *testing.T) {
	assert.Equal(t, "int32", Int32.String())
	assert.Equal(t, "acme/widget", PluginKind("acme", "widget").String())
}

func TestParseKindID(t *testing.T) {
	tests := []struct {
		in   string
		want KindID
	}{
		{"int32", Int32},
		{"  ClassInstance ", ClassInstance},
		{"acme/widget", PluginKind("acme", "widget")},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKindID(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseKindID_Invalid(t *testing.T) {
	for _, in := range []string{"", "/widget", "acme/", "a/b/c"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseKindID(in)
			assert.Error(t, err)
		})
	}
}

func TestPluginKinds_NamespacedApart(t *testing.T) {
	a := PluginKind("p1", "widget")
	b := PluginKind("p2", "widget")
	assert.NotEqual(t, a, b)

	set := map[KindID]bool{a: true}
	assert.False(t, set[b])
}
