package matchers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWildcardToRegex(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		want    bool
	}{
		{"star matches any run", "System.*.dll", "System.Net.Http.dll", true},
		{"star matches empty run", "Foo*.dll", "Foo.dll", true},
		{"question matches one char", "lib?.dll", "libA.dll", true},
		{"question requires a char", "lib?.dll", "lib.dll", false},
		{"dot is literal", "a.dll", "aXdll", false},
		{"anchored at start", "Foo.dll", "MyFoo.dll", false},
		{"anchored at end", "Foo.dll", "Foo.dll.bak", false},
		{"case sensitive", "foo.dll", "Foo.dll", false},
		{"regex metachars are literal", "a+b(1).dll", "a+b(1).dll", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, err := WildcardToRegex(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, re.MatchString(tt.input))
		})
	}
}

func TestExclusionSet(t *testing.T) {
	set, err := NewExclusionSet([]string{"System.*", "  ", "*.resources.dll"})
	require.NoError(t, err)

	assert.Equal(t, 2, set.Len())
	assert.Equal(t, []string{"System.*", "*.resources.dll"}, set.Patterns())
	assert.True(t, set.Matches("System.Runtime.dll"))
	assert.True(t, set.Matches("Foo.resources.dll"))
	assert.False(t, set.Matches("Foo.dll"))

	got := set.Filter([]string{"Foo.dll", "System.Xml.dll", "Bar.winmd", "Bar.resources.dll"})
	assert.Equal(t, []string{"Foo.dll", "Bar.winmd"}, got)
}

func TestNilExclusionSet(t *testing.T) {
	var set *ExclusionSet

	assert.False(t, set.Matches("anything.dll"))
	assert.Equal(t, 0, set.Len())
	assert.Nil(t, set.Patterns())
	assert.Equal(t, []string{"a.dll"}, set.Filter([]string{"a.dll"}))
}
