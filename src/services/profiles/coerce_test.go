package profiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(v bool) *bool { return &v }

func TestCoerceBool(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  *bool
	}{
		{"native true", true, boolPtr(true)},
		{"native false", false, boolPtr(false)},
		{"string true", "true", boolPtr(true)},
		{"string True", "True", boolPtr(true)},
		{"string yes", "yes", boolPtr(true)},
		{"string NO", "NO", boolPtr(false)},
		{"empty string", "", nil},
		{"null", nil, nil},
		{"garbage string", "banana", boolPtr(false)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CoerceBool(tc.input)
			if tc.want == nil {
				assert.Nil(t, got, "expected unknown")
			} else {
				assert.NotNil(t, got)
				assert.Equal(t, *tc.want, *got)
			}
		})
	}
}

func TestFormatTriState(t *testing.T) {
	assert.Equal(t, "Yes", FormatTriState(boolPtr(true)))
	assert.Equal(t, "No", FormatTriState(boolPtr(false)))
	assert.Equal(t, "", FormatTriState(nil))
}

func TestDefaultRole(t *testing.T) {
	assert.Equal(t, "student", DefaultRole(""))
	assert.Equal(t, "agent", DefaultRole("agent"))
	assert.Equal(t, "admin", DefaultRole("admin"))
}
