package variant

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Name
		wantErr bool
	}{
		{"legacy", "legacy", Legacy, false},
		{"open upper case", " OPEN ", Open, false},
		{"strict", "strict", Strict, false},
		{"unknown", "v4", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Get(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, p.Name)
		})
	}
}

func TestProfiles(t *testing.T) {
	legacy := MustGet("legacy")
	require.Equal(t, LegacyFields, legacy.Fields)
	require.Equal(t, EchoOrigin, legacy.Origin)
	require.Equal(t, 3000, legacy.PromptCharLimit)
	require.False(t, legacy.RejectEmptyOutput)

	strict := MustGet("strict")
	require.Equal(t, StructuredFields, strict.Fields)
	require.Equal(t, AllowListOrigin, strict.Origin)
	require.Equal(t, 4000, strict.PromptCharLimit)
	require.True(t, strict.RejectEmptyOutput)
	require.True(t, strict.DetailedErrors)

	require.Panics(t, func() { MustGet("nope") })
}
