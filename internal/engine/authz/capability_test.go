package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScopes(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []Capability
		wantErr bool
	}{
		{
			name: "single scope",
			raw:  "read",
			want: []Capability{CapabilityRead},
		},
		{
			name: "all scopes",
			raw:  "read,write,admin",
			want: []Capability{CapabilityRead, CapabilityWrite, CapabilityAdmin},
		},
		{
			name: "whitespace and empty segments",
			raw:  " read, ,write,",
			want: []Capability{CapabilityRead, CapabilityWrite},
		},
		{
			name: "empty string",
			raw:  "",
			want: nil,
		},
		{
			name:    "unknown token",
			raw:     "read,superuser",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := ParseScopes(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, ErrInvalidScope)
				return
			}
			require.NoError(t, err)
			assert.Len(t, set, len(tt.want))
			for _, c := range tt.want {
				assert.True(t, set.Has(c), "missing capability %s", c)
			}
		})
	}
}

func TestCapabilitySetString(t *testing.T) {
	set := NewCapabilitySet(CapabilityWrite, CapabilityRead)
	assert.Equal(t, "read,write", set.String())

	assert.Equal(t, "", CapabilitySet{}.String())
}
