package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUint64ToUint32(t *testing.T) {
	tests := []struct {
		name    string
		in      uint64
		want    uint32
		wantErr bool
	}{
		{"zero", 0, 0, false},
		{"max", math.MaxUint32, math.MaxUint32, false},
		{"bit 32", 1 << 32, 0, true},
		{"max uint64", math.MaxUint64, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Uint64ToUint32(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "overflow")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInt64ToInt(t *testing.T) {
	got, err := Int64ToInt(4096)
	require.NoError(t, err)
	assert.Equal(t, 4096, got)

	_, err = Int64ToInt(-1)
	assert.Error(t, err)
}
