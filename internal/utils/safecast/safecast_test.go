package safecast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntToUint64(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    int
		want    uint64
		wantErr bool
	}{
		{name: "valid value", give: 10000, want: 10000},
		{name: "zero", give: 0, want: 0},
		{name: "negative value", give: -1, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := IntToUint64(tt.give)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUint64ToInt64(t *testing.T) {
	t.Parallel()

	got, err := Uint64ToInt64(42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got)

	_, err = Uint64ToInt64(math.MaxInt64 + 1)
	require.Error(t, err)
}
