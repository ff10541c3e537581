package reconciler_test

import (
	"filplus/internal/reconciler"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		cached  string
		known   bool
		current string
		want    reconciler.Change
	}{
		{name: "first observation", current: "sha-1", want: reconciler.Changed},
		{name: "first observation of empty fingerprint", current: "", want: reconciler.Changed},
		{name: "same fingerprint", cached: "sha-1", known: true, current: "sha-1", want: reconciler.Unchanged},
		{name: "new fingerprint", cached: "sha-1", known: true, current: "sha-2", want: reconciler.Changed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, reconciler.Detect(tt.cached, tt.known, tt.current))
		})
	}

	require.Equal(t, "changed", reconciler.Changed.String())
	require.Equal(t, "unchanged", reconciler.Unchanged.String())
}
