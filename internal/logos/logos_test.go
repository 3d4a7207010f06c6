package logos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-dvd/internal/registry"
)

func TestBuiltinLogosRegistered(t *testing.T) {
	tests := []struct {
		id     string
		width  int
		height int
	}{
		{id: DefaultID, width: 63, height: 11},
		{id: "dvd-small", width: 20, height: 5},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			l, err := registry.Get(tc.id)
			require.NoError(t, err)
			assert.Equal(t, tc.width, l.Width())
			assert.Equal(t, tc.height, l.Height())
		})
	}
}
