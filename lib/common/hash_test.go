package common

import (
	"testing"

	"github.com/btcsuite/btcutil/base58"
	"github.com/stretchr/testify/require"
)

type hashRecord struct {
	Action  string
	Message []byte
	Height  uint64
}

func TestMakeObjectHashString(t *testing.T) {
	a := hashRecord{Action: "vote", Message: []byte(`{"vote":{}}`), Height: 1}

	h0, err := MakeObjectHashString(a)
	require.NoError(t, err)
	h1, err := MakeObjectHashString(a)
	require.NoError(t, err)
	require.Equal(t, h0, h1)
	require.Equal(t, 32, len(base58.Decode(h0)))

	a.Height = 2
	h2, err := MakeObjectHashString(a)
	require.NoError(t, err)
	require.NotEqual(t, h0, h2)
}
