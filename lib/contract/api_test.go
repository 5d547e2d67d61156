package contract

import (
	"strings"
	"testing"

	"github.com/stellar/go/keypair"
	"github.com/stretchr/testify/require"

	"boscoin.io/polls/lib/errors"
)

func TestMockAPI(t *testing.T) {
	api := MockAPI{}

	addr, err := api.AddrValidate("addr1")
	require.NoError(t, err)
	require.Equal(t, Addr("addr1"), addr)

	_, err = api.AddrValidate(strings.Repeat("a", MockAddressMaxLength))
	require.NoError(t, err)

	for _, s := range []string{"", "a1", "Addr1", strings.Repeat("a", MockAddressMaxLength+1)} {
		_, err := api.AddrValidate(s)
		require.True(t, errors.InvalidAddress.Is(err), "address=%q", s)
	}
}

func TestKeypairAPI(t *testing.T) {
	kp, err := keypair.Random()
	require.NoError(t, err)

	api := KeypairAPI{}

	addr, err := api.AddrValidate(kp.Address())
	require.NoError(t, err)
	require.Equal(t, Addr(kp.Address()), addr)

	_, err = api.AddrValidate(kp.Seed())
	require.True(t, errors.InvalidAddress.Is(err))

	_, err = api.AddrValidate("addr1")
	require.True(t, errors.InvalidAddress.Is(err))
}

func TestInstantiateWithKeypairAPI(t *testing.T) {
	kp, err := keypair.Random()
	require.NoError(t, err)

	deps := mockDependencies()
	deps.API = KeypairAPI{}

	_, err = Instantiate(deps, mockEnv(), mockInfo(kp.Address()), InstantiateMsg{AdminAddress: "addr1"})
	require.True(t, errors.InvalidAddress.Is(err))

	instantiate(t, deps, kp.Address())

	config, err := QueryConfig(deps.AsRef())
	require.NoError(t, err)
	require.Equal(t, Addr(kp.Address()), config.AdminAddress)
}

func TestNewAPI(t *testing.T) {
	api, err := NewAPI("mock")
	require.NoError(t, err)
	require.Equal(t, MockAPI{}, api)

	api, err = NewAPI("keypair")
	require.NoError(t, err)
	require.Equal(t, KeypairAPI{}, api)

	_, err = NewAPI("bech32")
	require.Error(t, err)
}
