package contract

import (
	"fmt"
	"strings"

	"github.com/stellar/go/keypair"

	"boscoin.io/polls/lib/errors"
)

// API is the address service provided by the runtime.
type API interface {
	AddrValidate(string) (Addr, error)
}

const (
	MockAddressMinLength = 3
	MockAddressMaxLength = 54
)

// MockAPI accepts the addresses of the test runtime: 3 to 54 characters,
// already in lowercase.
type MockAPI struct{}

func (MockAPI) AddrValidate(s string) (Addr, error) {
	switch {
	case len(s) < MockAddressMinLength:
		return "", invalidAddress(s, "address too short")
	case len(s) > MockAddressMaxLength:
		return "", invalidAddress(s, "address too long")
	case strings.ToLower(s) != s:
		return "", invalidAddress(s, "address not normalized")
	}

	return Addr(s), nil
}

// KeypairAPI accepts public account addresses, `G...`. Secret seeds are
// rejected even though they parse.
type KeypairAPI struct{}

func (KeypairAPI) AddrValidate(s string) (Addr, error) {
	kp, err := keypair.Parse(s)
	if err != nil {
		return "", invalidAddress(s, err.Error())
	}
	if _, ok := kp.(*keypair.FromAddress); !ok {
		return "", invalidAddress(s, "not a public address")
	}

	return Addr(kp.Address()), nil
}

func invalidAddress(s, reason string) error {
	return errors.InvalidAddress.Clone().
		SetData("address", s).
		SetData("reason", reason)
}

func NewAPI(name string) (API, error) {
	switch name {
	case "mock":
		return MockAPI{}, nil
	case "keypair":
		return KeypairAPI{}, nil
	}
	return nil, fmt.Errorf("unknown address api %q", name)
}
