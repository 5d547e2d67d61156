package runtime

import (
	"boscoin.io/polls/lib/contract"
	"boscoin.io/polls/lib/store"
)

const DefaultQueryCacheSize = 1000

type Config struct {
	ChainID        string
	API            contract.API
	Codec          store.Codec
	QueryCacheSize int
}

func NewConfig(chainID string) Config {
	return Config{
		ChainID:        chainID,
		API:            contract.KeypairAPI{},
		Codec:          store.DefaultCodec,
		QueryCacheSize: DefaultQueryCacheSize,
	}
}
