package store

import (
	"encoding/binary"

	"boscoin.io/polls/pkg/rawdb"
)

type Reader interface {
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)
	NewIterator(prefix []byte) rawdb.Iterator
}

type Writer interface {
	Put(key []byte, value []byte) error
	Delete(key []byte) error
}

type ReadWriter interface {
	Reader
	Writer
}

// namespaceKey prefixes key with the big-endian length of namespace and
// namespace itself, so keys of different namespaces never collide.
func namespaceKey(namespace []byte, key []byte) []byte {
	b := make([]byte, 2, 2+len(namespace)+len(key))
	binary.BigEndian.PutUint16(b, uint16(len(namespace)))
	b = append(b, namespace...)
	return append(b, key...)
}
