package rawdb

// Database is the host-owned persistent key-value engine the contract state
// lives in. Get on an absent key returns errors.StorageRecordDoesNotExist.
type Database interface {
	Get(key []byte) ([]byte, error)

	Has(key []byte) (bool, error)

	Put(key []byte, value []byte) error

	Delete(key []byte) error

	// NewIterator walks the keys starting with prefix in ascending order.
	NewIterator(prefix []byte) Iterator
}

type Iterator interface {
	Next() bool
	Key() []byte
	Value() []byte
	Release()
	Error() error
}
