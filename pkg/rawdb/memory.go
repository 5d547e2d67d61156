package rawdb

import (
	"bytes"
	"sort"

	"boscoin.io/polls/lib/errors"
)

type MemoryDb struct {
	db map[string][]byte
}

func NewMemoryDb() *MemoryDb {
	return &MemoryDb{
		db: make(map[string][]byte),
	}
}

func (o *MemoryDb) Put(key []byte, value []byte) error {
	o.db[string(key)] = append([]byte(nil), value...)
	return nil
}

func (o *MemoryDb) Has(key []byte) (bool, error) {
	_, ok := o.db[string(key)]
	return ok, nil
}

func (o *MemoryDb) Get(key []byte) ([]byte, error) {
	if v, ok := o.db[string(key)]; ok {
		return append([]byte(nil), v...), nil
	}
	return nil, errors.StorageRecordDoesNotExist.Clone()
}

func (o *MemoryDb) Delete(key []byte) error {
	delete(o.db, string(key))
	return nil
}

func (o *MemoryDb) Len() int {
	return len(o.db)
}

func (o *MemoryDb) NewIterator(prefix []byte) Iterator {
	var keys []string
	for k := range o.db {
		if bytes.HasPrefix([]byte(k), prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	values := make([][]byte, len(keys))
	for i, k := range keys {
		values[i] = o.db[k]
	}

	return &memoryIterator{keys: keys, values: values, pos: -1}
}

type memoryIterator struct {
	keys   []string
	values [][]byte
	pos    int
}

func (it *memoryIterator) Next() bool {
	if it.pos+1 >= len(it.keys) {
		it.pos = len(it.keys)
		return false
	}
	it.pos++
	return true
}

func (it *memoryIterator) Key() []byte {
	if it.pos < 0 || it.pos >= len(it.keys) {
		return nil
	}
	return []byte(it.keys[it.pos])
}

func (it *memoryIterator) Value() []byte {
	if it.pos < 0 || it.pos >= len(it.values) {
		return nil
	}
	return it.values[it.pos]
}

func (it *memoryIterator) Release() {
	it.keys = nil
	it.values = nil
}

func (it *memoryIterator) Error() error {
	return nil
}
