package rawdb

import (
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	leveldbOpt "github.com/syndtr/goleveldb/leveldb/opt"
	leveldbStorage "github.com/syndtr/goleveldb/leveldb/storage"
	leveldbUtil "github.com/syndtr/goleveldb/leveldb/util"

	"boscoin.io/polls/lib/errors"
)

type levelDbCore interface {
	Has([]byte, *leveldbOpt.ReadOptions) (bool, error)
	Get([]byte, *leveldbOpt.ReadOptions) ([]byte, error)
	NewIterator(*leveldbUtil.Range, *leveldbOpt.ReadOptions) iterator.Iterator
	Put([]byte, []byte, *leveldbOpt.WriteOptions) error
	Delete([]byte, *leveldbOpt.WriteOptions) error
}

func setLevelDbCoreError(err error) error {
	if err == nil {
		return nil
	}

	return errors.NewError(
		errors.StorageCoreError.Code,
		fmt.Sprintf("%s: %s", errors.StorageCoreError.Message, err.Error()),
	)
}

type LevelDb struct {
	db   *leveldb.DB
	core levelDbCore
}

func NewLevelDb(path string) (*LevelDb, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, setLevelDbCoreError(err)
	}

	return &LevelDb{
		db:   db,
		core: db,
	}, nil
}

func NewMemoryLevelDb() (*LevelDb, error) {
	db, err := leveldb.Open(leveldbStorage.NewMemStorage(), nil)
	if err != nil {
		return nil, setLevelDbCoreError(err)
	}

	return &LevelDb{
		db:   db,
		core: db,
	}, nil
}

func NewLevelDbFromConfig(config *Config) (*LevelDb, error) {
	if config.Scheme == "memory" {
		return NewMemoryLevelDb()
	}
	return NewLevelDb(config.Path)
}

func (o *LevelDb) Close() error {
	return o.db.Close()
}

func (o *LevelDb) Put(key []byte, value []byte) error {
	return setLevelDbCoreError(o.core.Put(key, value, nil))
}

func (o *LevelDb) Has(key []byte) (bool, error) {
	return levelDbHas(o.core, key)
}

func (o *LevelDb) Get(key []byte) ([]byte, error) {
	return levelDbGet(o.core, key)
}

func (o *LevelDb) Delete(key []byte) error {
	return setLevelDbCoreError(o.core.Delete(key, nil))
}

func (o *LevelDb) NewIterator(prefix []byte) Iterator {
	return levelDbIterator(o.core, prefix)
}

// OpenTransaction starts a write transaction. Until Commit, its writes are
// invisible to the LevelDb and to other readers; Discard drops them.
// leveldb allows one open transaction at a time.
func (o *LevelDb) OpenTransaction() (*Transaction, error) {
	ts, err := o.db.OpenTransaction()
	if err != nil {
		return nil, setLevelDbCoreError(err)
	}

	return &Transaction{ts: ts}, nil
}

type Transaction struct {
	ts *leveldb.Transaction
}

func (o *Transaction) Put(key []byte, value []byte) error {
	return setLevelDbCoreError(o.ts.Put(key, value, nil))
}

func (o *Transaction) Has(key []byte) (bool, error) {
	return levelDbHas(o.ts, key)
}

func (o *Transaction) Get(key []byte) ([]byte, error) {
	return levelDbGet(o.ts, key)
}

func (o *Transaction) Delete(key []byte) error {
	return setLevelDbCoreError(o.ts.Delete(key, nil))
}

func (o *Transaction) NewIterator(prefix []byte) Iterator {
	return levelDbIterator(o.ts, prefix)
}

func (o *Transaction) Commit() error {
	return setLevelDbCoreError(o.ts.Commit())
}

func (o *Transaction) Discard() {
	o.ts.Discard()
}

func levelDbHas(core levelDbCore, key []byte) (bool, error) {
	ok, err := core.Has(key, nil)
	if err != nil {
		if err == leveldb.ErrNotFound {
			return false, nil
		}
		return false, setLevelDbCoreError(err)
	}

	return ok, nil
}

func levelDbGet(core levelDbCore, key []byte) ([]byte, error) {
	b, err := core.Get(key, nil)
	if err != nil {
		if err == leveldb.ErrNotFound {
			return nil, errors.StorageRecordDoesNotExist.Clone()
		}
		return nil, setLevelDbCoreError(err)
	}

	return b, nil
}

func levelDbIterator(core levelDbCore, prefix []byte) Iterator {
	var dbRange *leveldbUtil.Range
	if len(prefix) > 0 {
		dbRange = leveldbUtil.BytesPrefix(prefix)
	}

	return core.NewIterator(dbRange, nil)
}
