package store

import (
	pkgerrors "github.com/pkg/errors"

	"boscoin.io/polls/lib/errors"
)

// Item is a singleton slot stored under a fixed key.
type Item struct {
	key   []byte
	codec Codec
}

func NewItem(key string, codec Codec) Item {
	if codec == nil {
		codec = DefaultCodec
	}

	return Item{key: []byte(key), codec: codec}
}

func (i Item) Key() []byte {
	return i.key
}

func (i Item) Exists(r Reader) (bool, error) {
	return r.Has(i.key)
}

func (i Item) Save(w Writer, v interface{}) error {
	b, err := i.codec.Marshal(v)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to encode item %q", i.key)
	}

	return w.Put(i.key, b)
}

// Load fails with StorageRecordDoesNotExist when nothing was saved.
func (i Item) Load(r Reader, v interface{}) error {
	found, err := i.MayLoad(r, v)
	if err != nil {
		return err
	}
	if !found {
		return errors.StorageRecordDoesNotExist.Clone().SetData("key", string(i.key))
	}

	return nil
}

func (i Item) MayLoad(r Reader, v interface{}) (bool, error) {
	return mayLoad(r, i.codec, i.key, v)
}

func mayLoad(r Reader, codec Codec, key []byte, v interface{}) (bool, error) {
	b, err := r.Get(key)
	if err != nil {
		if errors.StorageRecordDoesNotExist.Is(err) {
			return false, nil
		}
		return false, err
	}

	if err := codec.Unmarshal(b, v); err != nil {
		return false, pkgerrors.Wrapf(err, "failed to decode %q", key)
	}

	return true, nil
}
