package store

import (
	pkgerrors "github.com/pkg/errors"

	"boscoin.io/polls/lib/errors"
)

// Map is a namespaced mapping from string keys to values.
//
// Has followed by Save is not atomic; callers rely on the host running one
// transaction at a time against the underlying storage.
type Map struct {
	namespace []byte
	codec     Codec
}

func NewMap(namespace string, codec Codec) Map {
	if codec == nil {
		codec = DefaultCodec
	}

	return Map{namespace: []byte(namespace), codec: codec}
}

func (m Map) Key(k string) []byte {
	return namespaceKey(m.namespace, []byte(k))
}

func (m Map) Has(r Reader, k string) (bool, error) {
	return r.Has(m.Key(k))
}

func (m Map) Save(w Writer, k string, v interface{}) error {
	b, err := m.codec.Marshal(v)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to encode %q in %q", k, m.namespace)
	}

	return w.Put(m.Key(k), b)
}

func (m Map) Load(r Reader, k string, v interface{}) error {
	found, err := m.MayLoad(r, k, v)
	if err != nil {
		return err
	}
	if !found {
		return errors.StorageRecordDoesNotExist.Clone().
			SetData("namespace", string(m.namespace)).
			SetData("key", k)
	}

	return nil
}

func (m Map) MayLoad(r Reader, k string, v interface{}) (bool, error) {
	return mayLoad(r, m.codec, m.Key(k), v)
}

type WalkFunc func(key string, value []byte) (bool, error)

// Walk visits the entries of the map in ascending key order until walkFunc
// returns false or an error. Decode the value with Decode.
func (m Map) Walk(r Reader, walkFunc WalkFunc) error {
	prefix := namespaceKey(m.namespace, nil)

	iter := r.NewIterator(prefix)
	defer iter.Release()

	for iter.Next() {
		key := string(iter.Key()[len(prefix):])
		value := append([]byte(nil), iter.Value()...)

		if next, err := walkFunc(key, value); err != nil {
			return err
		} else if !next {
			break
		}
	}

	return iter.Error()
}

func (m Map) Decode(b []byte, v interface{}) error {
	return m.codec.Unmarshal(b, v)
}
