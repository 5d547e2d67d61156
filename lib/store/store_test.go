package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"boscoin.io/polls/lib/errors"
	"boscoin.io/polls/pkg/rawdb"
)

type testRecord struct {
	Name  string `json:"name" msgpack:"name"`
	Count uint64 `json:"count" msgpack:"count"`
}

var codecs = []Codec{JSONCodec, MsgpackCodec}

func TestItem(t *testing.T) {
	for _, codec := range codecs {
		db := rawdb.NewMemoryDb()
		item := NewItem("config", codec)

		exists, err := item.Exists(db)
		require.NoError(t, err)
		require.False(t, exists)

		var fetched testRecord
		found, err := item.MayLoad(db, &fetched)
		require.NoError(t, err)
		require.False(t, found)

		err = item.Load(db, &fetched)
		require.True(t, errors.StorageRecordDoesNotExist.Is(err), codec.Name())

		input := testRecord{Name: "addr1", Count: 3}
		require.NoError(t, item.Save(db, input))

		require.NoError(t, item.Load(db, &fetched))
		require.Equal(t, input, fetched, codec.Name())
	}
}

func TestItemKey(t *testing.T) {
	require.Equal(t, []byte("config"), NewItem("config", nil).Key())
}

func TestMapKeyLayout(t *testing.T) {
	m := NewMap("polls", nil)
	require.Equal(t, append([]byte{0x00, 0x05, 'p', 'o', 'l', 'l', 's'}, []byte("q?")...), m.Key("q?"))
}

func TestMap(t *testing.T) {
	for _, codec := range codecs {
		db := rawdb.NewMemoryDb()
		m := NewMap("polls", codec)
		key := uuid.New().String()

		has, err := m.Has(db, key)
		require.NoError(t, err)
		require.False(t, has)

		var fetched testRecord
		found, err := m.MayLoad(db, key, &fetched)
		require.NoError(t, err)
		require.False(t, found)

		err = m.Load(db, key, &fetched)
		require.True(t, errors.StorageRecordDoesNotExist.Is(err))

		require.NoError(t, m.Save(db, key, testRecord{Name: key, Count: 1}))

		found, err = m.MayLoad(db, key, &fetched)
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, testRecord{Name: key, Count: 1}, fetched)
	}
}

func TestMapNamespacesDoNotCollide(t *testing.T) {
	db := rawdb.NewMemoryDb()
	a := NewMap("a", nil)
	ab := NewMap("ab", nil)

	require.NoError(t, a.Save(db, "bc", testRecord{Name: "a"}))

	has, err := ab.Has(db, "c")
	require.NoError(t, err)
	require.False(t, has)
}

func TestMapWalk(t *testing.T) {
	db, err := rawdb.NewMemoryLevelDb()
	require.NoError(t, err)
	defer db.Close()

	m := NewMap("polls", nil)
	other := NewMap("pollsx", nil)

	require.NoError(t, m.Save(db, "b", testRecord{Name: "b", Count: 2}))
	require.NoError(t, m.Save(db, "a", testRecord{Name: "a", Count: 1}))
	require.NoError(t, other.Save(db, "c", testRecord{Name: "c"}))
	require.NoError(t, NewItem("config", nil).Save(db, testRecord{Name: "config"}))

	var names []string
	err = m.Walk(db, func(key string, value []byte) (bool, error) {
		var r testRecord
		if err := m.Decode(value, &r); err != nil {
			return false, err
		}
		require.Equal(t, key, r.Name)
		names = append(names, r.Name)
		return true, nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, names)

	// stop early
	names = nil
	err = m.Walk(db, func(key string, value []byte) (bool, error) {
		names = append(names, key)
		return false, nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"a"}, names)
}

func TestMapDecodeFailure(t *testing.T) {
	db := rawdb.NewMemoryDb()
	m := NewMap("polls", JSONCodec)
	require.NoError(t, db.Put(m.Key("broken"), []byte("{")))

	var r testRecord
	_, err := m.MayLoad(db, "broken", &r)
	require.Error(t, err)
	require.False(t, errors.StorageRecordDoesNotExist.Is(err))
}

func TestCodecByName(t *testing.T) {
	c, ok := CodecByName("msgpack")
	require.True(t, ok)
	require.Equal(t, MsgpackCodec, c)

	_, ok = CodecByName("xml")
	require.False(t, ok)
}
