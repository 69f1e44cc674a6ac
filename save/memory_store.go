package save

import (
	"context"
	"sort"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/rummy/consts"
)

var memorySaves = hashmap.New()

type memorySave struct {
	namespace string
	key       string
	data      []byte
}

// MemoryStore keeps saves for the life of the process. Stores with the same
// namespace share their saves.
type MemoryStore struct {
	namespace string
}

func NewMemoryStore(namespace string) *MemoryStore {
	return &MemoryStore{namespace: namespace}
}

func (s *MemoryStore) entryKey(key string) string {
	return s.namespace + "/" + key
}

func (s *MemoryStore) Load(ctx context.Context, key string) ([]byte, error) {
	if v, ok := memorySaves.Get(s.entryKey(key)); ok {
		return append([]byte{}, v.(*memorySave).data...), nil
	}
	return nil, consts.ErrorsSaveNotFound
}

func (s *MemoryStore) Save(ctx context.Context, key string, data []byte) error {
	memorySaves.Set(s.entryKey(key), &memorySave{
		namespace: s.namespace,
		key:       key,
		data:      append([]byte{}, data...),
	})
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	memorySaves.Del(s.entryKey(key))
	return nil
}

// Keys lists the keys saved in this namespace, sorted.
func (s *MemoryStore) Keys() []string {
	keys := make([]string, 0)
	memorySaves.Foreach(func(e *hashmap.Entry) {
		if saved := e.Value().(*memorySave); saved.namespace == s.namespace {
			keys = append(keys, saved.key)
		}
	})
	sort.Strings(keys)
	return keys
}
