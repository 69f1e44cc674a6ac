package save

import (
	"context"
	"errors"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/rummy/consts"
	"github.com/ratel-online/rummy/rummy/game"
)

// Manager saves and resumes the one session kept under its key.
type Manager struct {
	store Store
	key   string
	now   func() time.Time
}

func NewManager(store Store, key string) *Manager {
	if key == "" {
		key = consts.SaveKey
	}
	return &Manager{store: store, key: key, now: time.Now}
}

func (m *Manager) SaveGame(ctx context.Context, session *game.Session) error {
	data, err := Encode(FromSession(session, m.now()))
	if err != nil {
		return err
	}
	return m.store.Save(ctx, m.key, data)
}

// LoadGame returns the saved session and when it was saved. A save that cannot
// be decoded or restored is logged, cleared and reported as consts.ErrorsSaveNotFound.
func (m *Manager) LoadGame(ctx context.Context, opts ...game.Option) (*game.Session, time.Time, error) {
	data, err := m.store.Load(ctx, m.key)
	if err != nil {
		return nil, time.Time{}, err
	}
	snapshot, err := Decode(data)
	if err == nil {
		var session *game.Session
		if session, err = snapshot.Restore(opts...); err == nil {
			return session, snapshot.SavedAt(), nil
		}
	}

	log.Errorf("discarding saved game %s: %v\n", m.key, err)
	if clearErr := m.ClearSave(ctx); clearErr != nil {
		log.Errorf("clear saved game %s err: %v\n", m.key, clearErr)
	}
	return nil, time.Time{}, consts.ErrorsSaveNotFound
}

func (m *Manager) HasSavedGame(ctx context.Context) bool {
	_, err := m.store.Load(ctx, m.key)
	if err != nil && !errors.Is(err, consts.ErrorsSaveNotFound) {
		log.Errorf("load saved game %s err: %v\n", m.key, err)
	}
	return err == nil
}

func (m *Manager) ClearSave(ctx context.Context) error {
	return m.store.Delete(ctx, m.key)
}
