package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/moodkeeper/internal/client/models"
	"github.com/dmitrijs2005/moodkeeper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/moodkeeper/internal/common"
	"github.com/dmitrijs2005/moodkeeper/internal/logging"
	"github.com/dmitrijs2005/moodkeeper/internal/timex"
)

// UserFinder resolves a user id. It returns common.ErrorNotFound when the
// user does not exist.
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// SessionManager owns the single persisted session slot. The slot is read
// lazily on first use and cached until Start or End replaces it.
type SessionManager struct {
	store kv.Store
	log   logging.Logger
	now   func() time.Time

	mu      sync.Mutex
	loaded  bool
	current *models.Session
}

func NewSessionManager(store kv.Store, log logging.Logger) *SessionManager {
	return &SessionManager{store: store, log: log, now: time.Now}
}

// Start persists a session for userID, replacing any previous one.
func (m *SessionManager) Start(ctx context.Context, userID string) error {
	s := models.Session{UserID: userID, CreatedAt: timex.UnixMilli(m.now())}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Set(ctx, common.SessionKey, data); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	m.current, m.loaded = &s, true

	m.log.Info(ctx, "session started", "user_id", userID)
	return nil
}

// Current returns the persisted session, or nil when there is none or the
// stored value is malformed.
func (m *SessionManager) Current(ctx context.Context) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.loaded {
		return m.current, nil
	}

	raw, err := m.store.Get(ctx, common.SessionKey)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	m.current, m.loaded = decodeSession(raw), true
	return m.current, nil
}

// RequireValid resolves the session to its user. When there is no session,
// or it names a user that no longer exists, the slot is cleared and
// common.ErrUnauthenticated is returned.
func (m *SessionManager) RequireValid(ctx context.Context, users UserFinder) (*models.User, error) {
	s, err := m.Current(ctx)
	if err != nil {
		return nil, err
	}
	if s == nil {
		if err := m.End(ctx); err != nil {
			return nil, err
		}
		return nil, common.ErrUnauthenticated
	}

	u, err := users.FindByID(ctx, s.UserID)
	if errors.Is(err, common.ErrorNotFound) {
		m.log.Warn(ctx, "session refers to unknown user, clearing", "user_id", s.UserID)
		if err := m.End(ctx); err != nil {
			return nil, err
		}
		return nil, common.ErrUnauthenticated
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// End removes the persisted session.
func (m *SessionManager) End(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Delete(ctx, common.SessionKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	if m.current != nil {
		m.log.Info(ctx, "session ended", "user_id", m.current.UserID)
	}
	m.current, m.loaded = nil, true
	return nil
}

// decodeSession returns nil unless raw is a JSON object with a non-empty
// userId.
func decodeSession(raw []byte) *models.Session {
	if len(raw) == 0 {
		return nil
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil || doc == nil {
		return nil
	}
	id := asString(doc["userId"], "")
	if id == "" {
		return nil
	}
	return &models.Session{UserID: id, CreatedAt: asMillis(doc["createdAt"], 0)}
}
