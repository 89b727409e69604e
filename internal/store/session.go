package store

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"

	"vendor-booking-portal/internal/models"
)

const workspaceSessionKey = "workspace"

// NewFilesystemSessions returns a gorilla session store that keeps session
// values in files under dir and only the session id in the cookie. The
// securecookie length cap is lifted since a full draft does not fit in 4096
// bytes.
func NewFilesystemSessions(dir string, options *sessions.Options, keyPairs ...[]byte) *sessions.FilesystemStore {
	fs := sessions.NewFilesystemStore(dir, keyPairs...)
	fs.MaxLength(0)
	if options != nil {
		fs.Options = options
	}
	return fs
}

// SessionWorkspaceStore keeps the workspace JSON among the session values
type SessionWorkspaceStore struct {
	store       sessions.Store
	sessionName string
}

// NewSessionWorkspaceStore creates a cookie backed workspace store
func NewSessionWorkspaceStore(store sessions.Store, sessionName string) *SessionWorkspaceStore {
	return &SessionWorkspaceStore{
		store:       store,
		sessionName: sessionName,
	}
}

// Load returns the workspace from the session or a fresh one
func (s *SessionWorkspaceStore) Load(r *http.Request) (*models.Workspace, error) {
	session, err := s.store.Get(r, s.sessionName)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	raw, ok := session.Values[workspaceSessionKey].(string)
	if !ok || raw == "" {
		return models.NewWorkspace(), nil
	}

	return decodeWorkspace([]byte(raw))
}

// Save writes the workspace into the session
func (s *SessionWorkspaceStore) Save(w http.ResponseWriter, r *http.Request, ws *models.Workspace) error {
	session, err := s.store.Get(r, s.sessionName)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	data, err := encodeWorkspace(ws)
	if err != nil {
		return err
	}

	session.Values[workspaceSessionKey] = string(data)
	return session.Save(r, w)
}

// Clear removes the workspace from the session
func (s *SessionWorkspaceStore) Clear(w http.ResponseWriter, r *http.Request) error {
	session, err := s.store.Get(r, s.sessionName)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	delete(session.Values, workspaceSessionKey)
	return session.Save(r, w)
}
