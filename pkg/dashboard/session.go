package dashboard

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/Oppro-net-Development/ManagerX/utils"
)

// Storage keys shared with the web dashboard's persistent storage. They live
// and die together: Clear removes all three.
const (
	KeyAccessToken  = "discord_token"
	KeyRefreshToken = "discord_refresh_token"
	KeyUserInfo     = "user_info"
)

// SessionStore holds the Discord token pair and cached user info. There is
// no expiry bookkeeping: token death is discovered reactively through a 401.
type SessionStore interface {
	AccessToken() string
	RefreshToken() string
	UserInfo() string
	SetTokens(accessToken, refreshToken string)
	SetUserInfo(info string)
	Clear()
}

// MemorySessionStore is the in-process store used by tests and short-lived
// tools.
type MemorySessionStore struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{data: make(map[string]string)}
}

func (s *MemorySessionStore) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data[KeyAccessToken]
}

func (s *MemorySessionStore) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data[KeyRefreshToken]
}

func (s *MemorySessionStore) UserInfo() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data[KeyUserInfo]
}

func (s *MemorySessionStore) SetTokens(accessToken, refreshToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[KeyAccessToken] = accessToken
	if refreshToken != "" {
		s.data[KeyRefreshToken] = refreshToken
	}
}

func (s *MemorySessionStore) SetUserInfo(info string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[KeyUserInfo] = info
}

func (s *MemorySessionStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, KeyAccessToken)
	delete(s.data, KeyRefreshToken)
	delete(s.data, KeyUserInfo)
}

// FileSessionStore persists the session as a small JSON file, the CLI
// counterpart of the browser's persistent storage. With a non-empty
// encryption key (base64, 32 bytes) token values are sealed at rest with
// AES-256-GCM.
type FileSessionStore struct {
	mu      sync.Mutex
	path    string
	key     string
	data    map[string]string
}

func NewFileSessionStore(path, encryptionKey string) (*FileSessionStore, error) {
	s := &FileSessionStore{
		path: path,
		key:  encryptionKey,
		data: make(map[string]string),
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileSessionStore) get(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	val := s.data[key]
	if val == "" || s.key == "" || key == KeyUserInfo {
		return val
	}
	plain, err := utils.Decrypt(val, s.key)
	if err != nil {
		return ""
	}
	return plain
}

func (s *FileSessionStore) AccessToken() string  { return s.get(KeyAccessToken) }
func (s *FileSessionStore) RefreshToken() string { return s.get(KeyRefreshToken) }
func (s *FileSessionStore) UserInfo() string     { return s.get(KeyUserInfo) }

func (s *FileSessionStore) SetTokens(accessToken, refreshToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[KeyAccessToken] = s.seal(accessToken)
	if refreshToken != "" {
		s.data[KeyRefreshToken] = s.seal(refreshToken)
	}
	s.persist()
}

func (s *FileSessionStore) SetUserInfo(info string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[KeyUserInfo] = info
	s.persist()
}

func (s *FileSessionStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, KeyAccessToken)
	delete(s.data, KeyRefreshToken)
	delete(s.data, KeyUserInfo)
	s.persist()
}

func (s *FileSessionStore) seal(value string) string {
	if s.key == "" || value == "" {
		return value
	}
	sealed, err := utils.Encrypt(value, s.key)
	if err != nil {
		// an unusable key must not silently store plaintext
		panic("session store: " + err.Error())
	}
	return sealed
}

func (s *FileSessionStore) persist() {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return
	}
	_ = os.WriteFile(s.path, raw, 0600)
}
