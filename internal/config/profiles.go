package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	ErrNoCurrentProfile = errors.New("no profile selected")
	ErrProfileNotFound  = errors.New("profile not found")
)

// Profile holds one saved credential set for the Sendcast API.
type Profile struct {
	Name       string    `json:"name"`
	APIKey     string    `json:"api_key"`
	APISecret  string    `json:"api_secret"`
	AccountID  string    `json:"account_id"`
	AccountName string   `json:"account_name,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	LastUsedAt time.Time `json:"lastUsedAt"`
}

// ProfileStore manages profile persistence in profiles.json.
type ProfileStore struct {
	Profiles []Profile `json:"profiles"`
	Current  string    `json:"current_profile"` // profile name

	mu   sync.RWMutex
	path string
}

func profilesPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "profiles.json"), nil
}

// LoadProfiles reads the profile store from disk.
func LoadProfiles() (*ProfileStore, error) {
	path, err := profilesPath()
	if err != nil {
		return nil, err
	}

	ps := &ProfileStore{
		Profiles: []Profile{},
		path:     path,
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return ps, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, ps); err != nil {
		return nil, err
	}
	ps.path = path

	return ps, nil
}

// AddProfile upserts a profile and makes it current.
func (ps *ProfileStore) AddProfile(p Profile) error {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	ps.removeProfileLocked(p.Name)
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	p.LastUsedAt = time.Now()

	ps.Profiles = append(ps.Profiles, p)
	ps.Current = p.Name

	return ps.saveLocked()
}

// GetProfile retrieves a profile by name.
func (ps *ProfileStore) GetProfile(name string) (*Profile, error) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	for i := range ps.Profiles {
		if ps.Profiles[i].Name == name {
			return &ps.Profiles[i], nil
		}
	}
	return nil, ErrProfileNotFound
}

// CurrentProfile returns the selected profile.
func (ps *ProfileStore) CurrentProfile() (*Profile, error) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	if ps.Current == "" {
		return nil, ErrNoCurrentProfile
	}
	for i := range ps.Profiles {
		if ps.Profiles[i].Name == ps.Current {
			return &ps.Profiles[i], nil
		}
	}
	return nil, ErrNoCurrentProfile
}

// UseProfile switches the current profile and touches its last-used time.
func (ps *ProfileStore) UseProfile(name string) error {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	found := false
	for i := range ps.Profiles {
		if ps.Profiles[i].Name == name {
			ps.Profiles[i].LastUsedAt = time.Now()
			found = true
			break
		}
	}
	if !found {
		return ErrProfileNotFound
	}

	ps.Current = name
	return ps.saveLocked()
}

// RemoveProfile deletes a profile by name. If it was current, the first
// remaining profile becomes current.
func (ps *ProfileStore) RemoveProfile(name string) error {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	if !ps.removeProfileLocked(name) {
		return ErrProfileNotFound
	}

	if ps.Current == name {
		if len(ps.Profiles) > 0 {
			ps.Current = ps.Profiles[0].Name
		} else {
			ps.Current = ""
		}
	}

	return ps.saveLocked()
}

// ListProfiles returns all stored profiles.
func (ps *ProfileStore) ListProfiles() []Profile {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	result := make([]Profile, len(ps.Profiles))
	copy(result, ps.Profiles)
	return result
}

// Internal helpers

func (ps *ProfileStore) removeProfileLocked(name string) bool {
	for i, p := range ps.Profiles {
		if p.Name == name {
			ps.Profiles = append(ps.Profiles[:i], ps.Profiles[i+1:]...)
			return true
		}
	}
	return false
}

func (ps *ProfileStore) saveLocked() error {
	if err := EnsureDir(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(ps, "", "  ")
	if err != nil {
		return err
	}
	// Credentials: owner read/write only
	return os.WriteFile(ps.path, data, 0600)
}
