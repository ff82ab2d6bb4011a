package config

import (
	"errors"
	"os"

	"github.com/sendcast/sendcast-cli/internal/api"
)

var ErrNotAuthenticated = errors.New("not logged in. Run 'sendcast login' or set SENDCAST_API_KEY")

// NewClient builds an API client from the environment or the current
// profile. Env credentials win so CI never touches profiles.json.
func NewClient(profileName string) (*api.Client, error) {
	if key := os.Getenv("SENDCAST_API_KEY"); key != "" {
		return api.New(key, os.Getenv("SENDCAST_API_SECRET"), api.WithBaseURL(BaseURL())), nil
	}

	ps, err := LoadProfiles()
	if err != nil {
		return nil, err
	}

	var profile *Profile
	if profileName != "" {
		profile, err = ps.GetProfile(profileName)
	} else {
		profile, err = ps.CurrentProfile()
	}
	if err != nil {
		return nil, ErrNotAuthenticated
	}

	return api.New(profile.APIKey, profile.APISecret, api.WithBaseURL(BaseURL())), nil
}
