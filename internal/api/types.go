package api

import "time"

// Subscriber is one list member as the API reports it.
type Subscriber struct {
	ID           string            `json:"id"`
	Email        string            `json:"email"`
	Name         string            `json:"name,omitempty"`
	State        string            `json:"state"` // active, pending, unsubscribed, suppressed, bounced, complained
	Tags         []string          `json:"tags,omitempty"`
	Fields       map[string]string `json:"fields,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	SubscribedAt *time.Time        `json:"subscribed_at,omitempty"`
}

// ImportRecord is one row of a subscriber import.
type ImportRecord struct {
	Email      string            `json:"email"`
	Name       string            `json:"name,omitempty"`
	Tags       []string          `json:"tags,omitempty"`
	RemoveTags []string          `json:"remove_tags,omitempty"`
	Fields     map[string]string `json:"fields,omitempty"`
}

// ImportBatch is the payload for the bulk import endpoint.
type ImportBatch struct {
	BatchID     string         `json:"batch_id"`
	Subscribers []ImportRecord `json:"subscribers"`
}

// ImportResult is the bulk import endpoint's accounting.
type ImportResult struct {
	BatchID  string `json:"batch_id"`
	Imported int    `json:"imported"`
	Updated  int    `json:"updated"`
	Skipped  int    `json:"skipped"`
}

// Tag is a named label with a member count.
type Tag struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Count     int       `json:"count"`
	CreatedAt time.Time `json:"created_at"`
}

// Field is a custom subscriber field definition.
type Field struct {
	ID    string `json:"id"`
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"` // text, number, date
}

// Broadcast is one sent or scheduled campaign.
type Broadcast struct {
	ID          string     `json:"id"`
	Subject     string     `json:"subject"`
	Status      string     `json:"status"` // draft, scheduled, sending, sent
	Recipients  int        `json:"recipients"`
	SentAt      *time.Time `json:"sent_at,omitempty"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
}

// BroadcastStats holds per-broadcast engagement numbers.
type BroadcastStats struct {
	BroadcastID  string  `json:"broadcast_id"`
	Delivered    int     `json:"delivered"`
	Opens        int     `json:"opens"`
	Clicks       int     `json:"clicks"`
	Unsubscribes int     `json:"unsubscribes"`
	Bounces      int     `json:"bounces"`
	OpenRate     float64 `json:"open_rate"`
	ClickRate    float64 `json:"click_rate"`
}

// Event is a custom subscriber event (purchase, visit, ...).
type Event struct {
	Email      string            `json:"email"`
	Name       string            `json:"name"`
	Properties map[string]string `json:"properties,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// AccountStats is the account-wide dashboard summary.
type AccountStats struct {
	Subscribers   int       `json:"subscribers"`
	Active        int       `json:"active"`
	Unsubscribed  int       `json:"unsubscribed"`
	Suppressed    int       `json:"suppressed"`
	GrowthWeek    int       `json:"growth_week"`
	GrowthMonth   int       `json:"growth_month"`
	AvgOpenRate   float64   `json:"avg_open_rate"`
	AvgClickRate  float64   `json:"avg_click_rate"`
	RefreshedAt   time.Time `json:"refreshed_at"`
}

// Account identifies the authenticated account; used to validate logins.
type Account struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Plan  string `json:"plan"`
}

// Page wraps a paginated list response.
type Page[T any] struct {
	Items    []T  `json:"items"`
	Total    int  `json:"total"`
	Page     int  `json:"page"`
	PageSize int  `json:"page_size"`
	HasMore  bool `json:"has_more"`
}
