// Package session keeps the browser-session state: the admin flag and the
// selected barber phone. Records live in redis keyed by a session_id cookie
// and carry a TTL; both values are absent by default.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const (
	keyPrefix = "session:"

	// CookieName carries the session identifier. No Max-Age, so the cookie
	// lives for the browser session, matching the product's storage scope.
	CookieName = "session_id"
)

// Data is the per-session record.
type Data struct {
	Admin       bool   `json:"admin,omitempty"`
	BarberPhone string `json:"barber_phone,omitempty"`
}

// Store reads and writes session records.
type Store struct {
	redis  *redis.Client
	tracer trace.Tracer
	ttl    time.Duration
}

// NewStore returns a redis-backed session store, or nil when redis is absent.
func NewStore(redisClient *redis.Client, ttl time.Duration) *Store {
	if redisClient == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Store{
		redis:  redisClient,
		tracer: otel.Tracer("booking-web.internal.session"),
		ttl:    ttl,
	}
}

// Get loads the session record. A missing session yields the zero Data.
func (s *Store) Get(ctx context.Context, sessionID string) (Data, error) {
	if s == nil || s.redis == nil || sessionID == "" {
		return Data{}, nil
	}
	ctx, span := s.tracer.Start(ctx, "session.get")
	defer span.End()

	raw, err := s.redis.Get(ctx, sessionKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return Data{}, nil
	}
	if err != nil {
		return Data{}, fmt.Errorf("session: load %s: %w", sessionID, err)
	}
	var data Data
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return Data{}, fmt.Errorf("session: decode %s: %w", sessionID, err)
	}
	return data, nil
}

// SetAdmin flips the admin flag. Clearing it on logout uses admin=false.
func (s *Store) SetAdmin(ctx context.Context, sessionID string, admin bool) error {
	return s.update(ctx, "session.set_admin", sessionID, func(data *Data) {
		data.Admin = admin
	})
}

// SetBarberPhone stores the selected establishment's digit string.
func (s *Store) SetBarberPhone(ctx context.Context, sessionID, digits string) error {
	return s.update(ctx, "session.set_barber_phone", sessionID, func(data *Data) {
		data.BarberPhone = digits
	})
}

func (s *Store) update(ctx context.Context, spanName, sessionID string, mutate func(*Data)) error {
	if s == nil || s.redis == nil {
		return nil
	}
	if sessionID == "" {
		return errors.New("session: sessionID required")
	}
	ctx, span := s.tracer.Start(ctx, spanName)
	defer span.End()

	// Sessions are only ever touched by their own browser's requests, so a
	// plain read-modify-write is enough.
	data, err := s.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	mutate(&data)

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("session: encode %s: %w", sessionID, err)
	}
	if err := s.redis.Set(ctx, sessionKey(sessionID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("session: store %s: %w", sessionID, err)
	}
	return nil
}

func sessionKey(sessionID string) string {
	return keyPrefix + sessionID
}

// EnsureCookie returns the request's session ID, issuing a new cookie when
// none exists yet.
func EnsureCookie(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// IDFromRequest returns the session ID without issuing a cookie, for guards
// that only need to read state.
func IDFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(CookieName); err == nil {
		return cookie.Value
	}
	return ""
}
