package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewStore(client, time.Hour)
}

func TestGetMissingSessionIsZero(t *testing.T) {
	store := newTestStore(t)
	data, err := store.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if data.Admin || data.BarberPhone != "" {
		t.Fatalf("expected zero data, got %+v", data)
	}
}

func TestSetAdminRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.SetAdmin(ctx, "sid-1", true); err != nil {
		t.Fatalf("SetAdmin() error = %v", err)
	}
	data, err := store.Get(ctx, "sid-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !data.Admin {
		t.Fatal("admin flag should be set")
	}

	// logout clears the flag
	if err := store.SetAdmin(ctx, "sid-1", false); err != nil {
		t.Fatalf("SetAdmin(false) error = %v", err)
	}
	data, _ = store.Get(ctx, "sid-1")
	if data.Admin {
		t.Fatal("admin flag should be cleared")
	}
}

func TestBarberPhoneSurvivesAdminToggle(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.SetBarberPhone(ctx, "sid-2", "11888888888"); err != nil {
		t.Fatalf("SetBarberPhone() error = %v", err)
	}
	if err := store.SetAdmin(ctx, "sid-2", true); err != nil {
		t.Fatalf("SetAdmin() error = %v", err)
	}

	data, err := store.Get(ctx, "sid-2")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if data.BarberPhone != "11888888888" {
		t.Fatalf("barber phone = %q, want 11888888888", data.BarberPhone)
	}
	if !data.Admin {
		t.Fatal("admin flag should be set")
	}
}

func TestUpdateRequiresSessionID(t *testing.T) {
	store := newTestStore(t)
	if err := store.SetAdmin(context.Background(), "", true); err == nil {
		t.Fatal("expected error for empty session id")
	}
}

func TestNilStoreIsSafe(t *testing.T) {
	var store *Store
	if err := store.SetAdmin(context.Background(), "sid", true); err != nil {
		t.Fatalf("nil store SetAdmin error = %v", err)
	}
	if _, err := store.Get(context.Background(), "sid"); err != nil {
		t.Fatalf("nil store Get error = %v", err)
	}
}

func TestEnsureCookieIssuesAndReuses(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	id := EnsureCookie(rec, req)
	if id == "" {
		t.Fatal("expected a session id")
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != CookieName {
		t.Fatalf("expected %s cookie, got %v", CookieName, cookies)
	}
	if cookies[0].MaxAge != 0 {
		t.Fatalf("cookie must be session-scoped, got MaxAge=%d", cookies[0].MaxAge)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.AddCookie(&http.Cookie{Name: CookieName, Value: id})
	rec2 := httptest.NewRecorder()
	if got := EnsureCookie(rec2, req2); got != id {
		t.Fatalf("expected reused id %s, got %s", id, got)
	}
	if len(rec2.Result().Cookies()) != 0 {
		t.Fatal("no new cookie should be issued for an existing session")
	}
}
