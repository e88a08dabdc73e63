package mem

import (
	"testing"
	"time"
)

func TestCacheSetGet(t *testing.T) {
	c := New(time.Minute)
	c.Set("teams_all", []string{"a", "b"})

	got, ok := c.Get("teams_all")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if len(got.([]string)) != 2 {
		t.Errorf("got %v", got)
	}
	if _, ok := c.Get("players_all"); ok {
		t.Error("unexpected hit for missing key")
	}
}

func TestCacheExpiry(t *testing.T) {
	c := New(10 * time.Millisecond)
	c.Set("teams_all", 1)

	time.Sleep(20 * time.Millisecond)
	if _, ok := c.Get("teams_all"); ok {
		t.Error("expected entry to expire")
	}
}

func TestCacheInvalidate(t *testing.T) {
	c := New(time.Minute)
	c.Set("teams_all", 1)
	c.Set("players_all", 2)

	c.Invalidate("teams_all")
	if _, ok := c.Get("teams_all"); ok {
		t.Error("expected invalidated key to miss")
	}
	if _, ok := c.Get("players_all"); !ok {
		t.Error("expected untouched key to hit")
	}
}
