package cache_test

import (
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	testingclock "k8s.io/utils/clock/testing"

	"github.com/Inexplicable-YL/LRU-TTLCache/pkg/cache"
)

func newTTL(t *testing.T, ttl time.Duration) (*cache.TTLCache[string, int], *testingclock.FakeClock) {
	t.Helper()
	clk := testingclock.NewFakeClock(time.Now())
	c, err := cache.NewTTLWithClock[string, int](ttl, clk)
	if err != nil {
		t.Fatalf("not expected error = %v", err)
	}
	return c, clk
}

func TestNewTTL(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		c, err := cache.NewTTL[string, int](time.Minute)
		if err != nil {
			t.Fatalf("not expected error = %v", err)
		}
		if got := c.Len(); got != 0 {
			t.Errorf("new cache not empty: Len() = %d", got)
		}
	})

	cases := []struct {
		name string
		ttl  time.Duration
	}{
		{"zero ttl", 0},
		{"negative ttl", -time.Second},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := cache.NewTTL[string, int](tt.ttl); err == nil {
				t.Error("error expected")
			}
		})
	}
}

func TestTTLCache_GetFresh(t *testing.T) {
	c, clk := newTTL(t, 50*time.Millisecond)
	c.Set("a", 1)

	got, err := c.Get("a")
	if err != nil {
		t.Fatalf("Get(a) error = %v", err)
	}
	if got != 1 {
		t.Errorf("Get(a) = %d, want 1", got)
	}

	// An entry aged exactly ttl is still live.
	clk.Step(50 * time.Millisecond)
	if _, err := c.Get("a"); err != nil {
		t.Errorf("Get(a) at exactly ttl error = %v", err)
	}
}

func TestTTLCache_GetExpired(t *testing.T) {
	c, clk := newTTL(t, 50*time.Millisecond)
	c.Set("a", 1)

	clk.Step(51 * time.Millisecond)
	if _, err := c.Get("a"); !errors.Is(err, cache.ErrNotFound) {
		t.Errorf("Get(a) error = %v, want ErrNotFound", err)
	}
	if c.Contains("a") {
		t.Error("Contains(a) = true after expiry")
	}
}

func TestTTLCache_SetRefreshesTTL(t *testing.T) {
	c, clk := newTTL(t, 50*time.Millisecond)
	c.Set("a", 1)

	// Re-set just before expiry restarts the window for the new value.
	clk.Step(40 * time.Millisecond)
	c.Set("a", 2)

	clk.Step(40 * time.Millisecond)
	got, err := c.Get("a")
	if err != nil {
		t.Fatalf("Get(a) error = %v", err)
	}
	if got != 2 {
		t.Errorf("Get(a) = %d, want 2", got)
	}

	clk.Step(11 * time.Millisecond)
	if _, err := c.Get("a"); !errors.Is(err, cache.ErrNotFound) {
		t.Errorf("Get(a) error = %v, want ErrNotFound", err)
	}
}

func TestTTLCache_ContainsExpiresEntry(t *testing.T) {
	c, clk := newTTL(t, 50*time.Millisecond)
	c.Set("a", 1)

	if !c.Contains("a") {
		t.Fatal("Contains(a) = false, want true")
	}
	clk.Step(51 * time.Millisecond)
	if c.Contains("a") {
		t.Error("Contains(a) = true, want false")
	}
	if got := c.Len(); got != 0 {
		t.Errorf("Len() = %d after expiring check, want 0", got)
	}
}

func TestTTLCache_Delete(t *testing.T) {
	c, clk := newTTL(t, 50*time.Millisecond)
	c.Set("a", 1)

	if err := c.Delete("a"); err != nil {
		t.Fatalf("Delete(a) error = %v", err)
	}
	if err := c.Delete("a"); !errors.Is(err, cache.ErrNotFound) {
		t.Errorf("Delete(a) error = %v, want ErrNotFound", err)
	}

	// A present entry is deletable even after it expired.
	c.Set("b", 2)
	clk.Step(time.Second)
	if err := c.Delete("b"); err != nil {
		t.Errorf("Delete(b) after expiry error = %v", err)
	}
}

func TestTTLCache_LenSweeps(t *testing.T) {
	c, clk := newTTL(t, 50*time.Millisecond)
	c.Set("a", 1)
	c.Set("b", 2)

	clk.Step(30 * time.Millisecond)
	c.Set("c", 3)

	// a and b are stale now, c is not.
	clk.Step(30 * time.Millisecond)
	if got := c.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}

	keys := c.Keys()
	sort.Strings(keys)
	if diff := cmp.Diff([]string{"c"}, keys); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
}

func TestTTLCache_GetOrDefault(t *testing.T) {
	c, clk := newTTL(t, 50*time.Millisecond)
	c.Set("a", 1)

	if got := c.GetOrDefault("a", -1); got != 1 {
		t.Errorf("GetOrDefault(a) = %d, want 1", got)
	}
	if got := c.GetOrDefault("missing", -1); got != -1 {
		t.Errorf("GetOrDefault(missing) = %d, want -1", got)
	}

	clk.Step(time.Second)
	if got := c.GetOrDefault("a", -1); got != -1 {
		t.Errorf("GetOrDefault(a) after expiry = %d, want -1", got)
	}
}

func TestTTLCache_String(t *testing.T) {
	c, clk := newTTL(t, 50*time.Millisecond)
	c.Set("a", 1)
	c.Set("b", 2)
	clk.Step(51 * time.Millisecond)
	c.Set("c", 3)

	if got, want := c.String(), "TTLCache{c: 3}"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
