package redis

import (
	"context"
	"testing"
	"time"

	"car_rental/internal/flash"

	"github.com/alicebob/miniredis/v2"
)

func newTestClient(t *testing.T, ttl time.Duration) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := Initialize("redis://"+mr.Addr(), ttl)
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestClient_PushPop(t *testing.T) {
	c, mr := newTestClient(t, time.Minute)
	ctx := context.Background()

	if err := c.Push(ctx, "sid", flash.Success("Samochód został pomyślnie dodany!")); err != nil {
		t.Fatalf("push: %v", err)
	}
	if err := c.Push(ctx, "sid", flash.Error("Błąd: Wprowadź wszystkie wymagane dane")); err != nil {
		t.Fatalf("push: %v", err)
	}
	if ttl := mr.TTL("flash:sid"); ttl <= 0 || ttl > time.Minute {
		t.Fatalf("unexpected ttl %v", ttl)
	}

	msgs, err := c.Pop(ctx, "sid")
	if err != nil {
		t.Fatalf("pop: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Level != flash.LevelSuccess || msgs[1].Level != flash.LevelError {
		t.Fatalf("messages out of order: %+v", msgs)
	}
	if mr.Exists("flash:sid") {
		t.Fatal("expected key to be removed after pop")
	}
}

func TestClient_PopSkipsUnreadableEntries(t *testing.T) {
	c, mr := newTestClient(t, time.Minute)
	ctx := context.Background()

	if err := c.Push(ctx, "sid", flash.Success("Marka Toyota została dodana!")); err != nil {
		t.Fatalf("push: %v", err)
	}
	if _, err := mr.Push("flash:sid", "{not json"); err != nil {
		t.Fatalf("raw push: %v", err)
	}
	if err := c.Push(ctx, "sid", flash.Error("Nie znaleziono rekordu 7.")); err != nil {
		t.Fatalf("push: %v", err)
	}

	msgs, err := c.Pop(ctx, "sid")
	if err != nil {
		t.Fatalf("pop: %v", err)
	}
	if len(msgs) != 2 || msgs[0].Level != flash.LevelSuccess || msgs[1].Text != "Nie znaleziono rekordu 7." {
		t.Fatalf("unexpected messages %+v", msgs)
	}
	if mr.Exists("flash:sid") {
		t.Fatal("expected key to be removed after pop")
	}
}

func TestClient_PopEmpty(t *testing.T) {
	c, _ := newTestClient(t, time.Minute)

	msgs, err := c.Pop(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("pop: %v", err)
	}
	if len(msgs) != 0 {
		t.Fatalf("expected no messages, got %+v", msgs)
	}
}

func TestClient_MessagesExpire(t *testing.T) {
	c, mr := newTestClient(t, 30*time.Second)
	ctx := context.Background()

	_ = c.Push(ctx, "sid", flash.Error("stale"))
	mr.FastForward(time.Minute)

	msgs, err := c.Pop(ctx, "sid")
	if err != nil {
		t.Fatalf("pop: %v", err)
	}
	if len(msgs) != 0 {
		t.Fatalf("expected expired messages to be gone, got %+v", msgs)
	}
}

func TestInitialize_BadURL(t *testing.T) {
	if _, err := Initialize("://nope", time.Minute); err == nil {
		t.Fatal("expected parse error")
	}
}
