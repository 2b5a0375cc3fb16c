package flash

import (
	"context"
	"testing"
)

func TestMemoryStore_PopIsOneShot(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_ = s.Push(ctx, "a", Success("Marka Toyota została pomyślnie dodana!"))
	_ = s.Push(ctx, "a", Error("drugi"))
	_ = s.Push(ctx, "b", Error("inna sesja"))

	msgs, err := s.Pop(ctx, "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(msgs) != 2 || msgs[0].Level != LevelSuccess || msgs[1].Text != "drugi" {
		t.Fatalf("unexpected messages: %+v", msgs)
	}

	again, _ := s.Pop(ctx, "a")
	if len(again) != 0 {
		t.Fatalf("expected messages to be consumed, got %+v", again)
	}

	other, _ := s.Pop(ctx, "b")
	if len(other) != 1 {
		t.Fatalf("expected other session untouched, got %+v", other)
	}
}
