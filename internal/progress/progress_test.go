package progress

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/vovakirdan/squarecontrol/internal/storage"
)

func TestMarkCompleted(t *testing.T) {
	ctx := context.Background()
	tr := New(storage.NewMemory())

	done, err := tr.Completed(ctx, "sc:1")
	if err != nil || done {
		t.Fatalf("Completed before mark = %v, %v", done, err)
	}
	if err := tr.MarkCompleted(ctx, "sc:1"); err != nil {
		t.Fatal(err)
	}
	if err := tr.MarkCompleted(ctx, "sc:3"); err != nil {
		t.Fatal(err)
	}
	state, err := tr.State(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !state["sc:1"] || !state["sc:3"] || state["sc:2"] {
		t.Errorf("state = %v", state)
	}
}

func TestStoredFormat(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	tr := New(kv)

	_ = tr.MarkCompleted(ctx, "sc:2")
	_ = tr.SetRating(ctx, "sc:2", 4)

	raw, ok, _ := kv.Get(ctx, StateKey)
	if !ok || raw != `{"sc:2":true}` {
		t.Errorf("levelState = %q", raw)
	}
	raw, ok, _ = kv.Get(ctx, RatingKey)
	if !ok || raw != `{"sc:2":4}` {
		t.Errorf("levelRating = %q", raw)
	}
}

func TestRatings(t *testing.T) {
	ctx := context.Background()
	tr := New(storage.NewMemory())

	if r, err := tr.Rating(ctx, "sc:9"); err != nil || r != 0 {
		t.Errorf("unrated level = %v, %v", r, err)
	}
	_ = tr.SetRating(ctx, "sc:9", 3)
	_ = tr.SetRating(ctx, "sc:9", 5)
	if r, _ := tr.Rating(ctx, "sc:9"); r != 5 {
		t.Errorf("Rating = %v, want 5", r)
	}
}

func TestExportAndDeleteAll(t *testing.T) {
	ctx := context.Background()
	tr := New(storage.NewMemory())
	_ = tr.MarkCompleted(ctx, "sc:1")
	_ = tr.SetRating(ctx, "sc:1", 2)

	exp, err := tr.Export(ctx)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := json.Marshal(exp)
	if string(b) != `{"rating":{"sc:1":2},"state":{"sc:1":true}}` {
		t.Errorf("export = %s", b)
	}

	if err := tr.DeleteAll(ctx); err != nil {
		t.Fatal(err)
	}
	exp, _ = tr.Export(ctx)
	if len(exp.Rating) != 0 || len(exp.State) != 0 {
		t.Errorf("export after DeleteAll = %+v", exp)
	}
}

func TestCorruptValue(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	_ = kv.Set(ctx, StateKey, "not json")

	if _, err := New(kv).State(ctx); err == nil {
		t.Error("expected decode error")
	}
}

func TestTrackerOverRedis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	defer mr.Close()

	kv := storage.NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	defer kv.Close()

	ctx := context.Background()
	tr := New(kv)
	if err := tr.MarkCompleted(ctx, "sc:5"); err != nil {
		t.Fatal(err)
	}
	if done, _ := New(kv).Completed(ctx, "sc:5"); !done {
		t.Error("completion not visible to a second tracker")
	}
}
