package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// testKV runs the behaviour every backend must share.
func testKV(t *testing.T, kv KV) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := kv.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("Get(missing) = %v, %v", ok, err)
	}

	if err := kv.Set(ctx, "a", "1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := kv.Set(ctx, "a", "2"); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	if err := kv.Set(ctx, "b", "x"); err != nil {
		t.Fatal(err)
	}
	if v, ok, err := kv.Get(ctx, "a"); err != nil || !ok || v != "2" {
		t.Errorf("Get(a) = %q, %v, %v", v, ok, err)
	}

	if err := kv.Delete(ctx, "a", "b", "never-set"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	for _, k := range []string{"a", "b"} {
		if _, ok, _ := kv.Get(ctx, k); ok {
			t.Errorf("%s still present after Delete", k)
		}
	}
	if err := kv.Delete(ctx); err != nil {
		t.Errorf("Delete with no keys: %v", err)
	}
}

func TestMemoryKV(t *testing.T) {
	testKV(t, NewMemory())
}

func TestRedisKV(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStore(rdb)
	defer store.Close()

	testKV(t, store)

	// Keys are namespaced.
	if err := store.Set(context.Background(), "levelState", "{}"); err != nil {
		t.Fatal(err)
	}
	if !mr.Exists("squarecontrol:levelState") {
		t.Error("expected prefixed key in redis")
	}
}

func TestOpenRedisURL(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	defer mr.Close()

	kv, err := Open(context.Background(), Config{Driver: "redis", RedisURL: "redis://" + mr.Addr() + "/0"})
	if err != nil {
		t.Fatalf("Open(redis) failed: %v", err)
	}
	defer kv.Close()
	testKV(t, kv)
}

func TestOpenDrivers(t *testing.T) {
	ctx := context.Background()

	kv, err := Open(ctx, Config{Path: filepath.Join(t.TempDir(), "default.db")})
	if err != nil {
		t.Fatalf("Open(default) failed: %v", err)
	}
	if _, ok := kv.(*SQLiteStore); !ok {
		t.Errorf("default driver = %T, want *SQLiteStore", kv)
	}
	kv.Close()

	kv, err = Open(ctx, Config{Driver: "memory"})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := kv.(*Memory); !ok {
		t.Errorf("memory driver = %T", kv)
	}

	if _, err := Open(ctx, Config{Driver: "etcd"}); !errors.Is(err, ErrUnknownDriver) {
		t.Errorf("expected ErrUnknownDriver, got %v", err)
	}
	if kv, err := Open(ctx, Config{Driver: "postgres"}); err == nil || kv != nil {
		t.Errorf("postgres without url: kv=%v err=%v", kv, err)
	}
	if _, err := Open(ctx, Config{Driver: "redis"}); err == nil {
		t.Error("redis without url should fail")
	}
}
