package storage

import (
	"context"
	"net"
	"os"
	"strings"
	"testing"
)

// postgresURLEnv names a database the tests may create a table in.
const postgresURLEnv = "SQUARECONTROL_TEST_POSTGRES_URL"

func TestPostgresKV(t *testing.T) {
	url := os.Getenv(postgresURLEnv)
	if url == "" {
		t.Skipf("%s not set", postgresURLEnv)
	}

	store, err := OpenPostgres(context.Background(), url)
	if err != nil {
		t.Fatalf("OpenPostgres failed: %v", err)
	}
	t.Cleanup(func() {
		store.Delete(context.Background(), "missing", "a", "b")
		store.Close()
	})

	testKV(t, store)
}

// closedAddr returns a local address nothing listens on.
func closedAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()
	ln.Close()
	return addr
}

func TestOpenPostgresErrors(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"empty", "", "database url is required"},
		{"blank", "   ", "database url is required"},
		{"malformed", "postgres://%zz", "storage: "},
		{"unreachable", "postgres://user@" + closedAddr(t) + "/db?sslmode=disable&connect_timeout=1", "storage: "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := OpenPostgres(context.Background(), tt.url)
			if err == nil {
				store.Close()
				t.Fatalf("OpenPostgres(%q) succeeded", tt.url)
			}
			if store != nil {
				t.Errorf("store = %v, want nil", store)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestPostgresCloseNil(t *testing.T) {
	var store *PostgresStore
	if err := store.Close(); err != nil {
		t.Errorf("Close on nil store = %v", err)
	}
}
