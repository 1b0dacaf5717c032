package persist

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
)

// testValkeyClient returns a Redis client connected to the test Valkey.
// Skips the test if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests to isolate from dev data.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		client.Del(ctx, "test:"+KeyPosts, "test:"+KeyAuth)
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// TestDecodeSnapshot covers the fail-soft decoding contract: only a
// well-formed envelope with decodable state counts as a hit.
func TestDecodeSnapshot(t *testing.T) {
	type state struct {
		Names []string `json:"names"`
	}

	tests := []struct {
		name    string
		doc     string
		wantOK  bool
		wantLen int
	}{
		{
			name:    "valid envelope",
			doc:     `{"state":{"names":["a","b"]}}`,
			wantOK:  true,
			wantLen: 2,
		},
		{
			name:   "missing state field",
			doc:    `{"version":1}`,
			wantOK: false,
		},
		{
			name:   "not json at all",
			doc:    `oops`,
			wantOK: false,
		},
		{
			name:   "state has wrong shape",
			doc:    `{"state":{"names":"not-a-list"}}`,
			wantOK: false,
		},
		{
			name:   "empty document",
			doc:    ``,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var st state
			ok := DecodeSnapshot([]byte(tt.doc), &st)
			if ok != tt.wantOK {
				t.Fatalf("DecodeSnapshot(%q) = %v, want %v", tt.doc, ok, tt.wantOK)
			}
			if ok && len(st.Names) != tt.wantLen {
				t.Errorf("decoded %d names, want %d", len(st.Names), tt.wantLen)
			}
		})
	}
}

// TestSaveAndLoad round-trips a snapshot through Valkey.
func TestSaveAndLoad(t *testing.T) {
	client := testValkeyClient(t)
	store := NewStore(client)
	ctx := context.Background()

	type state struct {
		Names []string `json:"names"`
	}

	if err := store.Save(ctx, "test:"+KeyPosts, state{Names: []string{"x", "y"}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	var got state
	if !store.Load(ctx, "test:"+KeyPosts, &got) {
		t.Fatal("Load reported a miss for a freshly saved snapshot")
	}
	if len(got.Names) != 2 || got.Names[0] != "x" {
		t.Errorf("loaded state = %+v", got)
	}
}

// TestLoadAbsentKey verifies a miss for a key that was never written.
func TestLoadAbsentKey(t *testing.T) {
	client := testValkeyClient(t)
	store := NewStore(client)

	var got struct{}
	if store.Load(context.Background(), "test:never-written", &got) {
		t.Error("Load reported a hit for an absent key")
	}
}

// TestLoadCorruptSnapshot verifies fail-soft behavior when the stored
// document is not valid JSON.
func TestLoadCorruptSnapshot(t *testing.T) {
	client := testValkeyClient(t)
	store := NewStore(client)
	ctx := context.Background()

	if err := client.Set(ctx, "test:"+KeyAuth, "{{{corrupt", 0).Err(); err != nil {
		t.Fatalf("seeding corrupt key: %v", err)
	}

	var got struct{}
	if store.Load(ctx, "test:"+KeyAuth, &got) {
		t.Error("Load reported a hit for a corrupt snapshot")
	}
}
