package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStore_PutGetDelete(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	if err := store.Put("interview-entries", []byte(`[]`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "interview-entries.json")); err != nil {
		t.Errorf("expected key file on disk: %v", err)
	}

	value, ok, err := store.Get("interview-entries")
	if err != nil || !ok || string(value) != `[]` {
		t.Errorf("Get = %s, %v, %v", value, ok, err)
	}

	if err := store.Delete("interview-entries"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok, _ := store.Get("interview-entries"); ok {
		t.Error("key should be gone")
	}
	if err := store.Delete("interview-entries"); err != nil {
		t.Errorf("deleting a missing key should succeed: %v", err)
	}
}

func TestStore_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, _ := NewStore(dir)

	for i := 0; i < 3; i++ {
		if err := store.Put("questions", []byte(`[]`)); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only questions.json, got %d entries", len(entries))
	}
}

func TestStore_RejectsUnsafeKeys(t *testing.T) {
	store, _ := NewStore(t.TempDir())

	for _, key := range []string{"", "../escape", "a/b", "UPPER"} {
		if err := store.Put(key, []byte("x")); err == nil {
			t.Errorf("Put(%q) should fail", key)
		}
	}
}
