package models

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestLibraryGetCaches(t *testing.T) {
	lib := NewLibrary(0)
	a, err := lib.Get(Cube)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	b, _ := lib.Get(Cube)
	if a != b {
		t.Error("Expected the same mesh instance on repeated Get")
	}
}

func TestLibraryConcurrentGet(t *testing.T) {
	lib := NewLibrary(0)
	meshes := make([]*Mesh, 8)
	var wg sync.WaitGroup
	for i := range meshes {
		wg.Go(func() {
			meshes[i], _ = lib.Get(Teapot)
		})
	}
	wg.Wait()
	for i, m := range meshes {
		if m == nil || m != meshes[0] {
			t.Errorf("Goroutine %d got a different mesh", i)
		}
	}
}

func TestLibraryCustom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.obj")
	src := "v 0 0 0\nv 10 0 0\nv 0 4 0\nf 1 2 3\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	lib := NewLibrary(2)
	m, err := lib.Custom(path)
	if err != nil {
		t.Fatalf("Custom: %v", err)
	}
	if got := m.Size().X; got < 2-1e-9 || got > 2+1e-9 {
		t.Errorf("Expected fitted width 2, got %v", got)
	}
	again, _ := lib.Custom(path)
	if again != m {
		t.Error("Expected cached custom mesh")
	}

	if _, err := lib.Custom(filepath.Join(t.TempDir(), "missing.obj")); err == nil {
		t.Error("Expected error for missing file")
	}
}
