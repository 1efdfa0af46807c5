package debug

import (
	"testing"
)

const testPath = "/src/main.go"

func TestStoreAddAndForPath(t *testing.T) {
	s := NewStore()

	s.Add(testPath, Breakpoint{Line: 4, Verified: true})
	s.Add(testPath, Breakpoint{Line: 10, Condition: "x > 3"})

	bps := s.ForPath(testPath)
	if len(bps) != 2 {
		t.Fatalf("expected 2 breakpoints, got %d", len(bps))
	}
	if bps[0].Line != 4 || !bps[0].Verified {
		t.Errorf("unexpected first breakpoint: %+v", bps[0])
	}
	if bps[1].Condition != "x > 3" {
		t.Errorf("unexpected second breakpoint: %+v", bps[1])
	}
}

func TestStoreForPathUnknownFile(t *testing.T) {
	s := NewStore()

	bps := s.ForPath("/nowhere.go")
	if bps == nil {
		t.Fatal("ForPath should return an empty slice, not nil")
	}
	if len(bps) != 0 {
		t.Errorf("expected no breakpoints, got %d", len(bps))
	}
}

func TestStoreForPathReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Add(testPath, Breakpoint{Line: 1})

	snapshot := s.ForPath(testPath)
	s.SetVerified(testPath, 1, true)

	if snapshot[0].Verified {
		t.Error("snapshot should not observe later mutations")
	}
	if !s.ForPath(testPath)[0].Verified {
		t.Error("store should observe the mutation")
	}
}

func TestStoreRemove(t *testing.T) {
	s := NewStore()
	s.Add(testPath, Breakpoint{Line: 1})
	s.Add(testPath, Breakpoint{Line: 2})

	if !s.Remove(testPath, 1) {
		t.Error("Remove should report a removal")
	}
	if s.Remove(testPath, 99) {
		t.Error("Remove of absent line should report false")
	}

	bps := s.ForPath(testPath)
	if len(bps) != 1 || bps[0].Line != 2 {
		t.Errorf("unexpected breakpoints after remove: %+v", bps)
	}
}

func TestStoreToggle(t *testing.T) {
	s := NewStore()

	s.Toggle(testPath, 7)
	bps := s.ForPath(testPath)
	if len(bps) != 1 || bps[0].Line != 7 || bps[0].Verified {
		t.Fatalf("toggle on: unexpected %+v", bps)
	}

	s.Toggle(testPath, 7)
	if len(s.ForPath(testPath)) != 0 {
		t.Error("toggle off should remove the breakpoint")
	}
}

func TestStoreSetVerified(t *testing.T) {
	s := NewStore()
	s.Add(testPath, Breakpoint{Line: 3})

	if !s.SetVerified(testPath, 3, true) {
		t.Error("SetVerified should find the breakpoint")
	}
	if s.SetVerified(testPath, 4, true) {
		t.Error("SetVerified on absent line should report false")
	}
	if !s.ForPath(testPath)[0].Verified {
		t.Error("breakpoint should be verified")
	}
}

func TestStoreClearAndPaths(t *testing.T) {
	s := NewStore()
	s.Add("/a.go", Breakpoint{Line: 1})
	s.Add("/b.go", Breakpoint{Line: 2})

	if got := len(s.Paths()); got != 2 {
		t.Fatalf("expected 2 paths, got %d", got)
	}

	s.Clear("/a.go")
	paths := s.Paths()
	if len(paths) != 1 || paths[0] != "/b.go" {
		t.Errorf("unexpected paths after clear: %v", paths)
	}
}
