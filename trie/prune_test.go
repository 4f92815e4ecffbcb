package trie

import "testing"

func TestRemovePrunesUnusedNodes(t *testing.T) {
	tr := From([]byte("Hell"), []byte("Hello"))
	if n := tr.nodeCount(); n != 6 {
		t.Fatalf("Expected 6 nodes (root + Hello), got %d", n)
	}
	tr.Remove([]byte("Hello"))
	if n := tr.nodeCount(); n != 5 {
		t.Errorf("Expected the 'o' node to be pruned, %d nodes left", n)
	}
	tr.Remove([]byte("Hell"))
	if n := tr.nodeCount(); n != 1 {
		t.Errorf("Expected only the root left, got %d nodes", n)
	}
	if tr.root == nil || tr.root.children != nil {
		t.Errorf("Expected a bare root, got %+v", tr.root)
	}
}

func TestRemoveStopsAtSharedNode(t *testing.T) {
	tr := From([]byte("abc"), []byte("abd"), []byte("a"))
	tr.Remove([]byte("abc"))
	// root, a, b, d
	if n := tr.nodeCount(); n != 4 {
		t.Errorf("Expected 4 nodes, got %d", n)
	}
	tr.Remove([]byte("abd"))
	// root, a: 'a' is still a word.
	if n := tr.nodeCount(); n != 2 {
		t.Errorf("Expected 2 nodes, got %d", n)
	}
}

func TestIteratorFrameStack(t *testing.T) {
	tr := From([]byte("ab"), []byte("b"))
	it := tr.Iter()
	if !it.Next() || len(it.frames) != 3 || len(it.symbols) != 2 {
		t.Fatalf("Expected root,a,b frames, got %d frames %q", len(it.frames), it.symbols)
	}
	if !it.Next() || len(it.frames) != 2 || string(it.symbols) != "b" {
		t.Fatalf("Expected to backtrack to root then descend to b, got %d frames %q", len(it.frames), it.symbols)
	}
	if it.Next() {
		t.Error("Expected end of iteration")
	}
}
