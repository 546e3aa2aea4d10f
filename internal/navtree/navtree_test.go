package navtree

import (
	"reflect"
	"testing"

	"github.com/nishant-k1/mdsite/internal/document"
)

func TestBuildNestedTree(t *testing.T) {
	docs := []document.Descriptor{
		{Segments: []string{"a", "b"}, Title: "B"},
		{Segments: []string{"a", "c", "d"}, Title: "D"},
	}

	root := Build(docs)

	if len(root.Documents) != 0 {
		t.Errorf("expected no documents at root, got %d", len(root.Documents))
	}
	if !reflect.DeepEqual(root.ChildNames(), []string{"a"}) {
		t.Fatalf("expected root child [a], got %v", root.ChildNames())
	}

	a := root.Child("a")
	if len(a.Documents) != 1 || a.Documents[0].Title != "B" {
		t.Errorf("expected document B under a, got %v", a.Documents)
	}
	if !reflect.DeepEqual(a.ChildNames(), []string{"c"}) {
		t.Fatalf("expected child [c] under a, got %v", a.ChildNames())
	}

	c := a.Child("c")
	if len(c.Documents) != 1 || c.Documents[0].Title != "D" {
		t.Errorf("expected document D under a/c, got %v", c.Documents)
	}
	if len(c.ChildNames()) != 0 {
		t.Errorf("expected no children under a/c, got %v", c.ChildNames())
	}
}

func TestBuildTopLevelDocument(t *testing.T) {
	root := Build([]document.Descriptor{
		{Segments: []string{"readme"}, Title: "Readme"},
	})
	if len(root.Documents) != 1 || root.Documents[0].Title != "Readme" {
		t.Errorf("expected Readme at root, got %v", root.Documents)
	}
	if len(root.ChildNames()) != 0 {
		t.Errorf("expected no children, got %v", root.ChildNames())
	}
}

func TestBuildEmptyInput(t *testing.T) {
	root := Build(nil)
	if !root.IsEmpty() {
		t.Error("expected empty root for empty input")
	}
	if root.Child("anything") != nil {
		t.Error("expected nil child on empty root")
	}
}

func TestBuildIdempotent(t *testing.T) {
	docs := []document.Descriptor{
		{Segments: []string{"go", "basics"}, Title: "Basics"},
		{Segments: []string{"go", "concurrency", "channels"}, Title: "Channels"},
		{Segments: []string{"overview"}, Title: "Overview"},
	}
	first := Build(docs)
	second := Build(docs)
	if !sameShape(first, second) {
		t.Error("two builds from the same list differ structurally")
	}
}

// sameShape compares documents and children recursively.
func sameShape(a, b *Node) bool {
	if !reflect.DeepEqual(a.Documents, b.Documents) {
		return false
	}
	if !reflect.DeepEqual(a.ChildNames(), b.ChildNames()) {
		return false
	}
	for _, name := range a.ChildNames() {
		if !sameShape(a.Child(name), b.Child(name)) {
			return false
		}
	}
	return true
}

func TestBuildDocumentAndDirectoryShareName(t *testing.T) {
	docs := []document.Descriptor{
		{Segments: []string{"api"}, Title: "API"},
		{Segments: []string{"api", "auth"}, Title: "Auth"},
	}
	root := Build(docs)

	if len(root.Documents) != 1 || root.Documents[0].Title != "API" {
		t.Errorf("expected API document at root, got %v", root.Documents)
	}
	api := root.Child("api")
	if api == nil {
		t.Fatal("expected api directory child at root")
	}
	if len(api.Documents) != 1 || api.Documents[0].Title != "Auth" {
		t.Errorf("expected Auth under api, got %v", api.Documents)
	}
}

func TestBuildPreservesArrivalOrder(t *testing.T) {
	docs := []document.Descriptor{
		{Segments: []string{"b", "one"}, Title: "One"},
		{Segments: []string{"a", "two"}, Title: "Two"},
		{Segments: []string{"b", "three"}, Title: "Three"},
	}
	root := Build(docs)

	if !reflect.DeepEqual(root.ChildNames(), []string{"b", "a"}) {
		t.Errorf("expected children in arrival order [b a], got %v", root.ChildNames())
	}
	b := root.Child("b")
	if b.Documents[0].Title != "One" || b.Documents[1].Title != "Three" {
		t.Errorf("expected documents in arrival order, got %v", b.Documents)
	}
}
