package schema_test

import (
	"errors"
	"testing"

	"github.com/aretw0/sift/pkg/schema"
)

func demoForm() *schema.Form {
	return schema.NewForm("stuff", "form to specify what to do and what to watch",
		schema.NewSelection("do", "select what you want to do",
			schema.NewOption("eat", "Specify that you want to eat", "I'm hungry"),
			schema.NewOption("drink", "Specify that you want to drink", "I'm thirsty"),
			schema.NewOption("sleep", "Specify that you want to sleep", "I'm tired"),
		),
		schema.NewSelection("watch", "select which movie you want to watch",
			schema.NewOption("bond", "James Bond 007", "spy movie"),
			schema.NewOption("alien", "horror movie about aliens in space", "something scary"),
		),
	)
}

func TestNewIndex_CoversEveryNodeExactlyOnce(t *testing.T) {
	ix, err := schema.NewIndex(demoForm())
	if err != nil {
		t.Fatalf("NewIndex failed: %v", err)
	}

	want := []string{"alien", "bond", "do", "drink", "eat", "sleep", "stuff", "watch"}
	got := ix.IDs()
	if len(got) != len(want) {
		t.Fatalf("expected %d ids, got %d (%v)", len(want), len(got), got)
	}
	for i, id := range want {
		if got[i] != id {
			t.Errorf("ids[%d]: expected %q, got %q", i, id, got[i])
		}
	}
}

func TestNewIndex_ResolveRoundTrip(t *testing.T) {
	ix, err := schema.NewIndex(demoForm())
	if err != nil {
		t.Fatalf("NewIndex failed: %v", err)
	}

	node, err := ix.Resolve("do")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	sel, ok := node.(*schema.Selection)
	if !ok {
		t.Fatalf("expected *Selection, got %T", node)
	}
	if len(sel.Options) != 3 {
		t.Errorf("expected 3 options, got %d", len(sel.Options))
	}

	if _, err := ix.Resolve("missing"); !errors.Is(err, schema.ErrNodeNotFound) {
		t.Errorf("expected ErrNodeNotFound, got %v", err)
	}
}

func TestNewIndex_DuplicateIDFailsFast(t *testing.T) {
	form := schema.NewForm("root", "",
		schema.NewSelection("pick", "", schema.NewOption("a", "")),
		schema.NewSelection("pick", "", schema.NewOption("b", "")),
	)

	_, err := schema.NewIndex(form)
	var dup *schema.DuplicateIDError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateIDError, got %v", err)
	}
	if dup.ID != "pick" {
		t.Errorf("expected duplicate id 'pick', got %q", dup.ID)
	}
}

func TestNewIndex_NilRoot(t *testing.T) {
	_, err := schema.NewIndex(nil)
	var serr *schema.Error
	if !errors.As(err, &serr) {
		t.Fatalf("expected *schema.Error, got %v", err)
	}
}

func TestNewIndex_OptionRoot(t *testing.T) {
	// A bare option is a legal, if tiny, tree.
	ix, err := schema.NewIndex(schema.NewOption("solo", "a single leaf"))
	if err != nil {
		t.Fatalf("NewIndex failed: %v", err)
	}
	if ix.Len() != 1 {
		t.Errorf("expected 1 node, got %d", ix.Len())
	}
}

func TestSelection_AllowedTransitionsSorted(t *testing.T) {
	sel := schema.NewSelection("do", "",
		schema.NewOption("sleep", ""),
		schema.NewOption("eat", ""),
		schema.NewOption("drink", ""),
	)

	got := sel.AllowedTransitions()
	want := []string{"drink", "eat", "sleep"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
