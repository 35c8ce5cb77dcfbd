package qa

import (
	"testing"

	"member-qa/store"

	"go.uber.org/zap"
)

func testStore(users ...string) *store.Store {
	var msgs []store.Message
	for _, user := range users {
		msgs = append(msgs, store.Message{
			UserName:  user,
			Message:   "hello",
			Timestamp: "2024-03-01T09:15:00Z",
		})
	}
	return store.New(msgs)
}

func TestMatchSubstring(t *testing.T) {
	st := testStore("Layla Hassan", "Omar Said")
	m := NewMatcher(st, 75, zap.NewNop())

	tests := []struct {
		name     string
		query    string
		want     string
		wantOK   bool
	}{
		{name: "full_name_in_query", query: "When is Layla Hassan planning her trip?", want: "Layla Hassan", wantOK: true},
		{name: "query_inside_user_name", query: "layla has", want: "Layla Hassan", wantOK: true},
		{name: "case_insensitive", query: "what did OMAR SAID mention?", want: "Omar Said", wantOK: true},
		{name: "no_match", query: "what is the weather tomorrow", want: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.Match(tt.query)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Match(%q) = (%q, %v), want (%q, %v)", tt.query, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestMatchSubstringPrefersFirstSeenUser(t *testing.T) {
	// "ann" is contained in both names, so the substring pass could fire on
	// either; the first-seen user must win.
	st := testStore("Ann Lee", "Annika Berg")
	m := NewMatcher(st, 75, zap.NewNop())

	got, ok := m.Match("ann")
	if !ok || got != "Ann Lee" {
		t.Errorf("Match() = (%q, %v), want first-seen substring match (Ann Lee, true)", got, ok)
	}
}

func TestMatchFuzzyFirstName(t *testing.T) {
	st := testStore("Layla Hassan", "Omar Said")
	m := NewMatcher(st, 75, zap.NewNop())

	// "Laila" is a misspelling of "Layla" that scores above the threshold
	// but is not a substring in either direction.
	got, ok := m.Match("when is laila traveling?")
	if !ok || got != "Layla Hassan" {
		t.Errorf("Match() = (%q, %v), want fuzzy match (Layla Hassan, true)", got, ok)
	}
}

func TestMatchFuzzyBelowThreshold(t *testing.T) {
	st := testStore("Layla Hassan")
	m := NewMatcher(st, 75, zap.NewNop())

	if got, ok := m.Match("zqx bvw"); ok {
		t.Errorf("Match() = (%q, true), want no match for unrelated tokens", got)
	}
}

func TestMatchFuzzyTieKeepsFirstSeen(t *testing.T) {
	// Identical first names score identically against every token, so the
	// strict > comparison must keep the first user encountered.
	st := testStore("Omar Haddad", "Omar Said")
	m := NewMatcher(st, 75, zap.NewNop())

	got, ok := m.Match("has omr replied yet?")
	if !ok || got != "Omar Haddad" {
		t.Errorf("Match() = (%q, %v), want tie resolved to first-seen (Omar Haddad, true)", got, ok)
	}
}

func TestMatchCustomThreshold(t *testing.T) {
	st := testStore("Layla Hassan")

	strict := NewMatcher(st, 100, zap.NewNop())
	if got, ok := strict.Match("when is laila traveling?"); ok {
		t.Errorf("Match() with threshold 100 = (%q, true), want no match", got)
	}

	exact := NewMatcher(st, 100, zap.NewNop())
	if got, ok := exact.Match("layla hassan?"); !ok || got != "Layla Hassan" {
		t.Errorf("Match() = (%q, %v), want substring pass to fire regardless of threshold", got, ok)
	}
}
