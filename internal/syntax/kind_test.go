package syntax

import "testing"

func TestEveryKindHasUniqueName(t *testing.T) {
	seen := make(map[string]Kind, NumKinds)
	for k := Unknown; k < NumKinds; k++ {
		name := k.String()
		if name == "" {
			t.Fatalf("kind %d has no name", k)
		}
		if prev, dup := seen[name]; dup {
			t.Fatalf("name %q shared by kinds %d and %d", name, prev, k)
		}
		seen[name] = k
	}
}

func TestOutOfRange(t *testing.T) {
	if got := (NumKinds + 1).String(); got != "Kind(?)" {
		t.Fatalf("out-of-range kind rendered as %q", got)
	}
}
