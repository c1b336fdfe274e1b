package event

import "testing"

func TestKeyString(t *testing.T) {
	table := []struct {
		key      Key
		expected string
	}{
		{KeyEscape, "escape"},
		{KeyKPMultiply, "keypad *"},
		{KeyPageDown, "page down"},
		{KeyArrowDown, "down"},
		{Key(999), "key(999)"},
	}

	for _, entry := range table {
		if got := entry.key.String(); got != entry.expected {
			t.Fatalf("Key.String: (got: %q) (expected: %q)", got, entry.expected)
		}
	}
}

func TestKeyDownCarriesArrowKeys(t *testing.T) {
	var ev Event = KeyDown{Key: KeyArrowDown, Name: "Down"}
	e, ok := ev.(KeyDown)
	if !ok {
		t.Fatalf("KeyDown: (got: %T) (expected: event.KeyDown)", ev)
	}
	if e.Key != KeyArrowDown {
		t.Fatalf("KeyDown.Key: (got: %v) (expected: %v)", e.Key, KeyArrowDown)
	}
}
