package models

import "testing"

func TestPriorityFromIndex(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  Priority
		ok    bool
	}{
		{"none", 0, PriorityNone, true},
		{"done marker", 1, PriorityDone, true},
		{"letter A", 2, Priority("A"), true},
		{"letter B", 3, Priority("B"), true},
		{"letter Z", 27, Priority("Z"), true},
		{"negative", -1, PriorityNone, false},
		{"past Z", 28, PriorityNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PriorityFromIndex(tt.index)
			if ok != tt.ok {
				t.Fatalf("PriorityFromIndex(%d) ok = %v, want %v", tt.index, ok, tt.ok)
			}
			if got != tt.want {
				t.Fatalf("PriorityFromIndex(%d) = %q, want %q", tt.index, got, tt.want)
			}
		})
	}
}

func TestPriorityIndex(t *testing.T) {
	tests := []struct {
		priority Priority
		want     int
	}{
		{PriorityNone, 0},
		{PriorityDone, 1},
		{Priority("A"), 2},
		{Priority("Z"), 27},
		{Priority("??"), 0}, // unknown values resolve to the "no priority" slot
	}

	for _, tt := range tests {
		if got := tt.priority.Index(); got != tt.want {
			t.Errorf("Priority(%q).Index() = %d, want %d", tt.priority, got, tt.want)
		}
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in      string
		want    Priority
		wantErr bool
	}{
		{"", PriorityNone, false},
		{"x", PriorityDone, false},
		{"X", PriorityDone, false},
		{"A", Priority("A"), false},
		{"b", Priority("B"), false},
		{"a", Priority("A"), false},
		{"5", PriorityNone, true},
		{"AB", PriorityNone, true},
	}
	for _, tt := range tests {
		got, err := ParsePriority(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParsePriority(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePriority(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePriority(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPriorityIsLetter(t *testing.T) {
	if PriorityNone.IsLetter() {
		t.Error("none must not be a letter")
	}
	if PriorityDone.IsLetter() {
		t.Error("done marker must not be a letter")
	}
	if !Priority("A").IsLetter() || !Priority("Z").IsLetter() {
		t.Error("A and Z are letters")
	}
	if Priority("a").IsLetter() {
		t.Error("lowercase is not a valid letter priority")
	}
}

func TestPriorityValid(t *testing.T) {
	for i := 0; i < PriorityCount; i++ {
		p, _ := PriorityFromIndex(i)
		if !p.Valid() {
			t.Errorf("priority at index %d should be valid", i)
		}
	}
	if Priority("AB").Valid() {
		t.Error("two-letter value should be invalid")
	}
}
