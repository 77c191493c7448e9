package item

import "testing"

func TestIDRoundTrip(t *testing.T) {
	for _, it := range All() {
		got, ok := FromID(it.ID())
		if !ok || got != it {
			t.Errorf("FromID(%q) = %v, %v; want %v, true", it.ID(), got, ok, it)
		}
	}
	if _, ok := FromID("laser"); ok {
		t.Error("FromID(\"laser\") should not match")
	}
}

func TestUnknownType(t *testing.T) {
	if got := Type(-1).ID(); got != "unknown" {
		t.Errorf("Type(-1).ID() = %q, want unknown", got)
	}
	if got := typeCount.String(); got != "unknown" {
		t.Errorf("typeCount.String() = %q, want unknown", got)
	}
}

func TestIsTool(t *testing.T) {
	tests := []struct {
		item     Type
		expected bool
	}{
		{Axe, true},
		{Pickaxe, true},
		{Shovel, true},
		{Wood, false},
		{Apple, false},
		{None, false},
	}
	for _, tt := range tests {
		if got := tt.item.IsTool(); got != tt.expected {
			t.Errorf("%s.IsTool() = %v, want %v", tt.item, got, tt.expected)
		}
	}
}

func TestAllExcludesNone(t *testing.T) {
	all := All()
	if len(all) != int(typeCount)-1 {
		t.Errorf("len(All()) = %d, want %d", len(all), typeCount-1)
	}
	for _, it := range all {
		if it == None {
			t.Error("All() should not include None")
		}
	}
}
