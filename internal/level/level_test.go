package level

import "testing"

func TestAVIBands(t *testing.T) {
	bands := AVIBands()
	if len(bands) != 11 {
		t.Fatalf("len(AVIBands()) = %d, want 11", len(bands))
	}

	if bands[0].Name != "AVI-M3" || bands[0].BiltMin != nil {
		t.Errorf("lowest band should be AVI-M3 with open lower bound, got %+v", bands[0])
	}
	last := bands[len(bands)-1]
	if last.Name != "AVI-Plus" || last.BiltMax != nil {
		t.Errorf("topmost band should be AVI-Plus with open upper bound, got %+v", last)
	}
}

func TestAVIBandsContiguous(t *testing.T) {
	bands := AVIBands()
	for i := 1; i < len(bands); i++ {
		prev, cur := bands[i-1], bands[i]
		if prev.BiltMax == nil || cur.BiltMin == nil {
			t.Fatalf("interior bound missing between %s and %s", prev.Name, cur.Name)
		}
		if *prev.BiltMax != *cur.BiltMin {
			t.Errorf("gap between %s (max %v) and %s (min %v)", prev.Name, *prev.BiltMax, cur.Name, *cur.BiltMin)
		}
	}
}

func TestAVIBandContains(t *testing.T) {
	e3, ok := AVIBandByName("AVI-E3")
	if !ok {
		t.Fatal("AVI-E3 not found")
	}

	tests := []struct {
		bilt     float64
		expected bool
	}{
		{55.9, false},
		{56.0, true}, // lower bound inclusive
		{59.9, true},
		{60.0, false}, // upper bound exclusive
	}
	for _, tt := range tests {
		if got := e3.Contains(tt.bilt); got != tt.expected {
			t.Errorf("AVI-E3.Contains(%v) = %v, want %v", tt.bilt, got, tt.expected)
		}
	}
}

func TestAVIIndex(t *testing.T) {
	if idx := AVIIndex("AVI-M3"); idx != 0 {
		t.Errorf("AVIIndex(AVI-M3) = %d, want 0", idx)
	}
	if idx := AVIIndex("AVI-Plus"); idx != 10 {
		t.Errorf("AVIIndex(AVI-Plus) = %d, want 10", idx)
	}
	if idx := AVIIndex("AVI-X9"); idx != -1 {
		t.Errorf("AVIIndex(AVI-X9) = %d, want -1", idx)
	}
}

func TestREFBands(t *testing.T) {
	bands := REFBands()
	if len(bands) != 3 {
		t.Fatalf("len(REFBands()) = %d, want 3", len(bands))
	}
	for i, name := range []string{"1F", "2F", "3F"} {
		if bands[i].Name != name {
			t.Errorf("band %d = %s, want %s", i, bands[i].Name, name)
		}
		if REFIndex(name) != i {
			t.Errorf("REFIndex(%s) = %d, want %d", name, REFIndex(name), i)
		}
	}
}

func TestMarkers(t *testing.T) {
	cats := Markers()
	if len(cats) != 5 {
		t.Fatalf("len(Markers()) = %d, want 5", len(cats))
	}

	expected := []string{"additief", "temporeel", "causaal", "contrastief", "conclusief"}
	for i, name := range expected {
		if cats[i].Name != name {
			t.Errorf("category %d = %s, want %s", i, cats[i].Name, name)
		}
		if len(cats[i].Words) == 0 {
			t.Errorf("category %s has no words", name)
		}
	}
}

func TestTargetWords(t *testing.T) {
	tests := []struct {
		band     string
		minutes  int
		expected int
	}{
		{"AVI-M3", 1, 45},
		{"AVI-M3", 3, 107},
		{"AVI-E7", 2, 220},
		{"AVI-M5", 9, 83},  // unknown duration falls back to 1 minute
		{"AVI-X9", 1, 100}, // unknown band falls back to 100
	}
	for _, tt := range tests {
		if got := TargetWords(tt.band, tt.minutes); got != tt.expected {
			t.Errorf("TargetWords(%s, %d) = %d, want %d", tt.band, tt.minutes, got, tt.expected)
		}
	}
}

func TestPropositions(t *testing.T) {
	tests := []struct {
		words    int
		expected int
	}{
		{45, 3},
		{60, 5},
		{89, 5},
		{90, 6},
		{150, 8},
		{199, 10},
		{306, 12},
	}
	for _, tt := range tests {
		if got := Propositions(tt.words); got != tt.expected {
			t.Errorf("Propositions(%d) = %d, want %d", tt.words, got, tt.expected)
		}
	}
}
