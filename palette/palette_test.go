package palette

import "testing"

func TestNewGreyRamp(t *testing.T) {
	p := New()
	if p.Entries[0] != (Entry{0, 0, 0, 255}) {
		t.Fatalf("entry 0 = %v, want black", p.Entries[0])
	}
	if p.Entries[255] != (Entry{255, 255, 255, 255}) {
		t.Fatalf("entry 255 = %v, want white", p.Entries[255])
	}
	if p.Entries[128] != (Entry{128, 128, 128, 255}) {
		t.Fatalf("entry 128 = %v, want (128,128,128,255)", p.Entries[128])
	}
}

func TestNewBrowserCube(t *testing.T) {
	p := NewBrowserCube()
	if p.Entries[0] != (Entry{0, 0, 0, 255}) {
		t.Fatalf("entry 0 = %v, want black", p.Entries[0])
	}
	if p.Entries[215] != (Entry{255, 255, 255, 255}) {
		t.Fatalf("entry 215 = %v, want white", p.Entries[215])
	}
	// Entries beyond the cube are left as the grey ramp.
	if p.Entries[216] != (Entry{216, 216, 216, 255}) {
		t.Fatalf("entry 216 = %v, want grey ramp tail", p.Entries[216])
	}
}

func TestDuplicateIsIndependent(t *testing.T) {
	p := New()
	dup := p.Duplicate()
	dup.Entries[0] = Entry{9, 9, 9, 9}
	if p.Entries[0] == dup.Entries[0] {
		t.Fatalf("mutating the duplicate affected the original")
	}
}

func TestBytesLayout(t *testing.T) {
	p := New()
	b := p.Bytes()
	if len(b) != Size*4 {
		t.Fatalf("Bytes() length = %d, want %d", len(b), Size*4)
	}
	if b[0] != 0 || b[3] != 255 {
		t.Fatalf("entry 0 bytes = %v", b[:4])
	}
	if b[255*4] != 255 || b[255*4+3] != 255 {
		t.Fatalf("entry 255 bytes = %v", b[255*4:256*4])
	}
}

func TestNearestExactMatch(t *testing.T) {
	p := New()
	p.Prepare()
	defer p.Discard()

	// 128 falls in grid cell 16, whose center is 132; the grey-ramp entry
	// that exactly matches that center is 132.
	idx := p.Nearest(128, 128, 128)
	if idx != 132 {
		t.Fatalf("Nearest(128,128,128) = %d, want 132", idx)
	}
}

func TestNearestIsMemoized(t *testing.T) {
	p := New()
	p.Prepare()
	defer p.Discard()

	if _, ok := p.Lookup(200, 200, 200); ok {
		t.Fatalf("expected an empty cache before the first Nearest call")
	}
	first := p.Nearest(200, 200, 200)
	second, ok := p.Lookup(200, 200, 200)
	if !ok || second != first {
		t.Fatalf("cache not populated by Nearest: ok=%v, second=%d, first=%d", ok, second, first)
	}
}

func TestNearestTieBreakLowestIndex(t *testing.T) {
	p := &Palette{}
	p.Entries[10] = Entry{100, 100, 100, 255}
	p.Entries[20] = Entry{100, 100, 100, 255}
	p.Prepare()
	defer p.Discard()

	idx := p.Nearest(100, 100, 100)
	if idx != 10 {
		t.Fatalf("tie-break chose index %d, want 10 (lowest)", idx)
	}
}

func TestPrepareResetsCache(t *testing.T) {
	p := New()
	p.Prepare()
	p.Nearest(50, 50, 50)
	p.Prepare()
	if _, ok := p.Lookup(50, 50, 50); ok {
		t.Fatalf("Prepare did not clear the previous cache contents")
	}
	p.Discard()
}
