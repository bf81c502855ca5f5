package stringwidth

import "testing"

func TestWidthASCII(t *testing.T) {
	if got := Width(100, "hello", SurrogateStrict); got != 5 {
		t.Errorf("got %d, want 5", got)
	}
}

func TestWidthWideCharacters(t *testing.T) {
	if got := Width(100, "日本語", SurrogateStrict); got != 6 {
		t.Errorf("got %d, want 6", got)
	}
}

func TestWidthExtendedPictographOutsideEAWRangeIsNarrow(t *testing.T) {
	// U+1F680 (rocket) is Extended_Pictographic but sits outside every
	// hard-coded double-width range, so it measures narrow, matching
	// original_source exactly -- extended pictographs get no automatic
	// wide override the way regional indicators do.
	if got := Width(100, string(rune(0x1F680)), SurrogateStrict); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
}

func TestWidthCombiningMarkAfterHangulSyllable(t *testing.T) {
	// U+AC00 (GA) + U+0308 (combining diaeresis) is one grapheme cluster:
	// the mark extends the hangul syllable instead of starting a new one,
	// so the pair measures the same width as GA alone.
	if got := Width(100, string([]rune{0xAC00, 0x0308}), SurrogateStrict); got != 2 {
		t.Errorf("got %d, want 2", got)
	}
}

func TestWidthZeroLimitNeverInspectsInput(t *testing.T) {
	if got := Width(0, "anything", SurrogateStrict); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}

func TestWidthCapsAtLimit(t *testing.T) {
	// "日本語" is 6 columns wide; a limit of 3 can only admit one wide
	// character's worth, and the reported width is pinned at the limit
	// rather than the 2 columns that character actually used.
	if got := Width(3, "日本語", SurrogateStrict); got != 3 {
		t.Errorf("got %d, want 3", got)
	}
}

func TestWidthOverlongUTF8CountsTwoReplacementChars(t *testing.T) {
	// 0xC0 0x80 is an overlong NUL: each byte is individually rejected and
	// re-examined on its own, producing two replacement characters.
	if got := Width(100, string([]byte{0xC0, 0x80}), SurrogateStrict); got != 2 {
		t.Errorf("got %d, want 2", got)
	}
}

func TestWidthAndPosFitsEntirely(t *testing.T) {
	width, pos := WidthAndPos(100, "café", SurrogateStrict)
	if width != 4 || pos != len("café") {
		t.Errorf("got (%d, %d), want (4, %d)", width, pos, len("café"))
	}
}

func TestWidthAndPosStopsAtLimit(t *testing.T) {
	width, pos := WidthAndPos(3, "日本語", SurrogateStrict)
	if width != 3 || pos != 3 {
		t.Errorf("got (%d, %d), want (3, 3)", width, pos)
	}
}

func TestWidthAndPosZeroLimit(t *testing.T) {
	width, pos := WidthAndPos(0, "anything", SurrogateStrict)
	if width != 0 || pos != 0 {
		t.Errorf("got (%d, %d), want (0, 0)", width, pos)
	}
}

func TestWidthAndPosAcrossManyRecycles(t *testing.T) {
	// Longer than one sink buffer's capacity, to exercise recycling in the
	// position-tracking engine.
	s := ""
	for i := 0; i < sinkCapacity*3; i++ {
		s += "a"
	}
	width, pos := WidthAndPos(1<<30, s, SurrogateStrict)
	if width != len(s) || pos != len(s) {
		t.Errorf("got (%d, %d), want (%d, %d)", width, pos, len(s), len(s))
	}
}

func TestWidthUTF16SurrogatePair(t *testing.T) {
	// U+1F600 (grinning face) as a surrogate pair, double width.
	s := []uint16{0xD83D, 0xDE00}
	if got := WidthUTF16(100, s, SurrogateStrict); got != 2 {
		t.Errorf("got %d, want 2", got)
	}
}

func TestWidthUTF16UnpairedSurrogatePolicy(t *testing.T) {
	s := []uint16{0xD83D, 'a'}
	strict := WidthUTF16(100, s, SurrogateStrict)
	lax := WidthUTF16(100, s, SurrogateLax)
	if strict != 2 {
		t.Errorf("strict: got %d, want 2 (replacement char + 'a')", strict)
	}
	if lax != 2 {
		t.Errorf("lax: got %d, want 2 (passthrough surrogate + 'a')", lax)
	}
}

func TestWidthAndPosUTF16(t *testing.T) {
	s := []uint16{'a', 0xD83D, 0xDE00, 'b'}
	width, pos := WidthAndPosUTF16(100, s, SurrogateStrict)
	if width != 4 || pos != 4 {
		t.Errorf("got (%d, %d), want (4, 4)", width, pos)
	}
}

func TestWidthAndPosUTF16StopsBeforePair(t *testing.T) {
	// 'a' (width 1) fits in a budget of 2, but the following surrogate pair
	// (width 2) would overshoot it. Width is still capped at the limit, and
	// pos reports the unit offset of the first code point that didn't fit.
	s := []uint16{'a', 0xD83D, 0xDE00}
	width, pos := WidthAndPosUTF16(2, s, SurrogateStrict)
	if width != 2 || pos != 1 {
		t.Errorf("got (%d, %d), want (2, 1)", width, pos)
	}
}

func TestWidthUTF32(t *testing.T) {
	s := []uint32{'a', 0x65E5, 'b'}
	if got := WidthUTF32(100, s, SurrogateStrict); got != 4 {
		t.Errorf("got %d, want 4", got)
	}
}

func TestWidthUTF32OutOfRangeScalar(t *testing.T) {
	s := []uint32{0x110000}
	if got := WidthUTF32(100, s, SurrogateStrict); got != 1 {
		t.Errorf("got %d, want 1 (one replacement char)", got)
	}
}

func TestWidthAndPosUTF32(t *testing.T) {
	s := []uint32{'a', 0x65E5, 'b'}
	width, pos := WidthAndPosUTF32(100, s, SurrogateStrict)
	if width != 4 || pos != 3 {
		t.Errorf("got (%d, %d), want (4, 3)", width, pos)
	}
}
