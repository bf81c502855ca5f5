package stringwidth

// doubleWidthRanges are the ranges spec section 4.5 hard-codes, taken
// verbatim from the standard library formatting specification this
// package's width table is pinned to, plus one addition: 0x1F1E6-0x1F1FF
// (regional indicators) is not part of that list, but is added here so that
// flag sequences measure two columns. See DESIGN.md, "regional indicator
// width".
var doubleWidthRanges = []rangeRange{
	{0x1100, 0x115F},
	{0x2329, 0x232A},
	{0x2E80, 0x303E},
	{0x3040, 0xA4CF},
	{0xAC00, 0xD7A3},
	{0xF900, 0xFAFF},
	{0xFE10, 0xFE19},
	{0xFE30, 0xFE6F},
	{0xFF00, 0xFF60},
	{0xFFE0, 0xFFE6},
	{0x1F1E6, 0x1F1FF},
	{0x1F300, 0x1F64F},
	{0x1F900, 0x1F9FF},
	{0x20000, 0x2FFFD},
	{0x30000, 0x3FFFD},
}

// graphemeRanges is the non-ASCII grapheme-cluster category table, sorted
// and non-overlapping. Hangul syllables are tagged hangul_lv_or_lvt
// uniformly; the engine (width.go) disambiguates LV from LVT by arithmetic
// per spec section 4.4, exactly as the classification table contract
// requires.
//
// This file, along with doubleWidthRanges above, is what cmd/gentable
// regenerates from the Unicode Character Database; both var names here
// match the ones classify (table.go) consumes, so the generated output is
// a direct replacement for this file rather than a parallel table nothing
// reads.
var graphemeRanges = []rangeEntry{
	{0x00AD, 0x00AD, catExtendAndControl}, // soft hyphen: default-ignorable format char that is also Cf
	{0x0300, 0x036F, catExtend},           // combining diacritical marks
	{0x0483, 0x0489, catExtend},
	{0x0591, 0x05BD, catExtend},
	{0x05BF, 0x05BF, catExtend},
	{0x05C1, 0x05C2, catExtend},
	{0x05C4, 0x05C5, catExtend},
	{0x05C7, 0x05C7, catExtend},
	{0x0600, 0x0605, catPrepend},
	{0x0610, 0x061A, catExtend},
	{0x064B, 0x065F, catExtend},
	{0x0670, 0x0670, catExtend},
	{0x06D6, 0x06DC, catExtend},
	{0x06DD, 0x06DD, catPrepend},
	{0x06DF, 0x06E4, catExtend},
	{0x06E7, 0x06E8, catExtend},
	{0x06EA, 0x06ED, catExtend},
	{0x070F, 0x070F, catPrepend},
	{0x0711, 0x0711, catExtend},
	{0x0730, 0x074A, catExtend},
	{0x07A6, 0x07B0, catExtend},
	{0x07EB, 0x07F3, catExtend},
	{0x0816, 0x0819, catExtend},
	{0x081B, 0x0823, catExtend},
	{0x0825, 0x0827, catExtend},
	{0x0829, 0x082D, catExtend},
	{0x0859, 0x085B, catExtend},
	{0x0890, 0x0891, catPrepend},
	{0x08E2, 0x08E2, catPrepend},
	{0x08E3, 0x0902, catExtend},
	{0x0903, 0x0903, catSpacingMark},
	{0x093A, 0x093A, catExtend},
	{0x093B, 0x093B, catSpacingMark},
	{0x093C, 0x093C, catExtend},
	{0x093E, 0x0940, catSpacingMark},
	{0x0941, 0x0948, catExtend},
	{0x0949, 0x094C, catSpacingMark},
	{0x094D, 0x094D, catExtend},
	{0x094E, 0x094F, catSpacingMark},
	{0x0951, 0x0957, catExtend},
	{0x0962, 0x0963, catExtend},
	{0x0982, 0x0983, catSpacingMark},
	{0x09BE, 0x09C0, catSpacingMark},
	{0x09C7, 0x09C8, catSpacingMark},
	{0x09CB, 0x09CC, catSpacingMark},
	{0x09D7, 0x09D7, catExtend},
	{0x0A03, 0x0A03, catSpacingMark},
	{0x0B02, 0x0B03, catSpacingMark},
	{0x0D4E, 0x0D4E, catPrepend},
	{0x1100, 0x1112, catHangulL},
	{0x1161, 0x1175, catHangulV},
	{0x11A8, 0x11C2, catHangulT},
	{0x17B6, 0x17B6, catSpacingMark},
	{0x180B, 0x180D, catExtend},
	{0x180F, 0x180F, catExtend},
	{0x1AB0, 0x1AFF, catExtend},
	{0x1DC0, 0x1DFF, catExtend},
	{0x200D, 0x200D, catZWJ},
	{0x200E, 0x200F, catControl},
	{0x2028, 0x2029, catControl},
	{0x202A, 0x202E, catControl},
	{0x2060, 0x2064, catControl},
	{0x2066, 0x206F, catControl},
	{0x20D0, 0x20FF, catExtend},
	{0xA960, 0xA97C, catHangulL},
	{0xAC00, 0xD7A3, catHangulLVOrLVT},
	{0xD7B0, 0xD7C6, catHangulV},
	{0xD7CB, 0xD7FB, catHangulT},
	{0xFB1E, 0xFB1E, catExtend},
	{0xFE00, 0xFE0F, catExtend},
	{0xFE20, 0xFE2F, catExtend},
	{0xFEFF, 0xFEFF, catControl},
	{0xFFF9, 0xFFFB, catControl},
	{0x101FD, 0x101FD, catExtend},
	{0x10A01, 0x10A03, catExtend},
	{0x1D165, 0x1D169, catExtend},
	{0x1D16D, 0x1D172, catExtend},
	{0x1D17B, 0x1D182, catExtend},
	{0x1D185, 0x1D18B, catExtend},
	{0x1D1AA, 0x1D1AD, catExtend},
	{0x1F1E6, 0x1F1FF, catRegionalIndicator},
	{0x1F300, 0x1F5FF, catExtendedPicto},
	{0x1F600, 0x1F64F, catExtendedPicto},
	{0x1F680, 0x1F6FF, catExtendedPicto},
	{0x1F7E0, 0x1F7EB, catExtendedPicto},
	{0x1F900, 0x1F9FF, catExtendedPicto},
	{0x1FA70, 0x1FAFF, catExtendedPicto},
	{0xE0001, 0xE0001, catExtend},
	{0xE0020, 0xE007F, catExtend},
	{0xE0100, 0xE01EF, catExtend},
}
