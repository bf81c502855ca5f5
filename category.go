package stringwidth

// Category is the grapheme-cluster property a code point is classified
// under, as looked up in the classification table (table.go). The category
// drives which branch of the transition table in width.go applies.
type category int

const (
	catOther category = iota
	catExtend
	catControl
	catExtendAndControl
	catSpacingMark
	catPrepend
	catHangulL
	catHangulV
	catHangulT
	catHangulLVOrLVT
	catRegionalIndicator
	catExtendedPicto
	catZWJ
)

// state is a bitmask over the grapheme-cluster parser's atoms. RI and
// extended-pictographic atoms imply stAfterCore; hangul atoms imply both
// stAfterHangul and stAfterCore, since a hangul syllable is itself a core
// cluster. The layout mirrors the C++ original this package is derived
// from: that pairing is what lets a single mask test answer "are we
// continuing a hangul syllable" or "are we continuing a core cluster"
// without enumerating every concrete atom.
type state int

const (
	stInitial state = 0

	stAfterPrepend state = 1 << 0
	stAfterCore    state = 1 << 1

	stAfterRI       state = stAfterCore | 1<<2
	stAfterXpic     state = stAfterCore | 1<<3
	stAfterXpicZWJ  state = stAfterCore | 1<<4
	stAfterHangul   state = stAfterCore | 1<<5
	stAfterHangulL  state = stAfterHangul | 1<<6
	stAfterHangulV  state = stAfterHangul | 1<<7
	stAfterHangulT  state = stAfterHangul | 1<<8
	stAfterHangulLV state = stAfterHangul | 1<<9

	stAfterHangulLVT state = stAfterHangul | 1<<10
	stAfterPoscore   state = 1 << 11
	stAfterCR        state = 1 << 12
)

// SurrogatePolicy controls how the decoder treats isolated UTF-16
// surrogates (an unpaired high surrogate, a stray low surrogate, or a
// three-byte UTF-8 sequence that decodes into the surrogate range).
type SurrogatePolicy bool

const (
	// SurrogateStrict replaces isolated surrogates with U+FFFD.
	SurrogateStrict SurrogatePolicy = false
	// SurrogateLax passes isolated surrogates through unchanged.
	SurrogateLax SurrogatePolicy = true
)

// replacementChar is substituted for any code unit sequence that cannot be
// decoded, and for out-of-range UTF-32 scalars.
const replacementChar rune = 0xFFFD
