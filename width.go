package stringwidth

// stepResult is the outcome of running the grapheme-cluster state machine
// over a slice of code points. pos is the index of the first code point
// not consumed; it equals len(cps) unless stopped is true, in which case it
// is only meaningful when the caller asked for a position (returnPos).
type stepResult struct {
	width   int
	state   state
	pos     int
	stopped bool
}

// graphemeStep is the grapheme-cluster state machine: spec section 4.4,
// "the central algorithm". It consumes cps starting from state st with
// width columns of budget remaining, debiting the budget once per cluster
// (by the width of the cluster's first code point) and stopping as soon as
// the next debit would exceed the budget.
//
// When returnPos is false, any debit that would meet or exceed the
// remaining budget stops processing immediately (the engine only cares
// about the total, which is already pinned at the budget either way).
// When returnPos is true, a debit that exactly exhausts the budget keeps
// going -- later code points belonging to the same cluster still need to
// be counted -- and only a debit that would overshoot the budget reports a
// stopping position.
func graphemeStep(cps []rune, width int, st state, returnPos bool) stepResult {
	n := len(cps)
	for i := 0; i < n; {
		ch := cps[i]
		i++

		cat, wide := classify(ch)
		chWidth := 1
		if wide {
			chWidth = 2
		}

		var newState state
		debit := false

		switch {
		case ch == 0x000D: // CR
			newState = stAfterCR
			chWidth = 1
			debit = true

		case ch == 0x000A: // LF
			if st == stAfterCR {
				newState = stInitial
			} else {
				newState = stInitial
				chWidth = 1
				debit = true
			}

		case cat == catControl:
			newState = stInitial
			chWidth = 1
			debit = true

		case cat == catExtendAndControl:
			if returnPos && st == stAfterXpic {
				newState = st
			} else {
				newState = stInitial
				chWidth = 1
				debit = true
			}

		case cat == catExtend:
			if st == stAfterXpic {
				newState = st
			} else {
				newState, debit = spacingMarkTransition(st)
			}

		case cat == catZWJ:
			if st == stAfterXpic {
				newState = stAfterXpicZWJ
			} else {
				newState, debit = spacingMarkTransition(st)
			}

		case cat == catSpacingMark:
			newState, debit = spacingMarkTransition(st)

		case cat == catPrepend:
			if st == stAfterPrepend {
				newState = st
			} else {
				newState = stAfterPrepend
				debit = true
			}

		case cat == catRegionalIndicator:
			switch st {
			case stAfterRI:
				newState = stAfterCore
			case stAfterPrepend:
				newState = stAfterRI
			default:
				newState = stAfterRI
				debit = true
			}

		case cat == catExtendedPicto:
			switch st {
			case stAfterXpicZWJ:
				newState = stAfterXpic
			case stAfterPrepend:
				newState = stAfterXpic
			default:
				newState = stAfterXpic
				debit = true
			}

		case cat == catHangulL:
			switch st {
			case stAfterHangulL:
				newState = st
			case stAfterPrepend:
				newState = stAfterHangulL
			default:
				newState = stAfterHangulL
				debit = true
			}

		case cat == catHangulV:
			switch st {
			case stAfterHangulL, stAfterHangulV, stAfterHangulLV:
				newState = stAfterHangulV
			case stAfterPrepend:
				newState = stAfterHangulV
			default:
				newState = stAfterHangulV
				debit = true
			}

		case cat == catHangulT:
			switch st {
			case stAfterHangulV, stAfterHangulLV, stAfterHangulLVT, stAfterHangulT:
				newState = stAfterHangulT
			case stAfterPrepend:
				newState = stAfterHangulT
			default:
				newState = stAfterHangulT
				debit = true
			}

		case cat == catHangulLVOrLVT:
			// GB spec: c is LV iff (c - 0xAC00) mod 28 == 0.
			target := stAfterHangulLVT
			if (ch-0xAC00)%28 == 0 {
				target = stAfterHangulLV
			}
			switch st {
			case stAfterHangulL:
				newState = target
			case stAfterPrepend:
				newState = target
			default:
				newState = target
				debit = true
			}

		default: // catOther
			if st == stAfterPrepend {
				newState = stAfterCore
			} else {
				newState = stAfterCore
				debit = true
			}
		}

		if debit {
			if chWidth >= width {
				if !returnPos || chWidth > width {
					// Both modes pin the remaining budget at 0 once a
					// cluster fails to fit: the caller's width is always
					// limit-0, the cap, never a partial leftover.
					return stepResult{pos: i - 1, stopped: true}
				}
				// Exact fit: budget hits zero but the cluster may still
				// have trailing extend/zwj code points to account for.
				width = 0
				st = newState
				continue
			}
			width -= chWidth
		}
		st = newState
	}
	return stepResult{width: width, state: st, pos: n}
}

// spacingMarkTransition implements the shared rule used by extend (outside
// an extended-pictographic cluster), zwj (outside one), and spacing_mark
// itself: extend the cluster for free if one is already open or a prepend
// character precedes it, otherwise open a new poscore cluster and debit.
func spacingMarkTransition(st state) (state, bool) {
	if st&(stAfterPrepend|stAfterCore|stAfterPoscore) != 0 {
		return stAfterPoscore, false
	}
	return stAfterPoscore, true
}

// budgetSink is the budget-only width engine variant (spec section 4.4).
type budgetSink struct {
	sink
	remaining int
	state     state
}

func newBudgetSink(limit int) *budgetSink {
	b := &budgetSink{remaining: limit}
	b.sink = sink{good: limit != 0}
	b.sink.onFull = b.onFull
	return b
}

func (b *budgetSink) onFull(buffered []rune) bool {
	res := graphemeStep(buffered, b.remaining, b.state, false)
	b.remaining = res.width
	b.state = res.state
	return b.remaining != 0
}

// remainingWidth runs a final pass over any un-recycled code points and
// returns the residual budget.
func (b *budgetSink) remainingWidth() int {
	if b.remaining != 0 && b.sink.write != 0 {
		res := graphemeStep(b.sink.buffered(), b.remaining, b.state, false)
		return res.width
	}
	return b.remaining
}

// budgetPosSink is the budget-with-position width engine variant.
type budgetPosSink struct {
	sink
	remaining       int
	state           state
	codepointsCount int
}

func newBudgetPosSink(limit int) *budgetPosSink {
	b := &budgetPosSink{remaining: limit}
	b.sink = sink{good: limit != 0}
	b.sink.onFull = b.onFull
	return b
}

func (b *budgetPosSink) onFull(buffered []rune) bool {
	res := graphemeStep(buffered, b.remaining, b.state, true)
	b.remaining = res.width
	b.state = res.state
	b.codepointsCount += res.pos
	if b.remaining == 0 && res.pos != len(buffered) {
		return false
	}
	return true
}

type widthAndCount struct {
	remainingWidth     int
	wholeStringCovered bool
	codepointsCount    int
}

func (b *budgetPosSink) remainingWidthAndCodepointsCount() widthAndCount {
	if !b.sink.good {
		return widthAndCount{codepointsCount: b.codepointsCount}
	}
	buffered := b.sink.buffered()
	res := graphemeStep(buffered, b.remaining, b.state, true)
	b.remaining = res.width
	b.codepointsCount += res.pos
	return widthAndCount{
		remainingWidth:     res.width,
		wholeStringCovered: res.pos == len(buffered),
		codepointsCount:    b.codepointsCount,
	}
}
