package stringwidth

// Width and WidthAndPos are the package's public entry points (spec section
// 6). Both decode the input code-unit stream and feed it through the
// budget-driven width engine; WidthAndPos additionally resolves the byte (or
// unit) offset at which the returned width was reached, using
// countcodepoints.go to avoid retaining per-code-point history during the
// decode pass.

// Width returns the display width, in terminal columns, of s, capped at
// limit. A limit of 0 always returns 0 without inspecting s.
func Width(limit int, s string, policy SurrogatePolicy) int {
	return WidthBytes(limit, []byte(s), policy)
}

// WidthBytes is Width over a raw UTF-8 byte slice, avoiding the string-to-
// bytes copy when the caller already holds one.
func WidthBytes(limit int, s []byte, policy SurrogatePolicy) int {
	if limit == 0 {
		return 0
	}
	b := newBudgetSink(limit)
	decodeUTF8(&b.sink, s, policy)
	return limit - b.remainingWidth()
}

// WidthUTF16 is Width over a UTF-16 code-unit slice.
func WidthUTF16(limit int, s []uint16, policy SurrogatePolicy) int {
	if limit == 0 {
		return 0
	}
	b := newBudgetSink(limit)
	decodeUTF16(&b.sink, s, policy)
	return limit - b.remainingWidth()
}

// WidthUTF32 is Width over a UTF-32 code-unit slice.
func WidthUTF32(limit int, s []uint32, policy SurrogatePolicy) int {
	if limit == 0 {
		return 0
	}
	b := newBudgetSink(limit)
	decodeUTF32(&b.sink, s, policy)
	return limit - b.remainingWidth()
}

// WidthAndPos returns the display width of s capped at limit, together with
// the byte offset into s of the first byte not counted toward that width
// (len(s) if the whole string fit within limit).
func WidthAndPos(limit int, s string, policy SurrogatePolicy) (width, pos int) {
	return WidthAndPosBytes(limit, []byte(s), policy)
}

// WidthAndPosBytes is WidthAndPos over a raw UTF-8 byte slice.
func WidthAndPosBytes(limit int, s []byte, policy SurrogatePolicy) (width, pos int) {
	if limit == 0 {
		return 0, 0
	}
	b := newBudgetPosSink(limit)
	decodeUTF8(&b.sink, s, policy)
	res := b.remainingWidthAndCodepointsCount()
	width = limit - res.remainingWidth
	if res.wholeStringCovered {
		return width, len(s)
	}
	_, bytePos := countCodepointsUTF8(s, res.codepointsCount, policy)
	return width, bytePos
}

// WidthAndPosUTF16 is WidthAndPos over a UTF-16 code-unit slice. pos is a
// unit offset, not a byte offset.
func WidthAndPosUTF16(limit int, s []uint16, policy SurrogatePolicy) (width, pos int) {
	if limit == 0 {
		return 0, 0
	}
	b := newBudgetPosSink(limit)
	decodeUTF16(&b.sink, s, policy)
	res := b.remainingWidthAndCodepointsCount()
	width = limit - res.remainingWidth
	if res.wholeStringCovered {
		return width, len(s)
	}
	_, unitPos := countCodepointsUTF16(s, res.codepointsCount)
	return width, unitPos
}

// WidthAndPosUTF32 is WidthAndPos over a UTF-32 code-unit slice. pos is a
// unit offset.
func WidthAndPosUTF32(limit int, s []uint32, policy SurrogatePolicy) (width, pos int) {
	if limit == 0 {
		return 0, 0
	}
	b := newBudgetPosSink(limit)
	decodeUTF32(&b.sink, s, policy)
	res := b.remainingWidthAndCodepointsCount()
	width = limit - res.remainingWidth
	if res.wholeStringCovered {
		return width, len(s)
	}
	_, unitPos := countCodepointsUTF32(len(s), res.codepointsCount)
	return width, unitPos
}
