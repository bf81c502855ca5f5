/*
Package stringwidth computes the monospace display width of text, the way a
terminal emulator does: text is grouped into grapheme clusters, and each
cluster counts as one column, or two when its first code point is a wide
East Asian or emoji code point. Combining marks and other code points that
extend a cluster add nothing to its width; control characters count as one
column each.

Grapheme cluster boundaries follow the rules of Unicode Standard Annex #29
(https://unicode.org/reports/tr29/) in a simplified form, over a
hand-curated subset of the Unicode property data (see table.go). Wide code
points are those in a fixed list of ranges (table_data.go), not the full
East Asian Width property (https://unicode.org/reports/tr11/).
cmd/gentable regenerates both tables from the Unicode 17.0 data files.

# Getting started

  - [Width] / [WidthBytes] - display width of a UTF-8 string or byte slice,
    capped at a column budget
  - [WidthUTF16] / [WidthUTF32] - the same, for already-decoded code-unit
    slices
  - [WidthAndPos] and its *UTF16/*UTF32 counterparts - display width plus
    the offset at which the budget was reached, for truncating a string to
    fit a fixed-width field

# Budgets, not totals

Every function here takes a limit and never counts past it. This is a
deliberate difference from measuring a string's full width and comparing it
to a field size afterward: a string with unbounded or malicious input can
be arbitrarily long, so the width functions stop scanning as soon as the
limit is reached rather than decoding the whole string first.

# Decoding

Input is accepted as UTF-8 (string or []byte), UTF-16 ([]uint16), or
UTF-32 ([]uint32). Invalid sequences and, depending on [SurrogatePolicy],
isolated UTF-16 surrogates are replaced with U+FFFD rather than rejected.

# What this package does not do

It does not split text into grapheme clusters for iteration, find word or
sentence boundaries, or determine line-break opportunities. It measures
width only.
*/
package stringwidth
