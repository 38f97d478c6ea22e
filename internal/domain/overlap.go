package domain

// Overlaps reports whether two same-day time windows at the same venue
// share any instant. Windows are half-open [start, end): a window that
// starts exactly when another ends does not overlap it.
//
// Times are zero-padded "HH:MM" strings, so lexicographic comparison
// matches chronological order.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && aEnd > bStart
}
