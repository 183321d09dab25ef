package domain

// TotalPages returns the number of pages needed for n items. A size below 1 counts as 1.
func TotalPages(n, size int) int {
	if n <= 0 {
		return 0
	}
	if size < 1 {
		size = 1
	}
	return (n + size - 1) / size
}

// ClampPage keeps page inside [1, total]. A total of zero is one empty page.
func ClampPage(page, total int) int {
	if total < 1 {
		total = 1
	}
	return min(max(page, 1), total)
}

// PageSlice returns the items of the given 1-based page together with the page
// number actually used after clamping.
func PageSlice[T any](ordered []T, page, size int) ([]T, int) {
	if size < 1 {
		size = 1
	}
	page = ClampPage(page, TotalPages(len(ordered), size))

	start := (page - 1) * size
	if start >= len(ordered) {
		return ordered[len(ordered):], page
	}
	end := min(start+size, len(ordered))
	return ordered[start:end], page
}

// VisibleButtons returns the page numbers to show: a window of maxVisible pages
// centred on current and shifted back inside [1, total] at either end. The window
// is narrower only when there are fewer than maxVisible pages.
func VisibleButtons(current, total, maxVisible int) []int {
	if total <= 0 {
		return nil
	}
	if maxVisible < 1 {
		maxVisible = 1
	}

	width := min(maxVisible, total)
	current = ClampPage(current, total)

	start := current - (width-1)/2
	if start < 1 {
		start = 1
	}
	end := start + width - 1
	if end > total {
		end = total
		start = end - width + 1
	}

	buttons := make([]int, 0, width)
	for p := start; p <= end; p++ {
		buttons = append(buttons, p)
	}
	return buttons
}
