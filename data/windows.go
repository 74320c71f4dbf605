package data

import "fmt"

// WindowTitle returns the side-list label for index i.
func WindowTitle(i int) string {
	return fmt.Sprintf("Window %d", i)
}

// WindowTitles returns "Window 0" through "Window n-1" in order.
func WindowTitles(n int) []string {
	if n < 0 {
		n = 0
	}
	titles := make([]string, n)
	for i := range titles {
		titles[i] = WindowTitle(i)
	}
	return titles
}
