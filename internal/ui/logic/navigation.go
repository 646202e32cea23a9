package logic

// Navigator moves the row selection within the current page
type Navigator struct {
	selectedIndex int
	totalItems    int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{}
}

// UpdateState updates the navigator's state
func (n *Navigator) UpdateState(selectedIndex, totalItems int) {
	n.selectedIndex = selectedIndex
	n.totalItems = totalItems
}

// GetSelectedIndex returns the current selected index
func (n *Navigator) GetSelectedIndex() int {
	return n.selectedIndex
}

// Navigate moves the selection and returns the new index. Movement stops
// at the first and last rows.
func (n *Navigator) Navigate(direction string) int {
	if n.totalItems == 0 {
		n.selectedIndex = 0
		return n.selectedIndex
	}

	switch direction {
	case "up":
		if n.selectedIndex > 0 {
			n.selectedIndex--
		}
	case "down":
		if n.selectedIndex < n.totalItems-1 {
			n.selectedIndex++
		}
	case "home":
		n.selectedIndex = 0
	case "end":
		n.selectedIndex = n.totalItems - 1
	}

	if n.selectedIndex >= n.totalItems {
		n.selectedIndex = n.totalItems - 1
	}
	return n.selectedIndex
}
