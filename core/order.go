package core

import (
	"fmt"
	"strings"
)

// Order selects when a Visitor runs relative to a node's children.
type Order int

const (
	// PreOrder visits a node before both of its subtrees.
	PreOrder Order = iota
	// InOrder visits a node between its left and right subtrees (ascending keys).
	InOrder
	// PostOrder visits a node after both of its subtrees.
	PostOrder
)

// String returns "pre", "in" or "post".
func (o Order) String() string {
	switch o {
	case PreOrder:
		return "pre"
	case InOrder:
		return "in"
	case PostOrder:
		return "post"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder maps "pre", "in", "post" (case-insensitive, optional "-order"
// suffix) to an Order. Returns ErrUnknownOrder otherwise.
func ParseOrder(s string) (Order, error) {
	name := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "-order")
	switch name {
	case "pre":
		return PreOrder, nil
	case "in":
		return InOrder, nil
	case "post":
		return PostOrder, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, s)
}
