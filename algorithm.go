package nepeta

// Lookup, merge, and coercion helpers. Children are an ordered sequence;
// all lookups scan linearly and compare ids byte for byte.

// Find returns the first child whose id equals key, or nil.
func (n *Node) Find(key string) *Node {
	for _, child := range n.Children {
		if string(child.ID) == key {
			return child
		}
	}
	return nil
}

// FindLast returns the last child whose id equals key, or nil.
func (n *Node) FindLast(key string) *Node {
	for i := len(n.Children) - 1; i >= 0; i-- {
		if string(n.Children[i].ID) == key {
			return n.Children[i]
		}
	}
	return nil
}

// Each calls fn for every child whose id equals key, in document order.
func (n *Node) Each(key string, fn func(*Node)) {
	for _, child := range n.Children {
		if string(child.ID) == key {
			fn(child)
		}
	}
}

// EachReverse is Each in reverse document order.
func (n *Node) EachReverse(key string, fn func(*Node)) {
	for i := len(n.Children) - 1; i >= 0; i-- {
		if string(n.Children[i].ID) == key {
			fn(n.Children[i])
		}
	}
}

// Merge appends deep copies of other's data and children onto n.
func (n *Node) Merge(other *Node) {
	for _, data := range other.Data {
		n.Data = append(n.Data, append([]byte(nil), data...))
	}
	for _, child := range other.Children {
		n.Children = append(n.Children, child.Clone())
	}
}

// MergeMove appends other's data and children onto n, leaving other with
// both collections empty.
func (n *Node) MergeMove(other *Node) {
	n.Data = append(n.Data, other.Data...)
	n.Children = append(n.Children, other.Children...)
	other.Data = nil
	other.Children = nil
}

// DataAt returns the data element at index, or false when out of range.
func (n *Node) DataAt(index int) ([]byte, bool) {
	if index < 0 || index >= len(n.Data) {
		return nil, false
	}
	return n.Data[index], true
}

// BoolAt coerces the data element at index with Bool.
func (n *Node) BoolAt(index int) (value, ok bool) {
	data, ok := n.DataAt(index)
	if !ok {
		return false, false
	}
	return Bool(data)
}

// IntegerAt coerces the data element at index with Integer.
func (n *Node) IntegerAt(index int) (int64, bool) {
	data, ok := n.DataAt(index)
	if !ok {
		return 0, false
	}
	return Integer(data)
}

// Bool reports the boolean encoded by value: exactly "true" or "false".
func Bool(value []byte) (b, ok bool) {
	switch string(value) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

// Integer parses value as a base-10 integer of the form [-+]?[0-9']*.
// The ' digit spacer is ignored and an empty value yields 0. No bounds
// checking is performed; out-of-range values wrap.
func Integer(value []byte) (int64, bool) {
	var result int64
	negative := false
	for i, ch := range value {
		switch {
		case i == 0 && ch == '-':
			negative = true
		case i == 0 && ch == '+':
		case isDigit(ch):
			result = result*10 + int64(ch-'0')
		case ch == digitSpacer:
		default:
			return 0, false
		}
	}
	if negative {
		return -result, true
	}
	return result, true
}
