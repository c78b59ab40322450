package widget

// Zone is the screen rectangle a node was last drawn in.
type Zone struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside the zone.
func (z Zone) Contains(x, y int) bool {
	return x >= z.X && x < z.X+z.Width && y >= z.Y && y < z.Y+z.Height
}

// Node is the terminal element of one trigger, tab or option. The patterns
// see it as a list.Element; the renderer uses it to draw the focus ring and
// record where the item landed on screen.
type Node struct {
	id    string
	scope *Scope
	zone  Zone
}

// ID returns the id of the item the node renders.
func (n *Node) ID() string { return n.id }

// Focus moves terminal focus onto the node.
func (n *Node) Focus() {
	n.scope.focused = n
}

// Focused reports whether the node holds terminal focus.
func (n *Node) Focused() bool {
	return n.scope.focused == n
}

// SetZone records where the node was drawn.
func (n *Node) SetZone(z Zone) { n.zone = z }

// Zone returns where the node was last drawn.
func (n *Node) Zone() Zone { return n.zone }

// Scope owns the nodes of one screen: which holds focus and which sits
// under a mouse press.
type Scope struct {
	nodes   []*Node
	focused *Node
}

// NewScope returns an empty Scope.
func NewScope() *Scope {
	return &Scope{}
}

// NewNode registers a node.
func (s *Scope) NewNode(id string) *Node {
	n := &Node{id: id, scope: s}
	s.nodes = append(s.nodes, n)
	return n
}

// Focused returns the node holding focus, or nil.
func (s *Scope) Focused() *Node {
	return s.focused
}

// Blur clears focus.
func (s *Scope) Blur() {
	s.focused = nil
}

// ResetZones forgets every recorded zone before a redraw.
func (s *Scope) ResetZones() {
	for _, n := range s.nodes {
		n.zone = Zone{}
	}
}

// HitTest returns the node drawn at (x, y), or nil.
func (s *Scope) HitTest(x, y int) any {
	for _, n := range s.nodes {
		if n.zone.Contains(x, y) {
			return n
		}
	}
	return nil
}
