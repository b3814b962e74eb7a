package widget

// NodeID indexes a widget inside a Tree's arena. The zero value, 0, is
// always the tree's root and is its own parent — the cyclic root pointer
// the design notes call for, rather than a nil/sentinel parent.
type NodeID int

type node struct {
	widget Widget
	parent NodeID
	kids   []NodeID
}

// Tree is an arena-indexed widget graph: widgets are added once and
// referenced thereafter by NodeID, never by pointer, so the graph can hold
// cycles (the root's parent is itself) without Go's ownership rules
// getting in the way.
type Tree struct {
	nodes []node
}

// NewTree creates a tree whose root is the given widget, parented to
// itself.
func NewTree(root Widget) *Tree {
	t := &Tree{nodes: []node{{widget: root}}}
	t.nodes[0].parent = 0
	return t
}

// Root returns the root node's id, always 0.
func (t *Tree) Root() NodeID { return 0 }

// Add inserts w as a child of parent and returns its new id.
func (t *Tree) Add(parent NodeID, w Widget) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{widget: w, parent: parent})
	t.nodes[parent].kids = append(t.nodes[parent].kids, id)
	return id
}

// Widget returns the widget stored at id.
func (t *Tree) Widget(id NodeID) Widget {
	return t.nodes[id].widget
}

// Parent returns id's parent. The root is its own parent.
func (t *Tree) Parent(id NodeID) NodeID {
	return t.nodes[id].parent
}

// Children returns id's children in insertion order.
func (t *Tree) Children(id NodeID) []NodeID {
	return t.nodes[id].kids
}

// Remove detaches id from its parent's child list. The node's slot is
// left in the arena (so sibling NodeIDs stay valid) but orphaned; callers
// must not dispatch to a removed id again.
func (t *Tree) Remove(id NodeID) {
	p := t.nodes[id].parent
	kids := t.nodes[p].kids
	for i, k := range kids {
		if k == id {
			t.nodes[p].kids = append(kids[:i], kids[i+1:]...)
			return
		}
	}
}

// Walk visits id and every descendant, depth-first, parent before children.
func (t *Tree) Walk(id NodeID, visit func(NodeID, Widget)) {
	visit(id, t.nodes[id].widget)
	for _, k := range t.nodes[id].kids {
		t.Walk(k, visit)
	}
}
