package filetree

// Tree indexes the nodes reachable from one root by ID so a tree widget can address
// them with plain strings. A new project root means a new Tree.
type Tree struct {
	provider *Provider
	root     *Node
	nodes    map[string]*Node
}

func NewTree(provider *Provider, rootPath string) (*Tree, error) {
	root, err := provider.Initialize(rootPath)
	if err != nil {
		return nil, err
	}

	return &Tree{
		provider: provider,
		root:     root,
		nodes:    map[string]*Node{root.ID(): root},
	}, nil
}

func (t *Tree) Root() *Node {
	return t.root
}

func (t *Tree) Lookup(id string) (*Node, bool) {
	n, ok := t.nodes[id]
	return n, ok
}

// Expand re-lists the node and swaps its subtree in the index.
func (t *Tree) Expand(id string) ([]*Node, error) {
	node, ok := t.nodes[id]
	if !ok || !node.IsDir() {
		return nil, nil
	}

	for _, child := range node.children {
		t.forget(child)
	}

	children, err := t.provider.Expand(node)
	for _, child := range children {
		t.nodes[child.ID()] = child
	}
	return children, err
}

// ChildIDs returns the IDs below id, listing the directory first if it is still
// Unexpanded. The empty ID is the widget's virtual parent of the root.
func (t *Tree) ChildIDs(id string) ([]string, error) {
	if id == "" {
		return []string{t.root.ID()}, nil
	}

	node, ok := t.nodes[id]
	if !ok || !node.IsDir() {
		return nil, nil
	}

	var err error
	if !node.Expanded() {
		_, err = t.Expand(id)
	}

	ids := make([]string, 0, len(node.children))
	for _, child := range node.children {
		ids = append(ids, child.ID())
	}
	return ids, err
}

func (t *Tree) IsBranch(id string) bool {
	if id == "" {
		return true
	}
	node, ok := t.nodes[id]
	return ok && node.IsDir()
}

func (t *Tree) forget(n *Node) {
	for _, child := range n.children {
		t.forget(child)
	}
	delete(t.nodes, n.ID())
}
