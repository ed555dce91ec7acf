package symtab

type treeNode struct {
	id          string
	left, right *treeNode
}

// BinaryTree is an unbalanced binary search tree of identifiers.
type BinaryTree struct {
	root  *treeNode
	count int
}

func NewBinaryTree() *BinaryTree {
	return &BinaryTree{}
}

func (t *BinaryTree) Len() int { return t.count }

// Fill replaces the tree contents with ids, the first one becoming the root.
func (t *BinaryTree) Fill(ids []string) {
	t.root = nil
	t.count = 0
	if len(ids) == 0 {
		log.Debug("no identifiers to fill the tree with")
		return
	}
	for _, id := range ids {
		t.Insert(id)
	}
}

// Insert adds id unless it is already present.
func (t *BinaryTree) Insert(id string) bool {
	link := &t.root
	for *link != nil {
		switch n := *link; {
		case id < n.id:
			link = &n.left
		case id > n.id:
			link = &n.right
		default:
			return false
		}
	}
	*link = &treeNode{id: id}
	t.count++
	return true
}

// Find returns the number of nodes visited while looking for id.
func (t *BinaryTree) Find(id string) (int, bool) {
	attempts := 0
	for n := t.root; n != nil; {
		attempts++
		switch {
		case id < n.id:
			n = n.left
		case id > n.id:
			n = n.right
		default:
			return attempts, true
		}
	}
	return attempts, false
}
