package composite

import (
	"strings"

	"github.com/go-leo/gox/slicex"
)

// Component declares the operations common to both simple and complex
// elements of the tree. Leaves treat the child-management methods as no-ops,
// which lets the client work with the whole tree uniformly.
type Component interface {
	// Operation renders this element and, for branches, its whole subtree.
	Operation() string

	Parent() Component
	SetParent(parent Component)

	Add(child Component)
	Remove(child Component)

	// IsComposite reports whether the element can bear children.
	IsComposite() bool
}

type leaf struct {
	parent Component
}

// NewLeaf returns a Component that does the actual work and has no children.
func NewLeaf() Component {
	return &leaf{}
}

func (l *leaf) Operation() string          { return "Leaf" }
func (l *leaf) Parent() Component          { return l.parent }
func (l *leaf) SetParent(parent Component) { l.parent = parent }
func (l *leaf) Add(Component)              {}
func (l *leaf) Remove(Component)           {}
func (l *leaf) IsComposite() bool          { return false }

type branch struct {
	parent   Component
	children []Component
}

// NewBranch returns a Component that delegates the work to its children and
// sums up their results.
func NewBranch(children ...Component) Component {
	b := &branch{}
	for _, child := range children {
		b.Add(child)
	}
	return b
}

func (b *branch) Operation() string {
	results := make([]string, 0, len(b.children))
	for _, child := range b.children {
		results = append(results, child.Operation())
	}
	return "Branch(" + strings.Join(results, "+") + ")"
}

func (b *branch) Parent() Component          { return b.parent }
func (b *branch) SetParent(parent Component) { b.parent = parent }

func (b *branch) Add(child Component) {
	child.SetParent(b)
	b.children = append(b.children, child)
}

func (b *branch) Remove(child Component) {
	indexes := slicex.Indexes(b.children, child)
	if len(indexes) <= 0 {
		return
	}
	b.children = slicex.DeleteAll(b.children, indexes...)
	child.SetParent(nil)
}

func (b *branch) IsComposite() bool { return true }
