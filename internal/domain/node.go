package domain

// NodeKind classifies a hierarchy node as a suite or a leaf case.
type NodeKind int

const (
	// KindSuite is a namespace directory grouping child suites and cases.
	KindSuite NodeKind = iota
	// KindCase is a leaf directory holding all required case files.
	KindCase
)

// Node is one node of the discovered case hierarchy. The crawler builds the
// tree once; after that it is read-only and safe to share across workers.
type Node struct {
	Label    string   // display name, the directory base name (root gets a fixed label)
	Dir      string   // filesystem location this node corresponds to
	Kind     NodeKind // decided once at crawl time
	Children []*Node  // suite children in crawl order, nil for cases
}

// IsCase reports whether the node is a leaf case.
func (n *Node) IsCase() bool {
	return n.Kind == KindCase
}
