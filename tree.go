package synthview

import (
	"github.com/viant/synthview/visitor"
	"go.uber.org/zap"
)

// Node represents expanded value tree node
type Node struct {
	Name      string  `yaml:"name"`
	Type      string  `yaml:"type,omitempty"`
	Summary   string  `yaml:"summary,omitempty"`
	Synthetic bool    `yaml:"synthetic,omitempty"`
	Count     int     `yaml:"count,omitempty"`
	Error     string  `yaml:"error,omitempty"`
	Children  []*Node `yaml:"children,omitempty"`
}

// Truncated returns true if not all children were expanded
func (n *Node) Truncated() bool {
	return n.Synthetic && len(n.Children) < n.Count
}

// Expand builds value tree, synthetic children are expanded up to depth levels.
// A failed child resolution is reported on its node only.
func (r *Registry) Expand(value Value, depth int) *Node {
	node := &Node{Name: value.Name()}
	if valueType := value.Type(); valueType != nil {
		node.Type = valueType.Name()
	}
	summary, err := value.Summary()
	if err != nil {
		node.Error = err.Error()
		return node
	}
	node.Summary = summary
	provider, ok := r.Provider(value)
	if !ok {
		return node
	}
	node.Synthetic = true
	count, err := provider.NumChildren()
	if err != nil {
		node.Error = err.Error()
		return node
	}
	node.Count = count
	if depth <= 0 {
		return node
	}
	limit := count
	if limit > r.options.maxChildren {
		limit = r.options.maxChildren
	}
	visit := visitor.IndexedVisitorOf[*Node](limit, func(index int) (*Node, error) {
		child, err := provider.ChildAt(index)
		if err != nil {
			return &Node{Name: IndexName(index), Error: err.Error()}, nil
		}
		return r.Expand(child, depth-1), nil
	})
	err = visit(func(index int, child *Node) (bool, error) {
		node.Children = append(node.Children, child)
		return true, nil
	})
	if err != nil {
		node.Error = err.Error()
		r.options.logger.Warn("failed to expand children", zap.String("value", node.Name), zap.Error(err))
	}
	return node
}
