package models

import (
	"fmt"
	"sort"
)

// TreeNodeType represents the type of tree node
type TreeNodeType string

const (
	TreeNodeTypeRoot       TreeNodeType = "root"
	TreeNodeTypeConnection TreeNodeType = "connection"
	TreeNodeTypeSchema     TreeNodeType = "schema"
	TreeNodeTypeTable      TreeNodeType = "table"
)

// TreeNode represents a node in the connection/schema navigation tree
type TreeNode struct {
	ID         string
	Type       TreeNodeType
	Label      string
	Parent     *TreeNode
	Children   []*TreeNode
	Expanded   bool
	Selectable bool
	Loaded     bool
}

// NewTreeNode creates a new tree node
func NewTreeNode(id string, nodeType TreeNodeType, label string) *TreeNode {
	return &TreeNode{
		ID:         id,
		Type:       nodeType,
		Label:      label,
		Children:   make([]*TreeNode, 0),
		Selectable: nodeType != TreeNodeTypeRoot,
	}
}

// AddChild adds a child node to this node
func (n *TreeNode) AddChild(child *TreeNode) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// Toggle toggles the expanded state of the node. Tables are leaves.
func (n *TreeNode) Toggle() {
	if n.Type == TreeNodeTypeTable {
		return
	}
	if len(n.Children) > 0 || !n.Loaded {
		n.Expanded = !n.Expanded
	}
}

// Flatten returns the visible nodes in render order. The root itself is a
// container and is not included.
func (n *TreeNode) Flatten() []*TreeNode {
	result := make([]*TreeNode, 0)
	if n.Type != TreeNodeTypeRoot {
		result = append(result, n)
	}
	if n.Expanded || n.Type == TreeNodeTypeRoot {
		for _, child := range n.Children {
			result = append(result, child.Flatten()...)
		}
	}
	return result
}

// FindByID finds a node by ID in the tree (depth-first search)
func (n *TreeNode) FindByID(id string) *TreeNode {
	if n.ID == id {
		return n
	}
	for _, child := range n.Children {
		if found := child.FindByID(id); found != nil {
			return found
		}
	}
	return nil
}

// Depth returns the depth of this node in the tree (root = 0)
func (n *TreeNode) Depth() int {
	depth := 0
	for current := n.Parent; current != nil; current = current.Parent {
		depth++
	}
	return depth
}

// BuildSchemaTree builds the SchemaExplorer tree for one connection: a root
// holding schema nodes, each holding table leaves.
func BuildSchemaTree(connection string, tables map[string][]string) *TreeNode {
	root := NewTreeNode("root", TreeNodeTypeRoot, connection)
	root.Expanded = true
	root.Loaded = true

	schemas := make([]string, 0, len(tables))
	for schema := range tables {
		schemas = append(schemas, schema)
	}
	sort.Strings(schemas)

	for _, schema := range schemas {
		names := tables[schema]
		schemaNode := NewTreeNode(fmt.Sprintf("schema:%s", schema), TreeNodeTypeSchema, schema)
		schemaNode.Expanded = true
		schemaNode.Loaded = true
		for _, name := range names {
			tableNode := NewTreeNode(fmt.Sprintf("table:%s.%s", schema, name), TreeNodeTypeTable, name)
			schemaNode.AddChild(tableNode)
		}
		root.AddChild(schemaNode)
	}

	return root
}
