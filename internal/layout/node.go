package layout

// Node is one element of a design tree. The engine reads nodes but never
// modifies them; the same tree may be laid out concurrently.
type Node struct {
	ID       string
	Kind     Kind
	Style    Style
	Width    Size
	Height   Size
	Content  Content
	Children []*Node
}

// Content is the textual payload a node displays. Only the intrinsic size
// resolver reads it.
type Content struct {
	Label         string
	Text          string
	Value         string
	Placeholder   string
	Icon          string // Left icon
	IconRight     string
	Badge         string
	IconSeparated bool // Left icon and badge sit in their own segment
	Items         []Item
	Options       []string
}

// Item is one entry of a list-like node (menu entry, tab, tree row).
type Item struct {
	Icon      string
	Label     string
	Hotkey    string
	Separator bool // A one-cell separator follows this item
	Depth     int  // Tree nesting level
}

// NewNode creates a node of the given kind with the default style.
func NewNode(id string, kind Kind) *Node {
	return &Node{ID: id, Kind: kind, Style: DefaultStyle()}
}

// AddChild appends children and returns n for chaining.
func (n *Node) AddChild(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// flowDirection returns the main axis used to arrange n's children.
// List-like kinds are always single-column regardless of declaration.
func (n *Node) flowDirection() Direction {
	if n.Kind.forcesColumn() {
		return Column
	}
	return n.Style.Direction
}
