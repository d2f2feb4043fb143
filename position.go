package correspondence

import "fmt"

// Position identifies a leaf entry by its node, group and entry indexes.
type Position struct {
	Node  int
	Group int
	Entry int
}

func (p Position) String() string {
	return fmt.Sprintf("[%d/%d/%d]", p.Node, p.Group, p.Entry)
}
