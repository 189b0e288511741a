package llrb

import "fmt"
import "unsafe"

const nodesize = int64(unsafe.Sizeof(Llrbnode{}))

// color of the link from parent to node, absent nodes are black.
type color uint8

const (
	red color = iota
	black
)

func (c color) String() string {
	switch c {
	case red:
		return "red"
	case black:
		return "black"
	}
	panic(fmt.Errorf("unexpected color %d", uint8(c)))
}

// Llrbnode defines a node in LLRB tree. A node exclusively owns its
// left and right subtree, there is no back reference to parent.
type Llrbnode struct {
	left  *Llrbnode
	right *Llrbnode
	key   int64
	color color
}

// Key return the key held by this node.
func (nd *Llrbnode) Key() int64 {
	return nd.key
}

func (nd *Llrbnode) isred() bool {
	if nd == nil {
		return false
	}
	return nd.color == red
}

func (nd *Llrbnode) isblack() bool {
	return !nd.isred()
}

func (nd *Llrbnode) setred() *Llrbnode {
	nd.color = red
	return nd
}

func (nd *Llrbnode) setblack() *Llrbnode {
	nd.color = black
	return nd
}

func (nd *Llrbnode) togglelink() *Llrbnode {
	if nd.color == red {
		nd.color = black
	} else {
		nd.color = red
	}
	return nd
}

// reset node before it goes back to the pool.
func (nd *Llrbnode) reset() *Llrbnode {
	nd.left, nd.right, nd.key, nd.color = nil, nil, 0, red
	return nd
}

func (nd *Llrbnode) repr() string {
	return fmt.Sprintf("%v %v", nd.key, nd.color)
}
