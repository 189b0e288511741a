package llrb

import "fmt"
import "time"

import "github.com/bnclabs/llrbset/lib"
import s "github.com/bnclabs/gosettings"
import humanize "github.com/dustin/go-humanize"

// LLRB manage a single instance of in-memory ordered set of integer keys
// using left-leaning-red-black tree. Reads and writes are expected to be
// serialized by the caller.
type LLRB struct { // tree container
	// all are 64-bit aligned
	llrbstats
	h_insertdepth *lib.HistogramInt64

	// can be unaligned fields

	name     string
	root     *Llrbnode
	borntime time.Time
	nodepool chan *Llrbnode

	// settings
	poolcapacity int64 // nodepool.capacity
	depthhist    bool  // depth.histogram
	setts        s.Settings
	logprefix    string
}

// NewLLRB a new instance of in-memory ordered set. Supplied settings
// override Defaultsettings().
func NewLLRB(name string, setts s.Settings) *LLRB {
	llrb := &LLRB{name: name, borntime: time.Now()}
	llrb.logprefix = fmt.Sprintf("LLRB [%s]", name)

	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	llrb.readsettings(setts)
	llrb.setts = setts
	if llrb.poolcapacity > 0 {
		llrb.nodepool = make(chan *Llrbnode, llrb.poolcapacity)
	}

	// statistics
	llrb.h_insertdepth = lib.NewhistorgramInt64(1, 256, 1)

	poolmem := humanize.Bytes(uint64(llrb.poolcapacity * nodesize))
	fmsg := "%v started with node pool of %v nodes (%v) ...\n"
	infof(fmsg, llrb.logprefix, llrb.poolcapacity, poolmem)
	return llrb
}

// ID return the name of this tree.
func (llrb *LLRB) ID() string {
	return llrb.name
}

// Count return number of keys in the set.
func (llrb *LLRB) Count() int64 {
	return llrb.n_count
}

// Height return the number of nodes on the longest path from root,
// ZERO for an empty tree.
func (llrb *LLRB) Height() int64 {
	return heightof(llrb.root)
}

//---- set operations

// Insert key into the set, inserting a key that is already present
// is a no-op.
func (llrb *LLRB) Insert(key int64) {
	root, newnd := llrb.insert(llrb.root, 1 /*depth*/, key)
	root.setblack()
	llrb.root = root
	llrb.insertcounts(newnd)
}

func (llrb *LLRB) insert(
	nd *Llrbnode, depth, key int64) (newroot, newnd *Llrbnode) {

	if nd == nil {
		newnd = llrb.newnode(key)
		if llrb.depthhist {
			llrb.h_insertdepth.Add(depth)
		}
		return newnd, newnd
	}

	if key < nd.key {
		nd.left, newnd = llrb.insert(nd.left, depth+1, key)
	} else if key > nd.key {
		nd.right, newnd = llrb.insert(nd.right, depth+1, key)
	} else {
		return nd, nil
	}
	return llrb.walkuprot23(nd), newnd
}

// Contains return whether key is present in the set.
func (llrb *LLRB) Contains(key int64) bool {
	llrb.n_lookups++
	nd := llrb.root
	for nd != nil {
		if key < nd.key {
			nd = nd.left
		} else if key > nd.key {
			nd = nd.right
		} else {
			return true
		}
	}
	return false
}

// Delete key from the set, deleting a missing key is a no-op.
func (llrb *LLRB) Delete(key int64) {
	if llrb.root == nil {
		llrb.n_misses++
		return
	}

	root, deleted := llrb.delete(llrb.root, key)
	if root != nil {
		root.setblack()
	}
	llrb.root = root

	if deleted == nil {
		llrb.n_misses++
		return
	}
	llrb.delcount(deleted)
	llrb.freenode(deleted)
}

// nd is never nil. Returned `deleted` is the node unlinked from the
// tree, which is not necessarily the node that held the key.
func (llrb *LLRB) delete(nd *Llrbnode, key int64) (newnd, deleted *Llrbnode) {
	if key < nd.key {
		if nd.left == nil { // key not present. Nothing to delete
			return nd, nil
		}
		if !nd.left.isred() && !nd.left.left.isred() {
			nd = llrb.moveredleft(nd)
		}
		nd.left, deleted = llrb.delete(nd.left, key)

	} else {
		if nd.left.isred() {
			nd = llrb.rotateright(nd)
		}
		// If key equals nd.key and no right children at nd
		if key == nd.key && nd.right == nil {
			return nil, nd
		}
		if nd.right != nil {
			if !nd.right.isred() && !nd.right.left.isred() {
				nd = llrb.moveredright(nd)
			}
			// If key equals nd.key, and (from above) nd.right != nil
			if key == nd.key {
				nd.key = getmin(nd.right).key
				nd.right, deleted = llrb.deletemin(nd.right)
			} else { // Else, key is bigger than nd.key
				nd.right, deleted = llrb.delete(nd.right, key)
			}
		}
	}
	return llrb.fixup(nd), deleted
}

// using 2-3 trees
func (llrb *LLRB) deletemin(nd *Llrbnode) (newnd, deleted *Llrbnode) {
	if nd == nil {
		return nil, nil
	}
	if nd.left == nil {
		return nil, nd
	}
	if !nd.left.isred() && !nd.left.left.isred() {
		nd = llrb.moveredleft(nd)
	}
	nd.left, deleted = llrb.deletemin(nd.left)
	return llrb.fixup(nd), deleted
}

func getmin(nd *Llrbnode) *Llrbnode {
	for nd.left != nil {
		nd = nd.left
	}
	return nd
}

// rotation routines for 2-3 algorithm

func (llrb *LLRB) walkuprot23(nd *Llrbnode) *Llrbnode {
	if nd.right.isred() && !nd.left.isred() {
		nd = llrb.rotateleft(nd)
	}
	if nd.left.isred() && nd.left.left.isred() {
		nd = llrb.rotateright(nd)
	}
	if nd.left.isred() && nd.right.isred() {
		llrb.flip(nd)
	}
	return nd
}

func (llrb *LLRB) rotateleft(nd *Llrbnode) *Llrbnode {
	y := nd.right
	if y.isblack() {
		panicerr("rotateleft(): rotating a black link {%v} ?", nd.repr())
	}
	nd.right = y.left
	y.left = nd
	y.color = nd.color
	nd.setred()
	return y
}

func (llrb *LLRB) rotateright(nd *Llrbnode) *Llrbnode {
	x := nd.left
	if x.isblack() {
		panicerr("rotateright(): rotating a black link {%v} ?", nd.repr())
	}
	nd.left = x.right
	x.right = nd
	x.color = nd.color
	nd.setred()
	return x
}

// REQUIRE: Left and Right children must be present
func (llrb *LLRB) flip(nd *Llrbnode) {
	nd.left.togglelink()
	nd.right.togglelink()
	nd.togglelink()
}

// REQUIRE: Left and Right children must be present
func (llrb *LLRB) moveredleft(nd *Llrbnode) *Llrbnode {
	llrb.flip(nd)
	if nd.right.left.isred() {
		nd.right = llrb.rotateright(nd.right)
		nd = llrb.rotateleft(nd)
		llrb.flip(nd)
	}
	return nd
}

// REQUIRE: Left and Right children must be present
func (llrb *LLRB) moveredright(nd *Llrbnode) *Llrbnode {
	llrb.flip(nd)
	if nd.left.left.isred() {
		nd = llrb.rotateright(nd)
		llrb.flip(nd)
	}
	return nd
}

func (llrb *LLRB) fixup(nd *Llrbnode) *Llrbnode {
	if nd.right.isred() {
		nd = llrb.rotateleft(nd)
	}
	if nd.left.isred() && nd.left.left.isred() {
		nd = llrb.rotateright(nd)
	}
	if nd.left.isred() && nd.right.isred() {
		llrb.flip(nd)
	}
	return nd
}

//---- local functions

func (llrb *LLRB) newnode(key int64) (nd *Llrbnode) {
	select {
	case nd = <-llrb.nodepool:
		llrb.n_reuses++
	default:
		nd = &Llrbnode{}
		llrb.n_nodes++
	}
	nd.key = key
	return nd.setred()
}

func (llrb *LLRB) freenode(nd *Llrbnode) {
	if nd == nil {
		return
	}
	llrb.n_frees++
	select {
	case llrb.nodepool <- nd.reset():
	default: // Let node be collected by GC
	}
}

func (llrb *LLRB) insertcounts(newnd *Llrbnode) {
	if newnd == nil {
		llrb.n_duplicates++
		return
	}
	llrb.n_count++
	llrb.n_inserts++
}

func (llrb *LLRB) delcount(nd *Llrbnode) {
	if nd != nil {
		llrb.n_count--
		llrb.n_deletes++
	}
}

func heightof(nd *Llrbnode) int64 {
	if nd == nil {
		return 0
	}
	lh, rh := heightof(nd.left), heightof(nd.right)
	if lh > rh {
		return lh + 1
	}
	return rh + 1
}
