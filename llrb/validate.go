package llrb

import "fmt"

import "github.com/bnclabs/llrbset/lib"

// height of the tree cannot exceed a certain limit. A red-black tree
// holding n keys is never taller than 2*log2(n+1), maxheight rounds the
// logarithm up to the next integer.
func maxheight(entries int64) int64 {
	ceil := int64(0)
	for (int64(1) << uint(ceil)) < entries+1 {
		ceil++
	}
	return 2 * ceil
}

func unbalancedblacks(key, lblacks, rblacks int64) error {
	fmsg := "key %v blacks {%v,%v}: %w"
	return fmt.Errorf(fmsg, key, lblacks, rblacks, ErrorUnbalancedBlacks)
}

// Validate will walk the full tree to confirm LLRB rules, sort order
// and book-keeping. Panics on the first violation.
func (llrb *LLRB) Validate() {
	if err := llrb.Check(); err != nil {
		panic(fmt.Errorf("Validate(): %v", err))
	}
}

// Check is same as Validate but return the violation as error.
func (llrb *LLRB) Check() error {
	if err := llrb.validatestats(); err != nil {
		return err
	}

	root := llrb.root
	if root == nil {
		if llrb.n_count != 0 {
			fmsg := "empty tree, n_count:%v: %w"
			return fmt.Errorf(fmsg, llrb.n_count, ErrorCount)
		}
		return nil
	}
	if root.isred() {
		return fmt.Errorf("root %v: %w", root.key, ErrorRedRoot)
	}

	h := lib.NewhistorgramInt64(1, 256, 1)
	nblacks, n, err := validatetree(root, nil, nil, 0 /*blck*/, 1 /*dep*/, h)
	if err != nil {
		return err
	}
	if n != llrb.n_count {
		fmsg := "walked %v nodes, n_count:%v: %w"
		return fmt.Errorf(fmsg, n, llrb.n_count, ErrorCount)
	}
	if max := h.Max(); max > maxheight(n) {
		fmsg := "max height %v exceeds 2*ceil(log2(%v+1)): %w"
		return fmt.Errorf(fmsg, max, n, ErrorHeight)
	}
	debugf("%v found %v blacks on both sides\n", llrb.logprefix, nblacks)
	return nil
}

/*
following expectations on the tree should be met.
* A red link only leans left.
* If current node is red, its left child should be black.
* At each level, number of black-links on the left subtree should be
  equal to number of black-links on the right subtree.
* Every key lies strictly between the bounds inherited from ancestors.
* Return number of blacks and number of nodes in the sub-tree.
*/
func validatetree(
	nd *Llrbnode, low, high *int64, blacks, depth int64,
	h *lib.HistogramInt64) (nblacks, count int64, err error) {

	if nd == nil {
		return blacks, 0, nil
	}

	h.Add(depth)
	if nd.right.isred() {
		fmsg := "key %v right child %v: %w"
		return 0, 0, fmt.Errorf(fmsg, nd.key, nd.right.key, ErrorRightLeaning)
	} else if nd.isred() && nd.left.isred() {
		fmsg := "key %v left child %v: %w"
		return 0, 0, fmt.Errorf(fmsg, nd.key, nd.left.key, ErrorConsecutiveReds)
	}
	if low != nil && nd.key <= *low {
		fmsg := "key %v is <= left bound %v: %w"
		return 0, 0, fmt.Errorf(fmsg, nd.key, *low, ErrorSortOrder)
	} else if high != nil && nd.key >= *high {
		fmsg := "key %v is >= right bound %v: %w"
		return 0, 0, fmt.Errorf(fmsg, nd.key, *high, ErrorSortOrder)
	}
	if nd.isblack() {
		blacks++
	}

	key := nd.key
	lblacks, lcount, err := validatetree(nd.left, low, &key, blacks, depth+1, h)
	if err != nil {
		return 0, 0, err
	}
	rblacks, rcount, err := validatetree(nd.right, &key, high, blacks, depth+1, h)
	if err != nil {
		return 0, 0, err
	}
	if lblacks != rblacks {
		return 0, 0, unbalancedblacks(nd.key, lblacks, rblacks)
	}
	return lblacks, lcount + rcount + 1, nil
}

func (llrb *LLRB) validatestats() error {
	// n_count should match (n_inserts - n_deletes)
	n_count := llrb.n_count
	n_inserts, n_deletes := llrb.n_inserts, llrb.n_deletes
	if n_count != (n_inserts - n_deletes) {
		fmsg := "n_count:%v != (n_inserts:%v - n_deletes:%v): %w"
		return fmt.Errorf(fmsg, n_count, n_inserts, n_deletes, ErrorCount)
	}
	// live nodes should match n_count
	n_nodes, n_reuses, n_frees := llrb.n_nodes, llrb.n_reuses, llrb.n_frees
	if (n_nodes + n_reuses - n_frees) != n_count {
		fmsg := "(n_nodes:%v + n_reuses:%v - n_frees:%v) != n_count:%v: %w"
		return fmt.Errorf(fmsg, n_nodes, n_reuses, n_frees, n_count, ErrorCount)
	}
	return nil
}
