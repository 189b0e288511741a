package llrb

import "sort"
import "testing"
import "math/rand"

import "github.com/google/btree"
import "github.com/stretchr/testify/require"

// random mix of operations against a map, tree is validated after every
// mutation.
func TestLLRBRandom(t *testing.T) {
	seed := int64(1234)
	rnd := rand.New(rand.NewSource(seed))
	t.Logf("seed %v", seed)

	for _, keyrange := range []int64{8, 100, 10000} {
		llrb := NewLLRB("random", Defaultsettings())
		model := map[int64]bool{}
		for i := 0; i < 20000; i++ {
			key := rnd.Int63n(keyrange) - (keyrange / 2)
			switch op := rnd.Intn(10); {
			case op < 5:
				llrb.Insert(key)
				model[key] = true
				require.NoError(t, llrb.Check(), "insert %v", key)
			case op < 8:
				llrb.Delete(key)
				delete(model, key)
				require.NoError(t, llrb.Check(), "delete %v", key)
			default:
				require.Equal(t, model[key], llrb.Contains(key), "contains %v", key)
			}
			require.Equal(t, int64(len(model)), llrb.Count())
		}
		for key := -keyrange; key < keyrange; key++ {
			require.Equal(t, model[key], llrb.Contains(key), "key %v", key)
		}
		require.LessOrEqual(t, llrb.Height(), maxheight(llrb.Count()))
	}
}

// in-order walk of the tree should match a reference b-tree.
func TestLLRBInorder(t *testing.T) {
	rnd := rand.New(rand.NewSource(4321))
	llrb := NewLLRB("inorder", Defaultsettings())
	ref := btree.New(16)

	for i := 0; i < 5000; i++ {
		key := rnd.Int63n(2000)
		if rnd.Intn(3) == 0 {
			llrb.Delete(key)
			ref.Delete(btree.Int(key))
		} else {
			llrb.Insert(key)
			ref.ReplaceOrInsert(btree.Int(key))
		}
	}
	require.NoError(t, llrb.Check())
	require.Equal(t, int64(ref.Len()), llrb.Count())

	keys := inorder(llrb.root, make([]int64, 0, ref.Len()))
	require.True(t, sort.SliceIsSorted(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	}))

	refkeys := make([]int64, 0, ref.Len())
	ref.Ascend(func(item btree.Item) bool {
		refkeys = append(refkeys, int64(item.(btree.Int)))
		return true
	})
	require.Equal(t, refkeys, keys)
}

func inorder(nd *Llrbnode, keys []int64) []int64 {
	if nd == nil {
		return keys
	}
	keys = inorder(nd.left, keys)
	keys = append(keys, nd.Key())
	return inorder(nd.right, keys)
}
