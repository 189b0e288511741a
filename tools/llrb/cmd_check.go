package main

import "fmt"
import "flag"
import "sync"
import "time"
import "strconv"
import "math/rand"

import "github.com/bnclabs/golog"
import "github.com/bnclabs/llrbset/lib"
import "github.com/bnclabs/llrbset/llrb"
import "github.com/google/btree"
import humanize "github.com/dustin/go-humanize"

var checkopts struct {
	repeat   int
	seed     int
	keys     int
	vtick    int
	weights  [3]int // insert,delete,contains
	memstats int
	log      string
}

func parseCheckopts(args []string) error {
	f := flag.NewFlagSet("check", flag.ExitOnError)

	var weights string

	seed := time.Now().UTC().Second()
	f.IntVar(&checkopts.repeat, "repeat", 100000,
		"number of operations to generate")
	f.IntVar(&checkopts.seed, "seed", seed,
		"seed value for generating inputs")
	f.IntVar(&checkopts.keys, "keys", 10000,
		"keys are drawn from [0,keys)")
	f.IntVar(&checkopts.vtick, "vtick", 1000,
		"validate tree for every vtick operations")
	f.StringVar(&weights, "weights", "5,3,2",
		"insert,delete,contains - relative weight of each operation")
	f.IntVar(&checkopts.memstats, "stats", 0,
		"log memory and tree stats for every tick, in ms, 0 to disable")
	f.StringVar(&checkopts.log, "log", "warn", "log level")
	f.Parse(args)

	ws := lib.Parsecsv(weights)
	if len(ws) != len(checkopts.weights) {
		return fmt.Errorf("invalid weights %q", weights)
	}
	total := 0
	for i, s := range ws {
		w, err := strconv.Atoi(s)
		if err != nil || w < 0 {
			return fmt.Errorf("invalid weight %q", s)
		}
		checkopts.weights[i], total = w, total+w
	}
	if total == 0 {
		return fmt.Errorf("weights cannot all be zero")
	} else if checkopts.keys <= 0 {
		return fmt.Errorf("invalid keys %v", checkopts.keys)
	} else if checkopts.vtick <= 0 {
		return fmt.Errorf("invalid vtick %v", checkopts.vtick)
	}
	return nil
}

func doCheck(args []string) int {
	if err := parseCheckopts(args); err != nil {
		fmt.Println(err)
		return 1
	}
	setlogger(checkopts.log)
	fmt.Printf("Seed: %v\n", checkopts.seed)

	tree := llrb.NewLLRB("check", llrb.Defaultsettings())

	var mu sync.Mutex
	quit := make(chan struct{})
	defer close(quit)
	go statlogger(time.Duration(checkopts.memstats)*time.Millisecond, tree, &mu, quit)

	rnd := rand.New(rand.NewSource(int64(checkopts.seed)))
	c := newchecker(tree)
	now := time.Now()
	for i := 1; i <= checkopts.repeat; i++ {
		op, key := pickop(rnd, checkopts.weights), rnd.Int63n(int64(checkopts.keys))
		mu.Lock()
		err := c.apply(op, key)
		if err == nil && i%checkopts.vtick == 0 {
			err = c.validate()
		}
		mu.Unlock()
		if err != nil {
			fmt.Printf("op %v %v(%v): %v\n", i, op, key, err)
			return 2
		}
	}
	mu.Lock()
	err := c.validate()
	mu.Unlock()
	if err != nil {
		fmt.Printf("final: %v\n", err)
		return 2
	}
	fmsg := "Took %v for %v ops, %v keys, height %v\n"
	ops, count := humanize.Comma(int64(checkopts.repeat)), humanize.Comma(tree.Count())
	fmt.Printf(fmsg, time.Since(now), ops, count, tree.Height())
	fmt.Printf("ops: %v\n", c.opcounts)
	tree.Log()
	return 0
}

var opnames = [3]string{"insert", "delete", "contains"}

func pickop(rnd *rand.Rand, weights [3]int) string {
	total := 0
	for _, w := range weights {
		total += w
	}
	n := rnd.Intn(total)
	for i, w := range weights {
		if n < w {
			return opnames[i]
		}
		n -= w
	}
	panic("unreachable")
}

// checker mirrors every operation on a reference b-tree.
type checker struct {
	tree     *llrb.LLRB
	ref      *btree.BTree
	opcounts map[string]int
}

func newchecker(tree *llrb.LLRB) *checker {
	return &checker{tree: tree, ref: btree.New(32), opcounts: map[string]int{}}
}

func (c *checker) apply(op string, key int64) error {
	c.opcounts[op]++
	switch op {
	case "insert":
		c.tree.Insert(key)
		c.ref.ReplaceOrInsert(btree.Int(key))
	case "delete":
		c.tree.Delete(key)
		c.ref.Delete(btree.Int(key))
	case "contains":
		if x, y := c.tree.Contains(key), c.ref.Has(btree.Int(key)); x != y {
			return fmt.Errorf("contains mismatch, expected %v got %v", y, x)
		}
	default:
		return fmt.Errorf("unknown operation %q", op)
	}
	if x, y := c.tree.Count(), int64(c.ref.Len()); x != y {
		return fmt.Errorf("count mismatch, expected %v got %v", y, x)
	}
	return nil
}

func (c *checker) validate() (err error) {
	if err = c.tree.Check(); err != nil {
		return err
	}
	c.ref.Ascend(func(item btree.Item) bool {
		if key := int64(item.(btree.Int)); !c.tree.Contains(key) {
			err = fmt.Errorf("missing key %v", key)
			return false
		}
		return true
	})
	if err == nil {
		log.Debugf("validated %v keys\n", c.ref.Len())
	}
	return err
}
