package main

import "fmt"
import "flag"
import "sync"
import "time"
import "math/rand"

import "github.com/bnclabs/llrbset/llrb"
import "github.com/bnclabs/llrbset/lib"
import humanize "github.com/dustin/go-humanize"

var loadopts struct {
	n        int
	order    string
	seed     int
	memstats int
	pool     int
	log      string
}

func parseLoadopts(args []string) error {
	f := flag.NewFlagSet("load", flag.ExitOnError)

	f.IntVar(&loadopts.n, "n", 1000000,
		"number of keys to insert")
	f.StringVar(&loadopts.order, "order", "random",
		"insert keys in asc|desc|random order")
	f.IntVar(&loadopts.seed, "seed", int(time.Now().UnixNano()%1000000),
		"seed for random order")
	f.IntVar(&loadopts.memstats, "stats", 1000,
		"log memory and tree stats for every tick, in ms, 0 to disable")
	f.IntVar(&loadopts.pool, "pool", -1,
		"node pool capacity, -1 picks the default")
	f.StringVar(&loadopts.log, "log", "info", "log level")
	f.Parse(args)

	switch loadopts.order {
	case "asc", "desc", "random":
	default:
		return fmt.Errorf("invalid order %q", loadopts.order)
	}
	return nil
}

func doLoad(args []string) int {
	if err := parseLoadopts(args); err != nil {
		fmt.Println(err)
		return 1
	}
	setlogger(loadopts.log)

	setts := llrb.Defaultsettings()
	if loadopts.pool >= 0 {
		setts["nodepool.capacity"] = int64(loadopts.pool)
	}
	tree := llrb.NewLLRB("load", setts)

	var mu sync.Mutex
	quit := make(chan struct{})
	go statlogger(time.Duration(loadopts.memstats)*time.Millisecond, tree, &mu, quit)

	keys := loadkeys(loadopts.n, loadopts.order, int64(loadopts.seed))
	now := time.Now()
	for _, key := range keys {
		mu.Lock()
		tree.Insert(key)
		mu.Unlock()
	}
	took := time.Since(now)
	close(quit)

	fmsg := "Took %v to insert %v keys in %v order\n"
	fmt.Printf(fmsg, took, humanize.Comma(tree.Count()), loadopts.order)

	now = time.Now()
	if err := tree.Check(); err != nil {
		fmt.Printf("validation failed: %v\n", err)
		return 2
	}
	fmt.Printf("Took %v to validate, height %v\n", time.Since(now), tree.Height())
	tree.Log()
	fmt.Println(lib.Prettystats(tree.Fullstats(), true))
	return 0
}

func loadkeys(n int, order string, seed int64) []int64 {
	keys := make([]int64, n)
	switch order {
	case "asc":
		for i := range keys {
			keys[i] = int64(i)
		}
	case "desc":
		for i := range keys {
			keys[i] = int64(n - i - 1)
		}
	case "random":
		rnd := rand.New(rand.NewSource(seed))
		for i, j := range rnd.Perm(n) {
			keys[i] = int64(j)
		}
	}
	return keys
}
