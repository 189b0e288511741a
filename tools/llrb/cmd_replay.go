package main

import "io"
import "os"
import "fmt"
import "flag"

import "github.com/bnclabs/golog"
import "github.com/bnclabs/llrbset/llrb"
import "golang.org/x/exp/mmap"

var replayopts struct {
	log   string
	stats bool
	args  []string
}

func parseReplayopts(args []string) error {
	f := flag.NewFlagSet("replay", flag.ExitOnError)

	f.StringVar(&replayopts.log, "log", "warn", "log level")
	f.BoolVar(&replayopts.stats, "stats", false,
		"log tree statistics after replay")
	f.Parse(args)

	replayopts.args = f.Args()
	if len(replayopts.args) != 1 {
		return fmt.Errorf("please provide a script file to replay")
	}
	return nil
}

func doReplay(args []string) int {
	if err := parseReplayopts(args); err != nil {
		fmt.Println(err)
		return 1
	}
	setlogger(replayopts.log)

	text, err := readscript(replayopts.args[0])
	if err != nil {
		fmt.Println(err)
		return 1
	}
	stmts, err := parsescript(text)
	if err != nil {
		fmt.Printf("%v: %v\n", replayopts.args[0], err)
		return 1
	}
	log.Infof("replaying %v statements from %q\n", len(stmts), replayopts.args[0])

	tree := llrb.NewLLRB("replay", llrb.Defaultsettings())
	if err := replay(tree, stmts, os.Stdout); err != nil {
		fmt.Println(err)
		return 2
	}
	if replayopts.stats {
		tree.Log()
	}
	return 0
}

func readscript(filename string) ([]byte, error) {
	r, err := mmap.Open(filename)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	text := make([]byte, r.Len())
	if _, err := r.ReadAt(text, 0); err != nil && err != io.EOF {
		return nil, err
	}
	return text, nil
}

// replay applies statements on tree in order, writing the outcome of
// every "contains" to w. Stops on the first failed "validate".
func replay(tree *llrb.LLRB, stmts []statement, w io.Writer) error {
	for i, stmt := range stmts {
		switch stmt.op {
		case "insert":
			for _, key := range stmt.keys {
				tree.Insert(key)
			}
		case "delete":
			for _, key := range stmt.keys {
				tree.Delete(key)
			}
		case "contains":
			for _, key := range stmt.keys {
				fmt.Fprintf(w, "contains %v %v\n", key, tree.Contains(key))
			}
		case "validate":
			if err := tree.Check(); err != nil {
				return fmt.Errorf("statement %v {%v}: %v", i+1, stmt, err)
			}
			fmt.Fprintf(w, "validate ok, %v keys\n", tree.Count())
		default:
			return fmt.Errorf("unknown statement %v", stmt)
		}
	}
	return nil
}
