package main

import "os"
import "fmt"
import "strings"

import "github.com/bnclabs/golog"
import "github.com/bnclabs/llrbset/llrb"

var commands = map[string]func(args []string) int{
	"load":   doLoad,
	"check":  doCheck,
	"replay": doReplay,
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	fn, ok := commands[os.Args[1]]
	if !ok {
		fmt.Printf("unknown command %q\n", os.Args[1])
		usage()
		os.Exit(1)
	}
	os.Exit(fn(os.Args[2:]))
}

func usage() {
	fmt.Printf("usage: %v <command> [options]\n", os.Args[0])
	fmt.Println("commands:")
	fmt.Println("  load   - insert keys in a given order and report stats")
	fmt.Println("  check  - random operations cross-checked with a reference set")
	fmt.Println("  replay - apply operations from a script file")
}

func setlogger(level string) {
	setts := map[string]interface{}{
		"log.level":      strings.ToLower(level),
		"log.flags":      "",
		"log.colorfatal": "red",
		"log.colorerror": "hired",
		"log.colorwarn":  "yellow",
	}
	log.SetLogger(nil, setts)
	llrb.LogComponents("all")
}
