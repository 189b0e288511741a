package main

import "sync"
import "time"

import "github.com/bnclabs/golog"
import "github.com/bnclabs/llrbset/llrb"
import humanize "github.com/dustin/go-humanize"
import sigar "github.com/cloudfoundry/gosigar"

// statlogger periodically logs system memory along with tree counters,
// tree is sampled under mu. Returns when quit is closed.
func statlogger(
	tick time.Duration, tree *llrb.LLRB, mu *sync.Mutex, quit chan struct{}) {

	if tick <= 0 {
		return
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			logmemstat()
			mu.Lock()
			stats := tree.Stats()
			mu.Unlock()
			count := stats["n_count"].(int64)
			inserts, deletes := stats["n_inserts"].(int64), stats["n_deletes"].(int64)
			fmsg := "%v count:%v inserts:%v deletes:%v\n"
			log.Infof(fmsg, tree.ID(), humanize.Comma(count),
				humanize.Comma(inserts), humanize.Comma(deletes))
		case <-quit:
			return
		}
	}
}

func logmemstat() {
	mem := sigar.Mem{}
	if err := mem.Get(); err != nil {
		log.Warnf("unable to read system memory: %v\n", err)
		return
	}
	total, used := humanize.Bytes(mem.Total), humanize.Bytes(mem.Used)
	free := humanize.Bytes(mem.ActualFree)
	log.Infof("memory total:%v used:%v free:%v\n", total, used, free)
}
