package llrb

import s "github.com/bnclabs/gosettings"
import sigar "github.com/cloudfoundry/gosigar"

const maxpoolcapacity = int64(1024)

// Defaultsettings for llrb instance.
//
// "nodepool.capacity" (int64, default: <computed>)
//		Number of deleted nodes kept aside for subsequent inserts.
//		Default is 1/1000th of free RAM counted in nodes, but not more
//		than 1024. Set this to ZERO to disable pooling.
//
// "depth.histogram" (bool, default: true)
//		Book-keep the depth at which new keys are inserted, available
//		as "h_insertdepth" in Stats().
//
func Defaultsettings() s.Settings {
	_, _, free := getsysmem()
	capacity := int64(free/1000) / nodesize
	if capacity > maxpoolcapacity {
		capacity = maxpoolcapacity
	}
	setts := s.Settings{
		"nodepool.capacity": capacity,
		"depth.histogram":   true,
	}
	return setts
}

func (llrb *LLRB) readsettings(setts s.Settings) {
	llrb.poolcapacity = setts.Int64("nodepool.capacity")
	llrb.depthhist = setts.Bool("depth.histogram")
	if llrb.poolcapacity < 0 {
		panicerr("nodepool.capacity cannot be negative: %v", llrb.poolcapacity)
	}
}

func getsysmem() (total, used, free uint64) {
	mem := sigar.Mem{}
	if err := mem.Get(); err != nil {
		warnf("unable to read system memory: %v\n", err)
		return 0, 0, 0
	}
	return mem.Total, mem.Used, mem.Free
}
