package gostack

import s "github.com/bnclabs/gosettings"
import "github.com/cloudfoundry/gosigar"

// Maxcapacity maximum number of nodes a single pool can hold, the
// index type has to be able to address every node and index zero is
// reserved as sentinel. Can be used as "capacity" setting.
const Maxcapacity = int64(1<<32 - 2)

// nodebudget assumed per-node footprint, in bytes, while deriving the
// default "capacity" from free system memory.
const nodebudget = int64(32)

// Defaultsettings for gostack pool.
//
// "capacity" (int64, default: freeRAM/32, clamped to Maxcapacity)
//		Maximum number of nodes the pool can hold across all of its
//		stacks and its free list. Push and Reserve fail with
//		ErrorOutofMemory beyond this limit.
//
// "prealloc" (int64, default: 0)
//		Number of node slots to reserve when the pool is created,
//		pushes within the pre-allocated range never relocate storage.
func Defaultsettings() s.Settings {
	_, _, free := getsysmem()
	capacity := int64(free) / nodebudget
	if capacity > Maxcapacity {
		capacity = Maxcapacity
	}
	return s.Settings{
		"capacity": capacity,
		"prealloc": int64(0),
	}
}

func getsysmem() (total, used, free uint64) {
	mem := sigar.Mem{}
	mem.Get()
	return mem.Total, mem.Used, mem.Free
}
