package model

// Memory holds a RAM and swap reading in KiB, as reported by /proc/meminfo.
type Memory struct {
	RAMKiB  float64
	SwapKiB float64
}

// TotalMemory is the startup reading of total memory with its display
// strings computed once.
type TotalMemory struct {
	Memory
	RAMUnit  string
	SwapUnit string
}

// Used returns total minus free for RAM and swap. A free value above the
// total yields 0 for that field and ok=false.
func (t TotalMemory) Used(free Memory) (used Memory, ok bool) {
	ok = true
	used.RAMKiB = t.RAMKiB - free.RAMKiB
	if used.RAMKiB < 0 {
		used.RAMKiB, ok = 0, false
	}
	used.SwapKiB = t.SwapKiB - free.SwapKiB
	if used.SwapKiB < 0 {
		used.SwapKiB, ok = 0, false
	}
	return used, ok
}

// CPUTimes is the cumulative user+system ticks per logical CPU, indexed by core.
type CPUTimes []uint64

// Temperatures in degrees Celsius. GPU is nil unless GPU monitoring is on.
type Temperatures struct {
	CPU float64
	GPU *float64
}

// Snapshot is one sampling pass over every source.
type Snapshot struct {
	Temps    Temperatures
	CPUTimes CPUTimes
	MemFree  Memory
	Uptime   float64 // seconds since boot
}

// Frame is everything the renderer needs for one tick.
type Frame struct {
	Snapshot Snapshot
	Previous CPUTimes
	Loads    []int // percent per core, unclamped
	Total    TotalMemory
}
