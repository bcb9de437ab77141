package utils

import (
	"runtime"

	"go.uber.org/zap"
)

// MemUsageFields reports the heap statistics of the process in MiB.
func MemUsageFields() []zap.Field {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	bToMb := func(b uint64) uint64 {
		return b / 1024 / 1024
	}
	return []zap.Field{
		zap.Uint64("allocMiB", bToMb(m.Alloc)),
		zap.Uint64("totalAllocMiB", bToMb(m.TotalAlloc)),
		zap.Uint64("sysMiB", bToMb(m.Sys)),
		zap.Uint32("numGC", m.NumGC),
	}
}
