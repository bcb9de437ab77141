package opoly1d

import (
	"runtime"
	"sync"

	"github.com/notargets/gopoly/types"
	"github.com/notargets/gopoly/utils"
)

// EvaluateParallel is Evaluate with the points split into nThreads contiguous
// partitions, each evaluated in its own goroutine. nThreads < 1 uses
// runtime.NumCPU(). The result is identical to Evaluate.
func EvaluateParallel(x []float64, degrees []int, D int, ab types.RecurrenceTable,
	nThreads int) (et types.EvaluationTable, err error) {
	var (
		ep *evalPlan
		wg sync.WaitGroup
	)
	if ep, err = newEvalPlan(x, degrees, D, ab); err != nil {
		return
	}
	if nThreads < 1 {
		nThreads = runtime.NumCPU()
	}
	nThreads = min(nThreads, len(x))
	et = ep.newTable(x, degrees)
	pm := utils.NewPartitionMap(nThreads, len(x))
	errs := make([]error, pm.ParallelDegree)
	for np := 0; np < pm.ParallelDegree; np++ {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			iMin, iMax := pm.GetBucketRange(np)
			errs[np] = ep.evalRows(et, iMin, iMax)
		}(np)
	}
	wg.Wait()
	for _, e := range errs {
		if e != nil {
			return types.EvaluationTable{}, e
		}
	}
	return
}
