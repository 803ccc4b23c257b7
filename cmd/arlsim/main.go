// Command arlsim checks the Fredholm-based MEWMA control limit by brute
// force.  It calibrates h4 for the requested in-control ARL, then runs
// Monte Carlo in-control processes through the chart and reports the
// simulated average run length next to the target.
package main

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/spf13/pflag"
	"gonum.org/v1/gonum/mat"

	"github.com/nklsxn/mqr/pkg/rng"
	"github.com/nklsxn/mqr/pkg/spc"
)

var wg sync.WaitGroup

type results struct {
	mu   sync.Mutex
	runs int
	sum  float64
}

func (r *results) record(runLength int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs++
	r.sum += float64(runLength)
}

func (r *results) arl() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sum / float64(r.runs)
}

func main() {
	p := pflag.IntP("dim", "p", 2, "process dimension")
	lambda := pflag.Float64P("lambda", "l", 0.1, "EWMA smoothing parameter")
	arl0 := pflag.Float64("arl0", 200, "target in-control average run length")
	initH4 := pflag.Float64("init-h4", 10, "initial guess for the control limit search")
	loops := pflag.Int("loops", 10000, "number of simulated processes")
	workers := pflag.Int("workers", 4, "concurrent simulation workers")
	maxRun := pflag.Int("max-run", 1000000, "run length at which a simulation is abandoned")
	pflag.Parse()

	h4, err := spc.SolveH4(*arl0, *p, *lambda, *initH4)
	if err != nil {
		log.Fatalf("failed to calibrate control limit: %v", err)
	}
	log.Printf("calibrated h4=%f for ARL0=%f p=%d lambda=%f\n", h4, *arl0, *p, *lambda)

	mu := make([]float64, *p)
	cov := identity(*p)
	params, err := spc.NewMewmaParams(mu, cov, *lambda, h4)
	if err != nil {
		log.Fatalf("unexpected error constructing chart params: %v", err)
	}

	res := &results{}
	start := time.Now()
	perWorker := *loops / *workers
	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go simulate(res, params, mu, cov, perWorker, *maxRun)
	}
	wg.Wait()

	fmt.Printf("Simulated ARL: %f (target %f) over %d runs\n", res.arl(), *arl0, res.runs)
	fmt.Printf("Time Elapsed: %v\n", time.Since(start))
}

func simulate(res *results, params *spc.MewmaParams, mu []float64, cov *mat.SymDense, loops, maxRun int) {
	defer wg.Done()
	gen, err := rng.NewMultinormalRNG(mu, cov)
	if err != nil {
		log.Fatalf("unexpected error constructing generator: %v", err)
	}

	for i := 0; i < loops; i++ {
		stepper := params.Stepper()
		ucl, err := params.UCL([]int{len(mu)})
		if err != nil {
			log.Fatalf("unexpected error computing control limit: %v", err)
		}
		for j := 1; j <= maxRun; j++ {
			t2, err := stepper.Step(gen.RandVector())
			if err != nil {
				log.Fatalf("unexpected error stepping chart: %v", err)
			}
			if t2 > ucl[0] || j == maxRun {
				res.record(j)
				break
			}
		}
	}
}

func identity(p int) *mat.SymDense {
	m := mat.NewSymDense(p, nil)
	for i := 0; i < p; i++ {
		m.SetSym(i, i, 1)
	}
	return m
}
