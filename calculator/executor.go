package calculator

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Job 单口井的计算任务
type Job struct {
	ID     string
	WellID int
	Params Params
	PIP    float64
}

// Outcome 任务结果，Err 为该井自身的参数错误，不影响其他任务
type Outcome struct {
	Job    Job
	Result *Result
	Err    error
}

// Executor 多井并行计算，各井之间没有共享状态
type Executor struct {
	solver  *Solver
	workers int
}

func NewExecutor(solver *Solver, workers int) *Executor {
	if workers <= 0 {
		workers = 1
	}
	return &Executor{
		solver:  solver,
		workers: workers,
	}
}

// Run 按任务顺序返回结果；ctx 取消后尚未开始的任务不再计算
func (e *Executor) Run(ctx context.Context, jobs []Job) ([]Outcome, error) {
	start := time.Now()
	outcomes := make([]Outcome, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i := range jobs {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := e.solver.SolveParams(jobs[i].Params, jobs[i].PIP)
			outcomes[i] = Outcome{Job: jobs[i], Result: res, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"jobs":    len(jobs),
		"workers": e.workers,
		"cost":    time.Since(start),
	}).Info("批量计算完成")
	return outcomes, nil
}
