package enumerate

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/tmendel/so6enum/so6"
)

// Run enumerates canonical matrices from T-count 1 to the configured
// target, recording checklist hits to the per-T-count data files, and
// returns the per-level statistics.
func Run(opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.StoredDepth > o.Target {
		o.StoredDepth = o.Target
	}
	// Every free level needs a retained generating set; the stored
	// prefix can seed at most StoredDepth of them plus the T₀ level.
	if o.Target > 2*o.StoredDepth+1 {
		return nil, fmt.Errorf("%w: target %d requires stored depth ≥ %d",
			ErrOptionViolation, o.Target, o.Target/2)
	}

	d := &driver{opts: o, res: &Result{}}
	if err := d.run(); err != nil {
		return nil, err
	}
	return d.res, nil
}

// driver holds the mutable state of one enumeration.
type driver struct {
	opts Options
	res  *Result

	prior   *matrixSet
	current *matrixSet

	// genSets[j] is the completed level j+1 pushed through T₀,
	// restricted to members whose final generator is not T₀; it rebuilds
	// level StoredDepth+j+2 without storing intermediate frontiers.
	genSets [][]*so6.Matrix
}

// numGeneratingSets mirrors the free-multiplication schedule: one set
// per level beyond StoredDepth+1, bounded by the stored prefix.
func numGeneratingSets(target, storedDepth int) int {
	n := target - 1 - storedDepth
	if n > storedDepth {
		n = storedDepth
	}
	if n < 0 {
		n = 0
	}
	return n
}

func (d *driver) run() error {
	o := d.opts

	d.prior = newMatrixSet()
	d.current = newMatrixSet()
	d.current.Insert(so6.Identity())

	ngs := numGeneratingSets(o.Target, o.StoredDepth)
	d.genSets = make([][]*so6.Matrix, ngs)

	o.Logger.Info("enumeration starting",
		"target", o.Target,
		"stored_depth", o.StoredDepth,
		"threads", o.Threads,
		"patterns", o.Checklist.Len(),
	)

	for k := 0; k < o.StoredDepth; k++ {
		if err := d.storedLevel(k); err != nil {
			return err
		}
	}

	if o.Target > o.StoredDepth {
		if err := d.freeLevels(); err != nil {
			return err
		}
	}
	return nil
}

// storedLevel advances the frontier from T-count k to k+1 with full
// deduplication against the prior and next sets.
func (d *driver) storedLevel(k int) error {
	o := d.opts
	if err := o.Ctx.Err(); err != nil {
		return err
	}
	o.Logger.Info("level starting", "tcount", k+1, "frontier", d.current.Len())

	w, err := openLevel(o.DataDir, k+1)
	if err != nil {
		return err
	}

	next := newMatrixSet()
	members := d.current.Members()

	var products, hits atomic.Uint64

	g, ctx := errgroup.WithContext(o.Ctx)
	work := make(chan *so6.Matrix)

	for t := 0; t < o.Threads; t++ {
		g.Go(func() error {
			for s := range work {
				for i := 0; i < so6.NumGenerators; i++ {
					n, err := s.LeftMulT(i)
					if err != nil {
						return err
					}
					products.Add(1)
					if d.prior.Contains(n.Key()) {
						continue
					}
					if !next.Insert(n) {
						continue
					}
					if err := d.record(n, w, &hits); err != nil {
						return err
					}
				}
			}
			return nil
		})
	}

	g.Go(func() error {
		defer close(work)
		for _, s := range members {
			select {
			case work <- s:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	d.prior = d.current
	d.current = next

	stats := LevelStats{
		TCount:       k + 1,
		Found:        uint64(next.Len()),
		Products:     products.Load(),
		Hits:         hits.Load(),
		PatternsLeft: o.Checklist.Len(),
		Cases:        caseCensus(next.Members()),
	}
	d.res.Levels = append(d.res.Levels, stats)
	o.Logger.Info("level finished",
		"tcount", stats.TCount,
		"found", stats.Found,
		"hits", stats.Hits,
		"patterns_left", stats.PatternsLeft,
	)

	if k < len(d.genSets) {
		gs, err := generatingSet(d.current.Members())
		if err != nil {
			return err
		}
		d.genSets[k] = gs
		o.Logger.Info("generating set stored", "index", k, "size", len(gs))
	}
	return nil
}

// caseCensus tallies a frontier's patterns by case number.
func caseCensus(members []*so6.Matrix) map[int]uint64 {
	census := make(map[int]uint64)
	for _, m := range members {
		p := m.ToPattern()
		census[p.Case()]++
	}
	return census
}

// generatingSet pushes a completed level through T₀, dropping members
// whose final generator already is T₀; their products would replay a
// frontier the stored levels covered.
func generatingSet(level []*so6.Matrix) ([]*so6.Matrix, error) {
	out := make([]*so6.Matrix, 0, len(level))
	for _, s := range level {
		if s.LastGenerator() == 0 {
			continue
		}
		g, err := s.LeftMulT(0)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}

// freeLevels runs the remaining T-counts without deduplication: the
// last stored frontier is multiplied by T₀ (first free level) and then
// by each retained generating set, recording pattern hits only.
func (d *driver) freeLevels() error {
	o := d.opts
	frontier := d.current.Members()
	o.Logger.Info("free multiplication starting",
		"from", o.StoredDepth+1,
		"to", o.Target,
		"frontier", len(frontier),
	)

	for k := o.StoredDepth; k < o.Target; k++ {
		if err := o.Ctx.Err(); err != nil {
			return err
		}
		w, err := openLevel(o.DataDir, k+1)
		if err != nil {
			return err
		}

		var products, hits atomic.Uint64

		g, ctx := errgroup.WithContext(o.Ctx)
		work := make(chan *so6.Matrix)

		first := k == o.StoredDepth
		var gen []*so6.Matrix
		if !first {
			gen = d.genSets[k-o.StoredDepth-1]
		}

		for t := 0; t < o.Threads; t++ {
			g.Go(func() error {
				for s := range work {
					if first {
						n, err := s.LeftMulT(0)
						if err != nil {
							return err
						}
						products.Add(1)
						if err := d.record(n, w, &hits); err != nil {
							return err
						}
						continue
					}
					for _, gm := range gen {
						n := gm.Mul(s)
						products.Add(1)
						if err := d.record(n, w, &hits); err != nil {
							return err
						}
					}
				}
				return nil
			})
		}

		g.Go(func() error {
			defer close(work)
			for _, s := range frontier {
				select {
				case work <- s:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})

		if err := g.Wait(); err != nil {
			w.Close()
			return err
		}
		if err := w.Close(); err != nil {
			return err
		}

		stats := LevelStats{
			TCount:       k + 1,
			Products:     products.Load(),
			Hits:         hits.Load(),
			PatternsLeft: o.Checklist.Len(),
		}
		d.res.Levels = append(d.res.Levels, stats)
		o.Logger.Info("level finished",
			"tcount", stats.TCount,
			"products", stats.Products,
			"hits", stats.Hits,
			"patterns_left", stats.PatternsLeft,
		)
	}
	return nil
}

// record consults the checklist with n's pattern; the winner of a hit
// writes n's circuit string and crosses off the pattern's orbit.
func (d *driver) record(n *so6.Matrix, w *levelWriter, hits *atomic.Uint64) error {
	c := d.opts.Checklist
	if c == nil {
		return nil
	}
	p := n.ToPattern()
	if !c.Hit(p) {
		return nil
	}
	if err := w.WriteLine(n.CircuitString()); err != nil {
		return err
	}
	c.RemoveOrbit(p)
	hits.Add(1)
	return nil
}

// Describe renders a one-line summary of a run, for logs and the CLI.
func (r *Result) Describe() string {
	totalHits := uint64(0)
	for _, l := range r.Levels {
		totalHits += l.Hits
	}
	left := 0
	if n := len(r.Levels); n > 0 {
		left = r.Levels[n-1].PatternsLeft
	}
	return fmt.Sprintf("%d levels, %d pattern hits, %d patterns remaining", len(r.Levels), totalHits, left)
}
