package ir

// Optimization passes over a flat triad list. Every pass returns a fresh list
// and leaves its input untouched.

import (
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("triadc.ir")

// OptimizationPass represents a single optimization transformation
type OptimizationPass interface {
	Name() string
	Apply(triads []Triad) ([]Triad, bool) // Returns true if changes were made
	Description() string
}

// OptimizationPipeline manages the sequence of optimization passes
type OptimizationPipeline struct {
	passes []OptimizationPass
}

// NewOptimizationPipeline creates a new optimization pipeline with default passes
func NewOptimizationPipeline() *OptimizationPipeline {
	pipeline := &OptimizationPipeline{}

	pipeline.AddPass(&CopyPropagation{})
	pipeline.AddPass(&CommonSubexpressionElimination{})
	pipeline.AddPass(&SameMarkerFilter{})

	return pipeline
}

// AddPass adds an optimization pass to the pipeline
func (p *OptimizationPipeline) AddPass(pass OptimizationPass) {
	p.passes = append(p.passes, pass)
}

// Compilation keeps every stage of a pipeline run. Reduced and Optimized
// stay nil when the pipeline has no pass producing them.
type Compilation struct {
	Raw       []Triad
	Reduced   []Triad
	Optimized []Triad
	Final     []Triad
}

// Run executes all optimization passes on the triads
func (p *OptimizationPipeline) Run(triads []Triad) *Compilation {
	log.Debugf("running %d optimization passes over %d triads", len(p.passes), len(triads))

	c := &Compilation{Raw: triads}
	current := triads
	for _, pass := range p.passes {
		next, changed := pass.Apply(current)
		if changed {
			log.Infof("%s: applied (%d -> %d triads)", pass.Name(), len(current), len(next))
		} else {
			log.Debugf("%s: no changes needed", pass.Name())
		}
		c.record(pass, next)
		current = next
	}
	c.Final = current
	return c
}

func (c *Compilation) record(pass OptimizationPass, triads []Triad) {
	switch pass.(type) {
	case *CopyPropagation:
		c.Reduced = triads
	case *CommonSubexpressionElimination:
		c.Optimized = triads
	}
}

// CopyPropagation substitutes known values into assignments
type CopyPropagation struct{}

func (cp *CopyPropagation) Name() string {
	return "Copy Propagation"
}

func (cp *CopyPropagation) Description() string {
	return "Replaces assigned names with their last known value"
}

func (cp *CopyPropagation) Apply(triads []Triad) ([]Triad, bool) {
	out := Reduce(triads)
	return out, !equalTriads(triads, out)
}

// Reduce propagates values forward through straight-line assignments.
// Assignments that an if or jmp triad targets keep their right operand, and
// comparisons are never rewritten. The result has the input's length.
func Reduce(triads []Triad) []Triad {
	protected := protectedAssignments(triads)
	values := make(map[Operand]Operand)

	out := make([]Triad, 0, len(triads))
	for i, t := range triads {
		switch t.Category() {
		case Assignment:
			if v, ok := values[t.Right]; ok && !protected[i+1] {
				t.Right = v
			}
			values[t.Left] = t.Right
		case Branch, Jump:
			t.Left = substitute(values, t.Left)
			t.Right = substitute(values, t.Right)
		}
		out = append(out, t)
	}
	return out
}

// protectedAssignments collects the 1-based indices of assignment triads
// that are the right operand of an if or jmp triad.
func protectedAssignments(triads []Triad) map[int]bool {
	protected := make(map[int]bool)
	for _, t := range triads {
		if c := t.Category(); c != Branch && c != Jump {
			continue
		}
		idx, ok := t.Right.RefIndex()
		if !ok || idx > len(triads) {
			continue
		}
		if triads[idx-1].Category() == Assignment {
			protected[idx] = true
		}
	}
	return protected
}

func substitute(values map[Operand]Operand, o Operand) Operand {
	if v, ok := values[o]; ok {
		return v
	}
	return o
}

// CommonSubexpressionElimination replaces repeated triads with SAME markers
type CommonSubexpressionElimination struct{}

func (cse *CommonSubexpressionElimination) Name() string {
	return "Common Subexpression Elimination"
}

func (cse *CommonSubexpressionElimination) Description() string {
	return "Marks triads identical to an earlier one and redirects references to the original"
}

func (cse *CommonSubexpressionElimination) Apply(triads []Triad) ([]Triad, bool) {
	out := Optimize(triads)
	return out, !equalTriads(triads, out)
}

// Optimize replaces every triad that repeats an earlier one with a SAME
// marker pointing at the first occurrence, then redirects back-references
// that land on a marker. The result has the input's length.
func Optimize(triads []Triad) []Triad {
	marked := make([]Triad, len(triads))
	for i, t := range triads {
		marked[i] = t
		for j := 0; j < i; j++ {
			if triads[j].Equivalent(t) {
				marked[i] = newMarker(t, j+1)
				break
			}
		}
	}

	out := make([]Triad, len(marked))
	for i, t := range marked {
		t.Left = redirect(marked, t.Left)
		t.Right = redirect(marked, t.Right)
		out[i] = t
	}
	return out
}

func redirect(triads []Triad, o Operand) Operand {
	idx, ok := o.RefIndex()
	if !ok || idx > len(triads) {
		return o
	}
	if target, ok := triads[idx-1].SameTarget(); ok {
		return Ref(target)
	}
	return o
}

// SameMarkerFilter drops SAME markers, optionally renumbering references
type SameMarkerFilter struct {
	Renumber bool
}

func (f *SameMarkerFilter) Name() string {
	return "SAME Marker Filter"
}

func (f *SameMarkerFilter) Description() string {
	if f.Renumber {
		return "Removes SAME markers and renumbers back-references"
	}
	return "Removes SAME markers from the reported program"
}

func (f *SameMarkerFilter) Apply(triads []Triad) ([]Triad, bool) {
	var out []Triad
	if f.Renumber {
		out = Compact(triads)
	} else {
		out = FilterSame(triads)
	}
	return out, !equalTriads(triads, out)
}

// FilterSame drops SAME markers. Back-references keep their original
// numbering and refer to the unfiltered list.
func FilterSame(triads []Triad) []Triad {
	out := make([]Triad, 0, len(triads))
	for _, t := range triads {
		if !t.IsSame() {
			out = append(out, t)
		}
	}
	return out
}

// Compact drops SAME markers and renumbers back-references so they index
// the filtered list. References to a marker follow it to its target.
func Compact(triads []Triad) []Triad {
	newIndex := make([]int, len(triads)+1)
	next := 1
	for i, t := range triads {
		if !t.IsSame() {
			newIndex[i+1] = next
			next++
		}
	}

	resolve := func(o Operand) Operand {
		idx, ok := o.RefIndex()
		if !ok || idx > len(triads) {
			return o
		}
		for seen := 0; seen < len(triads); seen++ {
			target, ok := triads[idx-1].SameTarget()
			if !ok || target > len(triads) {
				break
			}
			idx = target
		}
		if newIndex[idx] == 0 {
			return o
		}
		return Ref(newIndex[idx])
	}

	out := make([]Triad, 0, next-1)
	for _, t := range triads {
		if t.IsSame() {
			continue
		}
		t.Left = resolve(t.Left)
		t.Right = resolve(t.Right)
		out = append(out, t)
	}
	return out
}
