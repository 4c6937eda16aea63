package sequence

import "github.com/coreman2200/funtimes-ledtunnel/internal/frame"

// Sequence is one visual algorithm. Exactly one sequence is active at a
// time; the scheduler calls Update once per tick against the shared buffer.
type Sequence interface {
	Name() string
	// Init resets private state so the next Update starts from a clean
	// visual state. Called when the sequence becomes active.
	Init()
	// WrapUp is called once, wrapupTicks before rotation, so the sequence
	// can finish gracefully (e.g. stop launching pulses). It must not
	// touch the frame buffer.
	WrapUp()
	// Update advances internal timers by one tick and writes the frame.
	Update(buf *frame.Buffer)
}

// Registry is the fixed rotation order of sequences.
type Registry struct {
	seqs []Sequence
}

func NewRegistry(seqs ...Sequence) *Registry {
	r := &Registry{}
	for _, s := range seqs {
		r.Register(s)
	}
	return r
}

func (r *Registry) Register(s Sequence) {
	if s == nil {
		return
	}
	r.seqs = append(r.seqs, s)
}

func (r *Registry) Len() int          { return len(r.seqs) }
func (r *Registry) At(i int) Sequence { return r.seqs[i] }

func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.seqs))
	for _, s := range r.seqs {
		out = append(out, s.Name())
	}
	return out
}
