package form

import "context"

// Pending is the result of SubmitAsync.
type Pending struct {
	done chan struct{}
	snap Snapshot
	err  error
}

// SubmitAsync runs Submit on a new goroutine and returns immediately.
func (f *Form) SubmitAsync(ctx context.Context) *Pending {
	p := &Pending{done: make(chan struct{})}
	go func() {
		defer close(p.done)
		p.err = f.Submit(ctx)
		p.snap = f.Snapshot()
	}()
	return p
}

// Done is closed once the submission has completed.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// IsComplete reports whether the submission has completed without blocking.
func (p *Pending) IsComplete() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the submission completes or ctx is done.
// It returns the form state right after completion and the error of Submit.
// The submission itself keeps running when ctx is cancelled.
func (p *Pending) Wait(ctx context.Context) (Snapshot, error) {
	select {
	case <-p.done:
		return p.snap, p.err
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	}
}

// Result blocks until the submission completes and returns the same values as
// Wait.
func (p *Pending) Result() (Snapshot, error) {
	<-p.done
	return p.snap, p.err
}
