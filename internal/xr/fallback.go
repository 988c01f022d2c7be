package xr

// Fallback tries Primary first; if it returns an error, tries Secondary.
// Use when the primary device (e.g. a gamepad) may be unplugged but a secondary (e.g. the
// keyboard emulator) is always there.
type Fallback struct {
	Primary   Source
	Secondary Source
}

// Sample calls Primary.Sample; on any error, calls Secondary.Sample.
func (f *Fallback) Sample() (Sample, error) {
	s, err := f.Primary.Sample()
	if err != nil && f.Secondary != nil {
		return f.Secondary.Sample()
	}
	return s, err
}

// Latch samples its Source once per Refresh and hands the same sample to every reader until
// the next Refresh, so all systems in a frame see one consistent snapshot.
type Latch struct {
	Source Source

	sample Sample
	err    error
	fresh  bool
}

// NewLatch wraps src. Sample returns ErrUnavailable until the first Refresh.
func NewLatch(src Source) *Latch {
	return &Latch{Source: src}
}

// Refresh reads a new sample from the underlying source.
func (l *Latch) Refresh() {
	l.sample, l.err = l.Source.Sample()
	l.fresh = true
}

// Sample returns the sample taken by the last Refresh.
func (l *Latch) Sample() (Sample, error) {
	if !l.fresh {
		return Sample{}, ErrUnavailable
	}
	return l.sample, l.err
}
