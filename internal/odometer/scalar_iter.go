package odometer

// ScalarIter is the sum type of the two scalar iterator variants: a
// RangeIter or an EnumIter. It captures both with a small, non-virtual
// method set rather than an interface, since there are exactly two
// variants and no caller ever needs to add a third.
type ScalarIter struct {
	isRange bool
	rng     RangeIter
	enum    EnumIter
}

// NewRangeScalarIter wraps a RangeIter as a ScalarIter.
func NewRangeScalarIter(r RangeIter) ScalarIter { return ScalarIter{isRange: true, rng: r} }

// NewEnumScalarIter wraps an EnumIter as a ScalarIter.
func NewEnumScalarIter(e EnumIter) ScalarIter { return ScalarIter{isRange: false, enum: e} }

func (s ScalarIter) Init(v int) ScalarIter {
	if s.isRange {
		return ScalarIter{isRange: true, rng: s.rng.Init(v)}
	}
	return ScalarIter{isRange: false, enum: s.enum.Init(v)}
}

func (s ScalarIter) First() (ScalarIter, bool) {
	if s.isRange {
		r, ok := s.rng.First()
		return ScalarIter{isRange: true, rng: r}, ok
	}
	e, ok := s.enum.First()
	return ScalarIter{isRange: false, enum: e}, ok
}

func (s ScalarIter) Last() (ScalarIter, bool) {
	if s.isRange {
		r, ok := s.rng.Last()
		return ScalarIter{isRange: true, rng: r}, ok
	}
	e, ok := s.enum.Last()
	return ScalarIter{isRange: false, enum: e}, ok
}

func (s ScalarIter) Next() (ScalarIter, bool) {
	if s.isRange {
		r, ok := s.rng.Next()
		return ScalarIter{isRange: true, rng: r}, ok
	}
	e, ok := s.enum.Next()
	return ScalarIter{isRange: false, enum: e}, ok
}

func (s ScalarIter) Prev() (ScalarIter, bool) {
	if s.isRange {
		r, ok := s.rng.Prev()
		return ScalarIter{isRange: true, rng: r}, ok
	}
	e, ok := s.enum.Prev()
	return ScalarIter{isRange: false, enum: e}, ok
}

func (s ScalarIter) Current() int {
	if s.isRange {
		return s.rng.Current()
	}
	return s.enum.Current()
}

func (s ScalarIter) Aligned() bool {
	if s.isRange {
		return s.rng.Aligned()
	}
	return s.enum.Aligned()
}

// Contains reports whether v is a value the iterator's domain admits,
// without changing state. Used by the mask predicate (board.go) to test
// membership at an arbitrary instant.
func (s ScalarIter) Contains(v int) bool {
	if s.isRange {
		return s.rng.Init(v).Aligned()
	}
	return s.enum.Init(v).Aligned()
}
