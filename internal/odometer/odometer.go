package odometer

import "time"

// Direction fixes the three callbacks that give rec_step/rec_init/rec_align
// their meaning for a forward (next) or backward (prev) traversal.
type Direction struct {
	Forward  bool
	step     func(FieldIter, time.Time) (FieldIter, time.Time, bool)
	initStep func(FieldIter, time.Time) (FieldIter, time.Time, bool)
}

// Next is the forward direction: iterator_step = next, iterator_init_step
// = first, gap_step_key = :after-gap.
var Next = Direction{
	Forward:  true,
	step:     FieldIter.Next,
	initStep: FieldIter.First,
}

// Prev is the backward direction: iterator_step = prev, iterator_init_step
// = last, gap_step_key = :before-gap.
var Prev = Direction{
	Forward:  false,
	step:     FieldIter.Prev,
	initStep: FieldIter.Last,
}

func cloneWith(its []FieldIter, i int, fi FieldIter) []FieldIter {
	out := make([]FieldIter, len(its))
	copy(out, its)
	out[i] = fi
	return out
}

// recStep advances iterator i via dir.step. On success it recurses into
// recInit(i-1, ...) to reseed every field below i. On exhaustion it carries
// to the next field up, recStep(i+1, ...). Once i runs past the top of the
// board, there is no further point in this direction.
func recStep(dir Direction, i int, its []FieldIter, t time.Time) ([]FieldIter, time.Time, bool) {
	if i >= len(its) {
		return its, t, false
	}
	fi2, t2, ok := dir.step(its[i], t)
	if ok {
		return recInit(dir, i-1, cloneWith(its, i, fi2), t2)
	}
	return recStep(dir, i+1, its, t)
}

// recInit resets iterator i on the date-time produced by a higher field's
// move, then seeds it via dir.initStep. On success it recurses to i-1; on
// exhaustion (an empty clipped domain at this date-time) it falls back to
// recStep(i, ...), carrying the higher field forward/backward again.
func recInit(dir Direction, i int, its []FieldIter, t time.Time) ([]FieldIter, time.Time, bool) {
	if i < 0 {
		return its, t, true
	}
	fi2, t2, ok := dir.initStep(its[i].Reset(t), t)
	if ok {
		return recInit(dir, i-1, cloneWith(its, i, fi2), t2)
	}
	return recStep(dir, i, its, t)
}

// recAlign is used when the starting state is not aligned: descending from
// the top of the board, every field reporting Aligned()==false is advanced
// once via recStep (which both moves it and reseeds everything below).
func recAlign(dir Direction, its []FieldIter, t time.Time) ([]FieldIter, time.Time, bool) {
	return recAlignFrom(dir, len(its)-1, its, t)
}

func recAlignFrom(dir Direction, i int, its []FieldIter, t time.Time) ([]FieldIter, time.Time, bool) {
	if i < 0 {
		return its, t, true
	}
	if !its[i].Aligned() {
		its2, t2, ok := recStep(dir, i, its, t)
		if !ok {
			return its, t, false
		}
		return recAlignFrom(dir, i-1, its2, t2)
	}
	return recAlignFrom(dir, i-1, its, t)
}

func resetAll(its []FieldIter, t time.Time) []FieldIter {
	out := make([]FieldIter, len(its))
	for i, fi := range its {
		out[i] = fi.Reset(t)
	}
	return out
}

func allAligned(its []FieldIter) bool {
	for _, fi := range its {
		if !fi.Aligned() {
			return false
		}
	}
	return true
}

// StepInput is the odometer's state at the start of one next()/prev() call.
type StepInput struct {
	Board   []FieldIter
	Loc     *time.Location
	Mask    func(time.Time) bool
	Civil   time.Time // current local date-time, in odometer.CivilOf form
	Current time.Time // the zoned instant the caller started from
	Aligned bool       // false only when the caller's cronit was unaligned_cause=:init
}

// StepOutput is the result of one next()/prev() call.
type StepOutput struct {
	Board          []FieldIter
	Civil          time.Time
	Zoned          time.Time
	Aligned        bool
	UnalignedGap   bool
	Ok             bool // false means the expression has no further point
}

// Step drives one call to next (dir=Next) or prev (dir=Prev): repeated
// carry-propagating advances of the board, resolved against DST gaps and
// overlaps and filtered by the residual mask, until a satisfying zoned
// instant is produced or the board is exhausted.
func Step(dir Direction, in StepInput) StepOutput {
	its := in.Board
	civil := in.Civil
	aligned := in.Aligned

	for {
		var ok bool
		if aligned {
			its, civil, ok = recStep(dir, 0, its, civil)
		} else {
			its, civil, ok = recAlign(dir, its, civil)
		}
		if !ok {
			return StepOutput{Ok: false}
		}

		zoned, tr := ZonedFromCivil(civil, in.Loc)
		if tr != nil && tr.Gap {
			edge := tr.At
			if !dir.Forward {
				edge = tr.At.Add(-1 * time.Second)
			}
			if in.Current.Equal(tr.At) {
				// Already sitting at the gap's collapsed edge (its exit):
				// force genuine progress by re-anchoring the odometer at
				// the gap boundary on this direction's side. Forward runs
				// another full pass from the exit; backward reseeds every
				// field on the last second before the gap and realigns
				// from there.
				civil = CivilOf(edge)
				if dir.Forward {
					aligned = true
				} else {
					its = resetAll(its, civil)
					aligned = false
				}
				continue
			}
			newCivil := CivilOf(tr.At)
			its = resetAll(its, newCivil)
			zoned2, _ := ZonedFromCivil(newCivil, in.Loc)
			al := allAligned(its) && in.Mask(zoned2)
			return StepOutput{
				Board: its, Civil: newCivil, Zoned: zoned2,
				Aligned: al, UnalignedGap: !al, Ok: true,
			}
		}

		if in.Mask(zoned) {
			return StepOutput{Board: its, Civil: civil, Zoned: zoned, Aligned: true, Ok: true}
		}
		aligned = true
	}
}
