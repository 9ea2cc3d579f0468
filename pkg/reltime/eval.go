package reltime

import (
	"strings"
	"time"
	"unicode"
)

// ResolveNow resolves text against the system clock. The clock is sampled
// exactly once per call, so every "now" inside one expression means the same
// instant.
func ResolveNow(text string) (time.Time, error) {
	return Resolve(text, time.Now())
}

// Resolve evaluates a relative time expression against the given anchor.
// Exactly one "now" term must occur, floors may not appear before it, and
// shifts with a zero value are no-ops.
func Resolve(text string, now time.Time) (time.Time, error) {
	trimmed := strings.TrimLeft(strings.TrimSpace(text), "+")
	if strings.TrimLeftFunc(trimmed, unicode.IsSpace) == "now" {
		// Fast path for the by far most common input.
		return now, nil
	}

	p := NewParser(text)

	// Terms before the anchor still apply to it: "-1d+now" means now-1d.
	var lead []Expr
	for {
		e, ok, err := p.Next()
		if err != nil {
			return time.Time{}, err
		}
		if !ok {
			return time.Time{}, ErrMissingNow
		}
		if e.Kind == ExprNow {
			break
		}
		if e.Kind == ExprFloor {
			return time.Time{}, ErrFloorBeforeNow
		}
		lead = append(lead, e)
	}

	t := now
	apply := func(e Expr) error {
		var err error
		switch e.Kind {
		case ExprNow:
			return ErrMultipleNow
		case ExprAdd:
			if e.Value == 0 {
				return nil
			}
			t, err = addUnit(t, e.Unit, e.Value)
		case ExprSub:
			if e.Value == 0 {
				return nil
			}
			t, err = subUnit(t, e.Unit, e.Value)
		case ExprFloor:
			t, err = floorUnit(t, e.Unit)
		}
		return err
	}

	for _, e := range lead {
		if err := apply(e); err != nil {
			return time.Time{}, err
		}
	}
	for {
		e, ok, err := p.Next()
		if err != nil {
			return time.Time{}, err
		}
		if !ok {
			return t, nil
		}
		if err := apply(e); err != nil {
			return time.Time{}, err
		}
	}
}

// ResolveRange resolves a from/to expression pair against a shared anchor and
// rejects ranges that come out inverted.
func ResolveRange(from, to string, now time.Time) (time.Time, time.Time, error) {
	start, err := Resolve(from, now)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := Resolve(to, now)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, ErrInvertedRange
	}
	return start, end, nil
}
