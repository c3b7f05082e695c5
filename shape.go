// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lend

// Shape converts a caller-visible container T to and from the short-circuit
// algebra. For every t, Join(Split(t)) reproduces t.
//
// Adapters are zero-size values; all standard ones are provided:
//
//   - [OptionOf]: Option[C], residual [None]
//   - [EitherOf]: Either[E, C], residual E
//   - [FlowOf]: Flow[B, C], residual B
//   - [PollEitherOf]: Poll[Either[E, C]], residual E, empty when pending
//   - [PollOptionEitherOf]: Poll[Option[Either[E, C]]], residual Option[E], empty when pending
type Shape[T, C, R any] interface {
	// Split decomposes t.
	Split(t T) Short[C, R]

	// Join recomposes a container from s.
	Join(s Short[C, R]) T
}

// emptyPanic reports an empty short joined into a shape without an empty case.
//
//go:noinline
func emptyPanic(shape string) {
	panic("lend: shape has no empty case: " + shape)
}

// OptionShape adapts [Option].
type OptionShape[C any] struct{}

// OptionOf returns the [Shape] of Option[C].
func OptionOf[C any]() OptionShape[C] { return OptionShape[C]{} }

// Split implements [Shape].
func (OptionShape[C]) Split(o Option[C]) Short[C, None] {
	if o.ok {
		return Value[C, None](o.value)
	}
	return Residual[C](None{})
}

// Join implements [Shape].
func (OptionShape[C]) Join(s Short[C, None]) Option[C] {
	switch s.kind {
	case shortValue:
		return Some(s.value)
	case shortEmpty:
		emptyPanic("Option")
	}
	return Option[C]{}
}

// EitherShape adapts [Either], a fallible value.
type EitherShape[E, C any] struct{}

// EitherOf returns the [Shape] of Either[E, C].
func EitherOf[E, C any]() EitherShape[E, C] { return EitherShape[E, C]{} }

// Split implements [Shape].
func (EitherShape[E, C]) Split(e Either[E, C]) Short[C, E] {
	if e.isRight {
		return Value[C, E](e.right)
	}
	return Residual[C](e.left)
}

// Join implements [Shape].
func (EitherShape[E, C]) Join(s Short[C, E]) Either[E, C] {
	switch s.kind {
	case shortValue:
		return Right[E](s.value)
	case shortEmpty:
		emptyPanic("Either")
	}
	return Left[E, C](s.residual)
}

// FlowShape adapts [Flow], an explicit control value.
type FlowShape[B, C any] struct{}

// FlowOf returns the [Shape] of Flow[B, C].
func FlowOf[B, C any]() FlowShape[B, C] { return FlowShape[B, C]{} }

// Split implements [Shape].
func (FlowShape[B, C]) Split(f Flow[B, C]) Short[C, B] {
	if f.isBreak {
		return Residual[C](f.brk)
	}
	return Value[C, B](f.cont)
}

// Join implements [Shape].
func (FlowShape[B, C]) Join(s Short[C, B]) Flow[B, C] {
	switch s.kind {
	case shortValue:
		return Continue[B](s.value)
	case shortEmpty:
		emptyPanic("Flow")
	}
	return Break[B, C](s.residual)
}

// PollEitherShape adapts a readiness wrapper over a fallible value.
type PollEitherShape[E, C any] struct{}

// PollEitherOf returns the [Shape] of Poll[Either[E, C]].
func PollEitherOf[E, C any]() PollEitherShape[E, C] { return PollEitherShape[E, C]{} }

// Split implements [Shape].
func (PollEitherShape[E, C]) Split(p Poll[Either[E, C]]) Short[C, E] {
	switch {
	case !p.ready:
		return Empty[C, E]()
	case p.value.isRight:
		return Value[C, E](p.value.right)
	default:
		return Residual[C](p.value.left)
	}
}

// Join implements [Shape].
func (PollEitherShape[E, C]) Join(s Short[C, E]) Poll[Either[E, C]] {
	switch s.kind {
	case shortValue:
		return Ready(Right[E](s.value))
	case shortEmpty:
		return Pending[Either[E, C]]()
	default:
		return Ready(Left[E, C](s.residual))
	}
}

// PollOptionEitherShape adapts a readiness wrapper over an optional
// fallible value, the item type of a fallible stream.
type PollOptionEitherShape[E, C any] struct{}

// PollOptionEitherOf returns the [Shape] of Poll[Option[Either[E, C]]].
func PollOptionEitherOf[E, C any]() PollOptionEitherShape[E, C] {
	return PollOptionEitherShape[E, C]{}
}

// Split implements [Shape].
// An exhausted stream is the residual Nothing; a failure is Some(err).
func (PollOptionEitherShape[E, C]) Split(p Poll[Option[Either[E, C]]]) Short[C, Option[E]] {
	switch {
	case !p.ready:
		return Empty[C, Option[E]]()
	case !p.value.ok:
		return Residual[C](Nothing[E]())
	case p.value.value.isRight:
		return Value[C, Option[E]](p.value.value.right)
	default:
		return Residual[C](Some(p.value.value.left))
	}
}

// Join implements [Shape].
func (PollOptionEitherShape[E, C]) Join(s Short[C, Option[E]]) Poll[Option[Either[E, C]]] {
	switch s.kind {
	case shortValue:
		return Ready(Some(Right[E](s.value)))
	case shortEmpty:
		return Pending[Option[Either[E, C]]]()
	}
	if e, ok := s.residual.Get(); ok {
		return Ready(Some(Left[E, C](e)))
	}
	return Ready(Nothing[Either[E, C]]())
}

// MapShape maps the continue-with-value case of t, converting between two
// instantiations of the same shape family.
func MapShape[T, C, U, D, R any](from Shape[T, C, R], to Shape[U, D, R], t T, f func(C) D) U {
	return to.Join(MapShort(from.Split(t), f))
}
