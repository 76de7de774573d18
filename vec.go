package mathutils

import "golang.org/x/exp/constraints"

type Vec2[T constraints.Float] struct{ X, Y T }

// Vector2D is the float64 vector the rest of the UI passes around.
type Vector2D = Vec2[float64]

// Div returns the component-wise quotient a/b. Zero components in b give
// Inf or NaN.
func (a Vec2[T]) Div(b Vec2[T]) Vec2[T] { return Vec2[T]{a.X / b.X, a.Y / b.Y} }

func (a Vec2[T]) Lerp(b Vec2[T], t T) Vec2[T] {
	return Vec2[T]{X: Lerp(a.X, b.X, t), Y: Lerp(a.Y, b.Y, t)}
}

func DivideVec2ds(a, b Vector2D) Vector2D {
	return a.Div(b)
}
