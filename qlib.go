// Planar geometry primitives and numerical utilities for generative drawing.
//
// This package covers points, segments, polylines, rectangles, circles and
// triangles, the intersections between their outlines, corner smoothing of
// polylines, the eigen decomposition of 2×2 covariance matrices and Steiner
// chains of mutually tangent circles. The implementation lives in the geom
// package; this package re-exports the common entry points.
package qlib

import "github.com/Quasimondo/QuasimondoLibsJS-sub001/geom"

type Point = geom.Point
type Shape = geom.Shape
type Line = geom.Line
type LineSegment = geom.LineSegment
type LinearPath = geom.LinearPath
type MixedPath = geom.MixedPath
type Rectangle = geom.Rectangle
type Circle = geom.Circle
type Triangle = geom.Triangle
type CovarianceMatrix2 = geom.CovarianceMatrix2
type SteinerCircles = geom.SteinerCircles

// Intersect returns the points where the outlines of a and b meet. Finding
// none is not an error; an unsupported pair of shapes is.
func Intersect(a, b Shape) ([]Point, error) {
	return geom.Intersect(a, b)
}

// Smooth replaces the corners of the polyline through points with quadratic
// curves, cutting each edge back by factor times its length. It returns nil
// for fewer than two distinct points.
func Smooth(points []Point, factor float64, closed bool) *MixedPath {
	return geom.NewLinearPath(points...).GetSmoothPath(factor, geom.SmoothRelative, closed)
}

// PrincipalAxes returns the eigenvalues and unit eigenvectors of the
// covariance of points around their mean.
func PrincipalAxes(points []Point) (geom.Eigen, error) {
	m, _ := geom.CovarianceOfPoints(points)
	return m.Eigen()
}

// Steiner fills parent with a chain of count mutually tangent circles.
func Steiner(parent Circle, count int, ratio, rotation, startAngle float64) (*SteinerCircles, error) {
	return geom.NewSteinerCircles(parent, count, ratio, rotation, startAngle)
}
