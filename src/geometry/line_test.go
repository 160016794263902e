package geometry

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func line2(x1, y1, x2, y2 float32) Line2D {
	return Line2D{P1: NewPoint2D(x1, y1), P2: NewPoint2D(x2, y2)}
}

func TestLine2DProject(t *testing.T) {
	for idx, tc := range []struct {
		p        Point2D
		l        Line2D
		expected Point2D
		ok       bool
	}{
		{NewPoint2D(0, 0), line2(0, 0, 1, 0), NewPoint2D(0, 0), true},
		{NewPoint2D(0, 0), line2(0, 0, 0, 1), NewPoint2D(0, 0), true},
		{NewPoint2D(0, 0), line2(1, 0, 2, 0), Point2D{}, false},
		{NewPoint2D(0, 0), line2(1, 0, 0, 1), NewPoint2D(0.5, 0.5), true},
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			got, ok := tc.l.Project(tc.p)
			require.Equal(t, tc.ok, ok)
			if ok {
				require.True(t, got.ApproxEqual(tc.expected, testEps), "got %v", got)
			}
		})
	}
}

func TestLine3DProject(t *testing.T) {
	for idx, tc := range []struct {
		p        Point3D
		l        Line3D
		expected Point3D
		ok       bool
	}{
		{NewPoint3D(0, 0, 0), Line3D{NewPoint3D(0, 0, 0), NewPoint3D(1, 0, 0)}, NewPoint3D(0, 0, 0), true},
		{NewPoint3D(0, 0, 0), Line3D{NewPoint3D(0, 0, 0), NewPoint3D(0, 0, 1)}, NewPoint3D(0, 0, 0), true},
		{NewPoint3D(0, 0, 0), Line3D{NewPoint3D(1, 0, 0), NewPoint3D(2, 0, 0)}, Point3D{}, false},
		{NewPoint3D(0, 0, 0), Line3D{NewPoint3D(1, 0, 0), NewPoint3D(0, 1, 0)}, NewPoint3D(0.5, 0.5, 0), true},
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			got, ok := tc.l.Project(tc.p)
			require.Equal(t, tc.ok, ok)
			if ok {
				require.True(t, got.ApproxEqual(tc.expected, testEps), "got %v", got)
			}
		})
	}
}

func TestLine2DIntersection(t *testing.T) {
	for idx, tc := range []struct {
		l, o     Line2D
		expected Point2D
		ok       bool
	}{
		// Lines meet, but outside the segments.
		{line2(0, 0, 1, 0), line2(0, 1, 0, 2), Point2D{}, false},
		// Parallel.
		{line2(0, 0, 1, 1), line2(1, 1, 2, 2), Point2D{}, false},
		// Parallel, overlapping.
		{line2(0, 0, 1, 1), line2(-1, -1, 2, 2), Point2D{}, false},
		// Proper crossing.
		{line2(0, 0, 1, 1), line2(0, 1, 1, 0), NewPoint2D(0.5, 0.5), true},
		// Crossing point behind the first segment.
		{line2(0, 0, -1, -1), line2(0, 1, 1, 0), Point2D{}, false},
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			got, ok := tc.l.Intersection(tc.o)
			require.Equal(t, tc.ok, ok)
			if ok {
				require.True(t, got.ApproxEqual(tc.expected, testEps), "got %v", got)
			}
		})
	}
}

func TestLine2DMinDistance(t *testing.T) {
	for idx, tc := range []struct {
		p        Point2D
		l        Line2D
		expected float32
	}{
		{NewPoint2D(0, 0), line2(0, 0, 1, 0), 0},
		{NewPoint2D(0, 0), line2(0, 0, 0, 1), 0},
		{NewPoint2D(0, 0), line2(1, 0, 2, 0), 1},
		{NewPoint2D(0, 0), line2(0, 1, 1, 1), 1},
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			require.InDelta(t, tc.expected, tc.l.MinDistance(tc.p), testEps)
			// Distance is symmetric in the segment's endpoints.
			flipped := Line2D{P1: tc.l.P2, P2: tc.l.P1}
			require.InDelta(t, tc.expected, flipped.MinDistance(tc.p), testEps)
		})
	}
}

func TestLine3DMinDistance(t *testing.T) {
	for idx, tc := range []struct {
		p        Point3D
		l        Line3D
		expected float32
	}{
		{NewPoint3D(0, 0, 0), Line3D{NewPoint3D(0, 0, 0), NewPoint3D(1, 0, 0)}, 0},
		{NewPoint3D(0, 0, 0), Line3D{NewPoint3D(1, 0, 0), NewPoint3D(2, 0, 0)}, 1},
		{NewPoint3D(0, 0, 0), Line3D{NewPoint3D(0, 1, 0), NewPoint3D(1, 1, 0)}, 1},
		{NewPoint3D(0, 0, 0), Line3D{NewPoint3D(0, 0, -1), NewPoint3D(0, 0, 1)}, 0},
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			require.InDelta(t, tc.expected, tc.l.MinDistance(tc.p), testEps)
		})
	}
}
