package sdc

import (
	"math"

	"github.com/flywave/go3d/vec3"
)

// Sharpness bounds. A sharpness of zero is smooth; values at or above
// SHARPNESS_INFINITE never decay across subdivision levels.
const (
	SHARPNESS_SMOOTH   float64 = 0
	SHARPNESS_INFINITE float64 = 10
)

func IsSharp(sharpness float64) bool {
	return sharpness > SHARPNESS_SMOOTH
}

func IsSemiSharp(sharpness float64) bool {
	return sharpness > SHARPNESS_SMOOTH && sharpness < SHARPNESS_INFINITE
}

func IsInfinitelySharp(sharpness float64) bool {
	return sharpness >= SHARPNESS_INFINITE
}

// Rule 按入射锐化特征对顶点分类
type Rule uint8

const (
	RULE_UNKNOWN Rule = 0
	RULE_SMOOTH  Rule = 1
	RULE_DART    Rule = 2
	RULE_CREASE  Rule = 3
	RULE_CORNER  Rule = 4
)

func (r Rule) String() string {
	switch r {
	case RULE_SMOOTH:
		return "smooth"
	case RULE_DART:
		return "dart"
	case RULE_CREASE:
		return "crease"
	case RULE_CORNER:
		return "corner"
	}
	return "unknown"
}

// Crease applies a creasing method to edge and vertex sharpness values.
// It reads the options it is built with and never mutates them; a Crease
// is as cheap to copy as the options themselves.
type Crease struct {
	opts Options
}

func NewCrease(opts Options) Crease {
	return Crease{opts: opts}
}

func (c Crease) IsUniform() bool {
	return c.opts.GetCreasingMethod() == CREASE_UNIFORM
}

// 锐度逐级递减，无限锐度保持无限
func decrementSharpness(sharpness float64) float64 {
	if IsInfinitelySharp(sharpness) {
		return SHARPNESS_INFINITE
	}
	if sharpness > 1 {
		return sharpness - 1
	}
	return SHARPNESS_SMOOTH
}

// SubdivideUniformSharpness 均匀衰减一个锐度值
func (c Crease) SubdivideUniformSharpness(sharpness float64) float64 {
	return decrementSharpness(sharpness)
}

// SubdivideVertexSharpness 顶点锐度总是均匀衰减
func (c Crease) SubdivideVertexSharpness(sharpness float64) float64 {
	return decrementSharpness(sharpness)
}

// SubdivideEdgeSharpnessAtVertex computes the sharpness of the child of an
// edge near one of its end vertices. incidentSharpness holds the sharpness
// of all edges incident to that vertex, the parent edge included. The
// uniform method ignores the neighborhood; the Chaikin method blends the
// parent edge with the average sharpness of the other sharp edges at the
// vertex.
func (c Crease) SubdivideEdgeSharpnessAtVertex(edgeSharpness float64, incidentSharpness []float64) float64 {
	if c.IsUniform() || len(incidentSharpness) < 2 {
		return decrementSharpness(edgeSharpness)
	}
	if IsInfinitelySharp(edgeSharpness) {
		return SHARPNESS_INFINITE
	}
	if !IsSharp(edgeSharpness) {
		return SHARPNESS_SMOOTH
	}

	sharpSum := 0.0
	sharpCount := 0
	for _, s := range incidentSharpness {
		if IsSharp(s) {
			sharpSum += s
			sharpCount++
		}
	}
	// the parent edge is part of the count
	if sharpCount > 1 {
		avg := (sharpSum - edgeSharpness) / float64(sharpCount-1)
		edgeSharpness = 0.75*edgeSharpness + 0.25*avg - 1
	} else {
		edgeSharpness -= 1
	}
	if edgeSharpness < SHARPNESS_SMOOTH {
		return SHARPNESS_SMOOTH
	}
	return edgeSharpness
}

// SharpenBoundaryEdge 按边界插值选项锐化边界边
func (c Crease) SharpenBoundaryEdge(edgeSharpness float64) float64 {
	if c.opts.GetVtxBoundaryInterpolation() == VTX_BOUNDARY_NONE {
		return edgeSharpness
	}
	return SHARPNESS_INFINITE
}

// SharpenBoundaryVertex 仅在 edge_and_corner 模式下把边界角顶点锐化为真角
func (c Crease) SharpenBoundaryVertex(vertexSharpness float64) float64 {
	if c.opts.GetVtxBoundaryInterpolation() == VTX_BOUNDARY_EDGE_AND_CORNER {
		return SHARPNESS_INFINITE
	}
	return vertexSharpness
}

// DetermineVertexVertexRule classifies a vertex from its own sharpness and
// the number of sharp edges incident to it.
func (c Crease) DetermineVertexVertexRule(vertexSharpness float64, sharpEdgeCount int) Rule {
	if IsSharp(vertexSharpness) {
		return RULE_CORNER
	}
	switch sharpEdgeCount {
	case 0:
		return RULE_SMOOTH
	case 1:
		return RULE_DART
	case 2:
		return RULE_CREASE
	}
	return RULE_CORNER
}

// ComputeFractionalWeightAtVertex returns the fractional blend between the
// parent and child rules of a vertex for semi-sharp features that decay to
// smooth at this level. incidentSharpness and childSharpness hold the
// sharpness of the incident edges before and after subdivision, index for
// index. The result is clamped to [0, 1].
func (c Crease) ComputeFractionalWeightAtVertex(vertexSharpness, childVertexSharpness float64, incidentSharpness, childSharpness []float64) float64 {
	transitionCount := 0
	transitionSum := 0.0

	if IsSharp(vertexSharpness) && !IsSharp(childVertexSharpness) {
		transitionCount = 1
		transitionSum = vertexSharpness
	}
	for i, s := range incidentSharpness {
		if IsSharp(s) && !IsSharp(childSharpness[i]) {
			transitionCount++
			transitionSum += s
		}
	}
	if transitionCount == 0 {
		return 0
	}
	weight := transitionSum / float64(transitionCount)
	if weight > 1 {
		return 1
	}
	return weight
}

// SharpnessFromNormals derives an initial edge sharpness from the face
// normals on either side of the edge. Dihedral angles at or below
// creaseAngleDeg stay smooth; beyond it the sharpness rises linearly from
// one, reaching SHARPNESS_INFINITE at a fully folded edge (180 degrees).
func SharpnessFromNormals(n0, n1 vec3.T, creaseAngleDeg float64) float64 {
	a := n0
	b := n1
	a.Normalize()
	b.Normalize()

	dot := float64(vec3.Dot(&a, &b))
	if dot > 1 {
		dot = 1
	} else if dot < -1 {
		dot = -1
	}
	angle := math.Acos(dot) * 180 / math.Pi

	if creaseAngleDeg < 0 {
		creaseAngleDeg = 0
	}
	if creaseAngleDeg >= 180 || angle <= creaseAngleDeg {
		return SHARPNESS_SMOOTH
	}

	t := (angle - creaseAngleDeg) / (180 - creaseAngleDeg)
	return 1 + t*(SHARPNESS_INFINITE-1)
}
