package cubeman

import (
	"github.com/Faultbox/cubeman/pkg/math"
)

// KeyframeCount is the number of keyframes in one walk cycle.
const KeyframeCount = 4

// Angles holds the four joint angles of one side of the body, in radians.
type Angles struct {
	UpperArm float32
	LowerArm float32
	UpperLeg float32
	LowerLeg float32
}

// AnglesFromDegrees builds Angles from degree values.
func AnglesFromDegrees(upperArm, lowerArm, upperLeg, lowerLeg float32) Angles {
	return Angles{
		UpperArm: math.Radians(upperArm),
		LowerArm: math.Radians(lowerArm),
		UpperLeg: math.Radians(upperLeg),
		LowerLeg: math.Radians(lowerLeg),
	}
}

// Lerp interpolates every joint between a and b.
func (a Angles) Lerp(b Angles, t float32) Angles {
	return Angles{
		UpperArm: math.Lerp(a.UpperArm, b.UpperArm, t),
		LowerArm: math.Lerp(a.LowerArm, b.LowerArm, t),
		UpperLeg: math.Lerp(a.UpperLeg, b.UpperLeg, t),
		LowerLeg: math.Lerp(a.LowerLeg, b.LowerLeg, t),
	}
}

// Get returns the angle of joint j. JointNone yields 0.
func (a Angles) Get(j Joint) float32 {
	switch j {
	case JointUpperArm:
		return a.UpperArm
	case JointLowerArm:
		return a.LowerArm
	case JointUpperLeg:
		return a.UpperLeg
	case JointLowerLeg:
		return a.LowerLeg
	default:
		return 0
	}
}

// KeyframeTable is the cyclic sequence of keyframes. One table drives both
// sides of the body; the left side runs half a cycle behind.
type KeyframeTable [KeyframeCount]Angles

// DefaultKeyframes returns the walk cycle.
func DefaultKeyframes() KeyframeTable {
	return KeyframeTable{
		AnglesFromDegrees(60, -90, 30, 75),
		AnglesFromDegrees(0, -80, 0, 90),
		AnglesFromDegrees(-15, -100, -15, 15),
		AnglesFromDegrees(60, -80, 45, 0),
	}
}

// At returns keyframe i, wrapping around the table.
func (k *KeyframeTable) At(i int) Angles {
	i %= KeyframeCount
	if i < 0 {
		i += KeyframeCount
	}
	return k[i]
}

// Bounds returns the per-joint minimum and maximum over the table.
// Interpolated poses never leave this range.
func (k *KeyframeTable) Bounds() (lo, hi Angles) {
	lo, hi = k[0], k[0]
	for _, a := range k[1:] {
		lo.UpperArm, hi.UpperArm = minf(lo.UpperArm, a.UpperArm), maxf(hi.UpperArm, a.UpperArm)
		lo.LowerArm, hi.LowerArm = minf(lo.LowerArm, a.LowerArm), maxf(hi.LowerArm, a.LowerArm)
		lo.UpperLeg, hi.UpperLeg = minf(lo.UpperLeg, a.UpperLeg), maxf(hi.UpperLeg, a.UpperLeg)
		lo.LowerLeg, hi.LowerLeg = minf(lo.LowerLeg, a.LowerLeg), maxf(hi.LowerLeg, a.LowerLeg)
	}
	return lo, hi
}

func minf(a, b float32) float32 {
	if b < a {
		return b
	}
	return a
}

func maxf(a, b float32) float32 {
	if b > a {
		return b
	}
	return a
}
