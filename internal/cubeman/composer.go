package cubeman

import (
	"github.com/Faultbox/cubeman/pkg/math"
)

// WorldParent marks a part anchored directly to the world transform.
const WorldParent = -1

// xAxis is the rotation axis of every joint.
var xAxis = math.Vec3{X: 1}

// Part describes how one body part is placed relative to its anchor:
//
//	anchor = parent * translate(Offset) * rotateX(angle)
//	model  = anchor * scale(Scale)
//
// Children attach to the anchor, so they inherit translation and rotation
// but not scale.
type Part struct {
	Name   string
	Parent int // index of an earlier part, or WorldParent
	Offset math.Vec3
	Joint  Joint // JointNone: no rotation
	Side   Side
	Scale  math.Vec3
}

// Limb joint geometry.
var (
	ShoulderRight = math.Vec3{X: -0.25, Y: 0.3}
	ShoulderLeft  = math.Vec3{X: 0.25, Y: 0.3}
	HipRight      = math.Vec3{X: -0.1, Y: -0.7}
	HipLeft       = math.Vec3{X: 0.1, Y: -0.7}
	Elbow         = math.Vec3{Y: -0.25, Z: 0.15}
	Knee          = math.Vec3{Y: -0.27, Z: -0.05}
	SegmentScale  = math.Vec3{X: 0.1, Y: 0.4, Z: 0.1}
)

// DefaultParts returns the figure's hierarchy in draw order: body, head,
// then upper and lower segments of right arm, left arm, right leg, left leg.
func DefaultParts() []Part {
	parts := []Part{
		{Name: "body", Parent: WorldParent, Scale: math.Vec3{X: 0.4, Y: 1.0, Z: 0.2}},
		{Name: "head", Parent: WorldParent, Offset: math.Vec3{Y: 0.6}, Scale: math.Vec3{X: 0.2, Y: 0.2, Z: 0.2}},
	}
	limbs := []struct {
		name         string
		side         Side
		root, joint  math.Vec3
		upper, lower Joint
	}{
		{"right_arm", SideRight, ShoulderRight, Elbow, JointUpperArm, JointLowerArm},
		{"left_arm", SideLeft, ShoulderLeft, Elbow, JointUpperArm, JointLowerArm},
		{"right_leg", SideRight, HipRight, Knee, JointUpperLeg, JointLowerLeg},
		{"left_leg", SideLeft, HipLeft, Knee, JointUpperLeg, JointLowerLeg},
	}
	for _, l := range limbs {
		upper := len(parts)
		parts = append(parts,
			Part{Name: l.name + "_upper", Parent: WorldParent, Offset: l.root, Joint: l.upper, Side: l.side, Scale: SegmentScale},
			Part{Name: l.name + "_lower", Parent: upper, Offset: l.joint, Joint: l.lower, Side: l.side, Scale: SegmentScale},
		)
	}
	return parts
}

// DrawCommand pairs a part's model transform with the mesh to draw.
type DrawCommand struct {
	Part  string
	Model math.Mat4
	Mesh  *Mesh
}

// Composer turns a pose into draw commands.
// It holds no per-call state and is safe for concurrent use.
type Composer struct {
	parts []Part
	mesh  *Mesh
}

// NewComposer returns a composer drawing parts with mesh.
// Parents must precede their children in parts.
func NewComposer(mesh *Mesh, parts []Part) *Composer {
	return &Composer{
		parts: parts,
		mesh:  mesh,
	}
}

// Parts returns the part table.
func (c *Composer) Parts() []Part {
	return c.parts
}

// Compose returns one draw command per part, in table order.
func (c *Composer) Compose(world math.Mat4, pose Pose) []DrawCommand {
	return c.AppendCompose(make([]DrawCommand, 0, len(c.parts)), world, pose)
}

// AppendCompose appends the draw commands to dst.
func (c *Composer) AppendCompose(dst []DrawCommand, world math.Mat4, pose Pose) []DrawCommand {
	anchors := make([]math.Mat4, len(c.parts))
	for i, p := range c.parts {
		anchor := world
		if p.Parent != WorldParent {
			anchor = anchors[p.Parent]
		}
		if p.Offset != (math.Vec3{}) {
			anchor = anchor.Translate(p.Offset)
		}
		if p.Joint != JointNone {
			anchor = anchor.Rotate(pose.Angle(p.Side, p.Joint), xAxis)
		}
		anchors[i] = anchor

		dst = append(dst, DrawCommand{
			Part:  p.Name,
			Model: anchor.Scale(p.Scale),
			Mesh:  c.mesh,
		})
	}
	return dst
}
