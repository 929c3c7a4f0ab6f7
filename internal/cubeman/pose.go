package cubeman

// Side selects one half of the body.
type Side int

const (
	SideRight Side = iota
	SideLeft
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Joint identifies which pose angle drives a part.
type Joint int

const (
	JointNone Joint = iota
	JointUpperArm
	JointLowerArm
	JointUpperLeg
	JointLowerLeg
)

// Pose is the full set of joint angles for one frame.
type Pose struct {
	Right Angles
	Left  Angles
}

// Side returns the angles of one side.
func (p Pose) Side(s Side) Angles {
	if s == SideLeft {
		return p.Left
	}
	return p.Right
}

// Angle returns the angle of joint j on side s.
func (p Pose) Angle(s Side, j Joint) float32 {
	return p.Side(s).Get(j)
}

func (p Pose) RightUpperArm() float32 { return p.Right.UpperArm }
func (p Pose) RightLowerArm() float32 { return p.Right.LowerArm }
func (p Pose) RightUpperLeg() float32 { return p.Right.UpperLeg }
func (p Pose) RightLowerLeg() float32 { return p.Right.LowerLeg }
func (p Pose) LeftUpperArm() float32  { return p.Left.UpperArm }
func (p Pose) LeftLowerArm() float32  { return p.Left.LowerArm }
func (p Pose) LeftUpperLeg() float32  { return p.Left.UpperLeg }
func (p Pose) LeftLowerLeg() float32  { return p.Left.LowerLeg }
