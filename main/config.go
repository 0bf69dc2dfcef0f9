package main

const ExampleSliceFile = `[Slice]

#######################
# Required Parameters #
#######################

# The 4D solid to slice. Supported shapes:
# Tesseract: the hollow shell of a 4D box, using SizeX/SizeY/SizeZ/SizeW.
# Cube: the hollow shell of a 4D cube, using Size for every axis.
Shape = Tesseract

SizeX = 1
SizeY = 1
SizeZ = 1
SizeW = 1

# For Shape = Cube instead:
# Size = 1

# The Wavefront OBJ file the cross-section triangle mesh is written to.
Output = slice.obj

#######################
# Optional Parameters #
#######################

# Rotation angles in radians for each of the six rotation planes,
# applied before slicing.
# RotXY = 0.785
# RotXZ = 0
# RotXW = 0
# RotYZ = 0
# RotWY = 0
# RotZW = 0

# Uniform scale and translation applied after the rotation. The w
# translation moves the solid through the slicing hyperplane.
# Scale = 1
# TransX = 0
# TransY = 0
# TransZ = 0
# TransW = 0`

const ExampleAnimateFile = `[Animate]

#######################
# Required Parameters #
#######################

# Same shape parameters as [Slice] mode.
Shape = Tesseract
SizeX = 1
SizeY = 1
SizeZ = 1
SizeW = 1

# A whitespace-separated table of rotation keyframes. Each row is:
# time rotXY rotXZ rotXW rotYZ rotWY rotZW
# with angles in radians. Rows must be sorted by time.
Keyframes = path/to/keyframes.txt

# Number of frames to render across the keyframe time range.
Frames = 60

# printf-style pattern for the per-frame OBJ files, e.g. frame_%04d.obj.
Output = frame_%04d.obj

#######################
# Optional Parameters #
#######################

# Uniform scale and translation applied after each frame's rotation.
# Scale = 1
# TransX = 0
# TransY = 0
# TransZ = 0
# TransW = 0`

type ShapeConfig struct {
	// Required
	Shape  string
	Output string
	// Tesseract sizes; Size is the uniform alternative for Cube.
	SizeX, SizeY, SizeZ, SizeW float64
	Size                       float64
	// Optional placement
	RotXY, RotXZ, RotXW, RotYZ, RotWY, RotZW float64
	Scale                                    float64
	TransX, TransY, TransZ, TransW           float64
}

func (con *ShapeConfig) ValidShape() bool {
	return con.Shape == "Tesseract" || con.Shape == "Cube"
}
func (con *ShapeConfig) ValidSize() bool {
	if con.Shape == "Cube" {
		return con.Size > 0
	}
	return con.SizeX > 0 && con.SizeY > 0 && con.SizeZ > 0 && con.SizeW > 0
}
func (con *ShapeConfig) ValidScale() bool {
	return con.Scale > 0
}
func (con *ShapeConfig) ValidOutput() bool {
	return con.Output != ""
}

type SliceConfig struct {
	ShapeConfig
}

type AnimateConfig struct {
	ShapeConfig
	// Required
	Keyframes string
	Frames    int
}

func (con *AnimateConfig) ValidKeyframes() bool {
	return con.Keyframes != ""
}
func (con *AnimateConfig) ValidFrames() bool {
	return con.Frames > 1
}

type SliceWrapper struct {
	Slice SliceConfig
}

type AnimateWrapper struct {
	Animate AnimateConfig
}

func DefaultSliceWrapper() *SliceWrapper {
	con := SliceConfig{}
	con.Scale = 1
	return &SliceWrapper{con}
}

func DefaultAnimateWrapper() *AnimateWrapper {
	con := AnimateConfig{}
	con.Scale = 1
	return &AnimateWrapper{con}
}
