package physics

// CentralGravityField is a point-mass gravity field with an optional J2
// zonal term.
type CentralGravityField struct {
	mu              float64 // m^3/s^2
	j2              float64
	referenceRadius float64 // m
}

// NewCentralGravityField constructs a point-mass field.
func NewCentralGravityField(mu float64) *CentralGravityField {
	return &CentralGravityField{mu: mu}
}

// NewCentralGravityFieldJ2 constructs a point-mass field with a J2 term
// referenced to the given radius.
func NewCentralGravityFieldJ2(mu, j2, referenceRadius float64) *CentralGravityField {
	return &CentralGravityField{mu: mu, j2: j2, referenceRadius: referenceRadius}
}

func (g *CentralGravityField) GravitationalParameter() float64 { return g.mu }
func (g *CentralGravityField) J2() float64                     { return g.j2 }
func (g *CentralGravityField) ReferenceRadius() float64        { return g.referenceRadius }

// BasicTidalGravityFieldVariation is a degree-2 tidal variation of a gravity
// field raised by the named deforming bodies.
type BasicTidalGravityFieldVariation struct {
	deformingBodies []string
	loveNumber      float64
	referenceRadius float64
}

// NewBasicTidalVariation constructs a degree-2 tidal variation.
func NewBasicTidalVariation(deformingBodies []string, loveNumber, referenceRadius float64) *BasicTidalGravityFieldVariation {
	bodies := make([]string, len(deformingBodies))
	copy(bodies, deformingBodies)
	return &BasicTidalGravityFieldVariation{
		deformingBodies: bodies,
		loveNumber:      loveNumber,
		referenceRadius: referenceRadius,
	}
}

func (v *BasicTidalGravityFieldVariation) DeformingBodies() []string { return v.deformingBodies }
func (v *BasicTidalGravityFieldVariation) LoveNumber() float64       { return v.loveNumber }
func (v *BasicTidalGravityFieldVariation) ReferenceRadius() float64  { return v.referenceRadius }
