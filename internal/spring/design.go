package spring

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/alexiusacademia/gospring/internal/tables"
)

// Design is a named spring of one family, as stored in the catalog and in
// design files. Exactly one of the input pointers matching Family is set.
type Design struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Family      tables.Family      `json:"family"`
	Compression *CompressionInputs `json:"compression,omitempty"`
	Extension   *ExtensionInputs   `json:"extension,omitempty"`
	Torsion     *TorsionInputs     `json:"torsion,omitempty"`
}

// NewCompressionDesign wraps compression inputs in a design
func NewCompressionDesign(name string, in CompressionInputs) Design {
	return Design{Name: name, Family: tables.Compression, Compression: &in}
}

// NewExtensionDesign wraps extension inputs in a design
func NewExtensionDesign(name string, in ExtensionInputs) Design {
	return Design{Name: name, Family: tables.Extension, Extension: &in}
}

// NewTorsionDesign wraps torsion inputs in a design
func NewTorsionDesign(name string, in TorsionInputs) Design {
	return Design{Name: name, Family: tables.Torsion, Torsion: &in}
}

// LoadFromFile loads a design from a JSON file
func LoadFromFile(path string) (*Design, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var d Design
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &d, nil
}

// Validate checks that the design is well formed. Degenerate geometry is
// not an error; the calculator handles it.
func (d *Design) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return &ValidationError{"design must have a name"}
	}
	switch d.Family {
	case tables.Compression:
		if d.Compression == nil {
			return &ValidationError{"compression design has no compression inputs"}
		}
	case tables.Extension:
		if d.Extension == nil {
			return &ValidationError{"extension design has no extension inputs"}
		}
	case tables.Torsion:
		if d.Torsion == nil {
			return &ValidationError{"torsion design has no torsion inputs"}
		}
	default:
		return &ValidationError{msg: fmt.Sprintf("unknown spring family %q", d.Family)}
	}
	return nil
}

// ValidationError represents a design validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// Evaluation is everything derived from a design in one pass
type Evaluation struct {
	Info   Info
	Helix  Helix
	Report []Section
	Curve  LoadCurve

	Compression *CompressionResult
	Extension   *ExtensionResult
	Torsion     *TorsionResult
}

// Evaluate recomputes the design. It fails only for malformed designs.
func (d *Design) Evaluate() (*Evaluation, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	var ev Evaluation
	switch d.Family {
	case tables.Compression:
		in := *d.Compression
		r := ComputeCompression(in)
		ev.Compression = &r
		ev.Info = Info{
			Name:                d.Name,
			OuterDiameterAtFree: in.OuterDiameterAtFree,
			WireDiameter:        in.WireDiameter,
			Pitch:               r.Pitch,
			LengthAtFree:        in.LengthAtFree,
			Coils:               in.CoilsTotal,
			WireLength:          r.WireLength,
			Rate:                r.Rate,
		}
		ev.Helix = newHelix(r.MeanDiameter, r.Pitch, in.LengthAtFree, in.WireDiameter)
		ev.Report = compressionReport(in, r)
		ev.Curve = compressionCurve(in, r)
	case tables.Extension:
		in := *d.Extension
		r := ComputeExtension(in)
		ev.Extension = &r
		ev.Info = Info{
			Name:                d.Name,
			OuterDiameterAtFree: in.OuterDiameterAtFree,
			WireDiameter:        in.WireDiameter,
			Pitch:               r.Pitch,
			LengthAtFree:        r.LengthAtFree,
			Coils:               in.CoilsTotal,
			WireLength:          r.WireLength,
			Rate:                r.Rate,
		}
		ev.Helix = newHelix(r.MeanDiameter, r.Pitch, r.BodyLength, in.WireDiameter)
		ev.Report = extensionReport(in, r)
		ev.Curve = extensionCurve(in, r)
	case tables.Torsion:
		in := *d.Torsion
		r := ComputeTorsion(in)
		ev.Torsion = &r
		ev.Info = Info{
			Name:                d.Name,
			OuterDiameterAtFree: in.OuterDiameterAtFree,
			WireDiameter:        in.WireDiameter,
			Pitch:               r.Pitch,
			LengthAtFree:        r.BodyLength,
			Coils:               in.CoilsTotal,
			WireLength:          r.WireLength,
			Rate:                r.Rate,
		}
		ev.Helix = newHelix(r.MeanDiameter, r.Pitch, r.BodyLength, in.WireDiameter)
		ev.Report = torsionReport(in, r)
		ev.Curve = torsionCurve(in, r)
	}
	return &ev, nil
}

// Info is one row of the tabular spring export
type Info struct {
	Name                string
	OuterDiameterAtFree float64 // mm
	WireDiameter        float64 // mm
	Pitch               float64 // mm
	LengthAtFree        float64 // mm
	Coils               float64
	WireLength          float64 // mm
	Rate                float64 // N/mm, N·mm/rad for torsion
}

// Helix sizes the circular-profile sweep of a spring body
type Helix struct {
	MeanRadius float64 // mm
	Pitch      float64 // mm
	Height     float64 // mm
	WireRadius float64 // mm
}

func newHelix(meanDia, pitch, height, wireDia float64) Helix {
	return Helix{
		MeanRadius: meanDia / 2,
		Pitch:      pitch,
		Height:     height,
		WireRadius: wireDia / 2,
	}
}

// Turns is the number of helix revolutions, 0 for a degenerate pitch
func (h Helix) Turns() float64 {
	return safeDiv(h.Height, h.Pitch, 0)
}
