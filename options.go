// Package sdc holds the configuration contract of a subdivision-surface
// scheme: the option values that select how boundaries are sharpened, how
// face-varying data interpolates, which creasing rule decays sharpness and
// which weights subdivide triangular faces. The options are bundled in a
// small value that is configured once and passed down by value into the
// per-face, per-edge and per-vertex computations of a scheme.
package sdc

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrInvalidOption reports an option value outside its declared range.
// Out-of-range values are always rejected at the boundary where they enter,
// never truncated into a valid-looking member.
var ErrInvalidOption = errors.New("sdc: invalid option value")

// VtxBoundaryInterpolation 控制开放网格边界的锐化方式
type VtxBoundaryInterpolation uint8

const (
	VTX_BOUNDARY_NONE            VtxBoundaryInterpolation = 0 // no special boundary treatment
	VTX_BOUNDARY_EDGE_ONLY       VtxBoundaryInterpolation = 1 // sharpen boundary edges
	VTX_BOUNDARY_EDGE_AND_CORNER VtxBoundaryInterpolation = 2 // sharpen boundary edges and corner vertices
)

func (v VtxBoundaryInterpolation) IsValid() bool {
	return v <= VTX_BOUNDARY_EDGE_AND_CORNER
}

func (v VtxBoundaryInterpolation) String() string {
	switch v {
	case VTX_BOUNDARY_NONE:
		return "none"
	case VTX_BOUNDARY_EDGE_ONLY:
		return "edge_only"
	case VTX_BOUNDARY_EDGE_AND_CORNER:
		return "edge_and_corner"
	}
	return fmt.Sprintf("vtx_boundary(%d)", uint8(v))
}

func ParseVtxBoundaryInterpolation(s string) (VtxBoundaryInterpolation, error) {
	switch s {
	case "none":
		return VTX_BOUNDARY_NONE, nil
	case "edge_only":
		return VTX_BOUNDARY_EDGE_ONLY, nil
	case "edge_and_corner":
		return VTX_BOUNDARY_EDGE_AND_CORNER, nil
	}
	return 0, fmt.Errorf("%w: vtx boundary interpolation %q", ErrInvalidOption, s)
}

func (v VtxBoundaryInterpolation) MarshalText() ([]byte, error) {
	if !v.IsValid() {
		return nil, fmt.Errorf("%w: vtx boundary interpolation %d", ErrInvalidOption, uint8(v))
	}
	return []byte(v.String()), nil
}

func (v *VtxBoundaryInterpolation) UnmarshalText(text []byte) error {
	p, err := ParseVtxBoundaryInterpolation(string(text))
	if err != nil {
		return err
	}
	*v = p
	return nil
}

func (v *VtxBoundaryInterpolation) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return v.UnmarshalText([]byte(s))
}

// FVarLinearInterpolation 控制面变化数据(如UV)的线性插值范围
type FVarLinearInterpolation uint8

const (
	FVAR_LINEAR_NONE          FVarLinearInterpolation = 0 // smooth everywhere
	FVAR_LINEAR_CORNERS_ONLY  FVarLinearInterpolation = 1 // sharpen corners only
	FVAR_LINEAR_CORNERS_PLUS1 FVarLinearInterpolation = 2 // corners plus corner propagation
	FVAR_LINEAR_CORNERS_PLUS2 FVarLinearInterpolation = 3 // corners plus propagation on both sides
	FVAR_LINEAR_BOUNDARIES    FVarLinearInterpolation = 4 // sharpen all boundaries
	FVAR_LINEAR_ALL           FVarLinearInterpolation = 5 // bilinear interpolation
)

func (f FVarLinearInterpolation) IsValid() bool {
	return f <= FVAR_LINEAR_ALL
}

func (f FVarLinearInterpolation) String() string {
	switch f {
	case FVAR_LINEAR_NONE:
		return "none"
	case FVAR_LINEAR_CORNERS_ONLY:
		return "corners_only"
	case FVAR_LINEAR_CORNERS_PLUS1:
		return "corners_plus1"
	case FVAR_LINEAR_CORNERS_PLUS2:
		return "corners_plus2"
	case FVAR_LINEAR_BOUNDARIES:
		return "boundaries"
	case FVAR_LINEAR_ALL:
		return "all"
	}
	return fmt.Sprintf("fvar_linear(%d)", uint8(f))
}

func ParseFVarLinearInterpolation(s string) (FVarLinearInterpolation, error) {
	switch s {
	case "none":
		return FVAR_LINEAR_NONE, nil
	case "corners_only":
		return FVAR_LINEAR_CORNERS_ONLY, nil
	case "corners_plus1":
		return FVAR_LINEAR_CORNERS_PLUS1, nil
	case "corners_plus2":
		return FVAR_LINEAR_CORNERS_PLUS2, nil
	case "boundaries":
		return FVAR_LINEAR_BOUNDARIES, nil
	case "all":
		return FVAR_LINEAR_ALL, nil
	}
	return 0, fmt.Errorf("%w: fvar linear interpolation %q", ErrInvalidOption, s)
}

func (f FVarLinearInterpolation) MarshalText() ([]byte, error) {
	if !f.IsValid() {
		return nil, fmt.Errorf("%w: fvar linear interpolation %d", ErrInvalidOption, uint8(f))
	}
	return []byte(f.String()), nil
}

func (f *FVarLinearInterpolation) UnmarshalText(text []byte) error {
	p, err := ParseFVarLinearInterpolation(string(text))
	if err != nil {
		return err
	}
	*f = p
	return nil
}

func (f *FVarLinearInterpolation) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return f.UnmarshalText([]byte(s))
}

// CreasingMethod 选择折痕锐度在细分层级间的衰减规则
type CreasingMethod uint8

const (
	CREASE_UNIFORM CreasingMethod = 0 // uniform decay
	CREASE_CHAIKIN CreasingMethod = 1 // blend with neighboring crease sharpness
)

func (c CreasingMethod) IsValid() bool {
	return c <= CREASE_CHAIKIN
}

func (c CreasingMethod) String() string {
	switch c {
	case CREASE_UNIFORM:
		return "uniform"
	case CREASE_CHAIKIN:
		return "chaikin"
	}
	return fmt.Sprintf("creasing(%d)", uint8(c))
}

func ParseCreasingMethod(s string) (CreasingMethod, error) {
	switch s {
	case "uniform":
		return CREASE_UNIFORM, nil
	case "chaikin":
		return CREASE_CHAIKIN, nil
	}
	return 0, fmt.Errorf("%w: creasing method %q", ErrInvalidOption, s)
}

func (c CreasingMethod) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("%w: creasing method %d", ErrInvalidOption, uint8(c))
	}
	return []byte(c.String()), nil
}

func (c *CreasingMethod) UnmarshalText(text []byte) error {
	p, err := ParseCreasingMethod(string(text))
	if err != nil {
		return err
	}
	*c = p
	return nil
}

func (c *CreasingMethod) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return c.UnmarshalText([]byte(s))
}

// TriangleSubdivision 选择三角面的细分权重，仅对特化三角面的方案有意义
type TriangleSubdivision uint8

const (
	TRI_SUB_CATMARK TriangleSubdivision = 0 // standard Catmark weights
	TRI_SUB_SMOOTH  TriangleSubdivision = 1 // "smooth triangle" weights
)

func (t TriangleSubdivision) IsValid() bool {
	return t <= TRI_SUB_SMOOTH
}

func (t TriangleSubdivision) String() string {
	switch t {
	case TRI_SUB_CATMARK:
		return "catmark"
	case TRI_SUB_SMOOTH:
		return "smooth"
	}
	return fmt.Sprintf("triangle_subdivision(%d)", uint8(t))
}

func ParseTriangleSubdivision(s string) (TriangleSubdivision, error) {
	switch s {
	case "catmark":
		return TRI_SUB_CATMARK, nil
	case "smooth":
		return TRI_SUB_SMOOTH, nil
	}
	return 0, fmt.Errorf("%w: triangle subdivision %q", ErrInvalidOption, s)
}

func (t TriangleSubdivision) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("%w: triangle subdivision %d", ErrInvalidOption, uint8(t))
	}
	return []byte(t.String()), nil
}

func (t *TriangleSubdivision) UnmarshalText(text []byte) error {
	p, err := ParseTriangleSubdivision(string(text))
	if err != nil {
		return err
	}
	*t = p
	return nil
}

func (t *TriangleSubdivision) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return t.UnmarshalText([]byte(s))
}

// Options 细分方案的全部配置项
//
// Options bundles the four orthogonal option fields. It is a plain value:
// two instances with the same fields are interchangeable and compare equal
// with ==, and copies are independent. Use NewOptions rather than the zero
// value; the zero value puts every field at ordinal zero, which is not the
// compatibility default.
type Options struct {
	vtxBoundInterp VtxBoundaryInterpolation
	fvarLinInterp  FVarLinearInterpolation
	creasingMethod CreasingMethod
	triangleSub    TriangleSubdivision
}

// NewOptions returns the compatibility defaults: no boundary interpolation,
// bilinear face-varying interpolation, uniform creasing, Catmark triangle
// weights. Downstream numerical results depend on this exact combination.
func NewOptions() Options {
	return Options{
		vtxBoundInterp: VTX_BOUNDARY_NONE,
		fvarLinInterp:  FVAR_LINEAR_ALL,
		creasingMethod: CREASE_UNIFORM,
		triangleSub:    TRI_SUB_CATMARK,
	}
}

func (o Options) GetVtxBoundaryInterpolation() VtxBoundaryInterpolation {
	return o.vtxBoundInterp
}

func (o *Options) SetVtxBoundaryInterpolation(v VtxBoundaryInterpolation) {
	o.vtxBoundInterp = v
}

func (o Options) GetFVarLinearInterpolation() FVarLinearInterpolation {
	return o.fvarLinInterp
}

func (o *Options) SetFVarLinearInterpolation(f FVarLinearInterpolation) {
	o.fvarLinInterp = f
}

func (o Options) GetCreasingMethod() CreasingMethod {
	return o.creasingMethod
}

func (o *Options) SetCreasingMethod(c CreasingMethod) {
	o.creasingMethod = c
}

func (o Options) GetTriangleSubdivision() TriangleSubdivision {
	return o.triangleSub
}

func (o *Options) SetTriangleSubdivision(t TriangleSubdivision) {
	o.triangleSub = t
}

// Validate 校验所有字段是否在各自的取值范围内
func (o Options) Validate() error {
	if !o.vtxBoundInterp.IsValid() {
		return fmt.Errorf("%w: vtx boundary interpolation %d", ErrInvalidOption, uint8(o.vtxBoundInterp))
	}
	if !o.fvarLinInterp.IsValid() {
		return fmt.Errorf("%w: fvar linear interpolation %d", ErrInvalidOption, uint8(o.fvarLinInterp))
	}
	if !o.creasingMethod.IsValid() {
		return fmt.Errorf("%w: creasing method %d", ErrInvalidOption, uint8(o.creasingMethod))
	}
	if !o.triangleSub.IsValid() {
		return fmt.Errorf("%w: triangle subdivision %d", ErrInvalidOption, uint8(o.triangleSub))
	}
	return nil
}

// Pack encodes the four fields as ordinal bytes of a uint32, in declaration
// order from the low byte. The packed form is stable and suitable as a
// cache key: equal options pack to equal values.
func (o Options) Pack() uint32 {
	return uint32(o.vtxBoundInterp) |
		uint32(o.fvarLinInterp)<<8 |
		uint32(o.creasingMethod)<<16 |
		uint32(o.triangleSub)<<24
}

// UnpackOptions 从打包形式还原配置，逐字段校验取值范围
func UnpackOptions(packed uint32) (Options, error) {
	o := Options{
		vtxBoundInterp: VtxBoundaryInterpolation(packed & 0xff),
		fvarLinInterp:  FVarLinearInterpolation(packed >> 8 & 0xff),
		creasingMethod: CreasingMethod(packed >> 16 & 0xff),
		triangleSub:    TriangleSubdivision(packed >> 24 & 0xff),
	}
	if err := o.Validate(); err != nil {
		return Options{}, err
	}
	return o, nil
}

// optionsDoc 序列化用的中间结构
type optionsDoc struct {
	VtxBoundaryInterpolation VtxBoundaryInterpolation `json:"vtxBoundaryInterpolation" yaml:"vtx_boundary_interpolation"`
	FVarLinearInterpolation  FVarLinearInterpolation  `json:"fvarLinearInterpolation" yaml:"fvar_linear_interpolation"`
	CreasingMethod           CreasingMethod           `json:"creasingMethod" yaml:"creasing_method"`
	TriangleSubdivision      TriangleSubdivision      `json:"triangleSubdivision" yaml:"triangle_subdivision"`
}

func (o Options) doc() optionsDoc {
	return optionsDoc{
		VtxBoundaryInterpolation: o.vtxBoundInterp,
		FVarLinearInterpolation:  o.fvarLinInterp,
		CreasingMethod:           o.creasingMethod,
		TriangleSubdivision:      o.triangleSub,
	}
}

// defaultDoc returns the compatibility defaults so that fields absent from
// a serialized form keep their default rather than falling to ordinal zero.
func defaultDoc() optionsDoc {
	return NewOptions().doc()
}

func (o *Options) setFromDoc(d optionsDoc) {
	o.vtxBoundInterp = d.VtxBoundaryInterpolation
	o.fvarLinInterp = d.FVarLinearInterpolation
	o.creasingMethod = d.CreasingMethod
	o.triangleSub = d.TriangleSubdivision
}

func (o Options) MarshalJSON() ([]byte, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(o.doc())
}

func (o *Options) UnmarshalJSON(data []byte) error {
	d := defaultDoc()
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	o.setFromDoc(d)
	return nil
}

func (o Options) MarshalYAML() (interface{}, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o.doc(), nil
}

func (o *Options) UnmarshalYAML(node *yaml.Node) error {
	d := defaultDoc()
	if err := node.Decode(&d); err != nil {
		return err
	}
	o.setFromDoc(d)
	return nil
}
