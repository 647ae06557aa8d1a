package sdc

import (
	"encoding/json"
	"errors"
	"testing"
)

// TestNewOptionsDefaults 测试默认配置
func TestNewOptionsDefaults(t *testing.T) {
	opts := NewOptions()
	if opts.GetVtxBoundaryInterpolation() != VTX_BOUNDARY_NONE {
		t.Errorf("Expected vtx boundary none, got %v", opts.GetVtxBoundaryInterpolation())
	}
	if opts.GetFVarLinearInterpolation() != FVAR_LINEAR_ALL {
		t.Errorf("Expected fvar linear all, got %v", opts.GetFVarLinearInterpolation())
	}
	if opts.GetCreasingMethod() != CREASE_UNIFORM {
		t.Errorf("Expected uniform creasing, got %v", opts.GetCreasingMethod())
	}
	if opts.GetTriangleSubdivision() != TRI_SUB_CATMARK {
		t.Errorf("Expected catmark triangle subdivision, got %v", opts.GetTriangleSubdivision())
	}
	if err := opts.Validate(); err != nil {
		t.Errorf("Expected valid defaults, got %v", err)
	}
}

// TestVtxBoundaryRoundTrip 测试边界插值字段往返且不影响其他字段
func TestVtxBoundaryRoundTrip(t *testing.T) {
	values := []VtxBoundaryInterpolation{VTX_BOUNDARY_NONE, VTX_BOUNDARY_EDGE_ONLY, VTX_BOUNDARY_EDGE_AND_CORNER}
	for _, v := range values {
		t.Run(v.String(), func(t *testing.T) {
			opts := NewOptions()
			opts.SetVtxBoundaryInterpolation(v)
			if opts.GetVtxBoundaryInterpolation() != v {
				t.Errorf("Expected %v, got %v", v, opts.GetVtxBoundaryInterpolation())
			}
			if opts.GetFVarLinearInterpolation() != FVAR_LINEAR_ALL ||
				opts.GetCreasingMethod() != CREASE_UNIFORM ||
				opts.GetTriangleSubdivision() != TRI_SUB_CATMARK {
				t.Errorf("Setting vtx boundary changed another field: %+v", opts)
			}
		})
	}
}

func TestFVarLinearRoundTrip(t *testing.T) {
	values := []FVarLinearInterpolation{
		FVAR_LINEAR_NONE, FVAR_LINEAR_CORNERS_ONLY, FVAR_LINEAR_CORNERS_PLUS1,
		FVAR_LINEAR_CORNERS_PLUS2, FVAR_LINEAR_BOUNDARIES, FVAR_LINEAR_ALL,
	}
	for _, v := range values {
		t.Run(v.String(), func(t *testing.T) {
			opts := NewOptions()
			opts.SetFVarLinearInterpolation(v)
			if opts.GetFVarLinearInterpolation() != v {
				t.Errorf("Expected %v, got %v", v, opts.GetFVarLinearInterpolation())
			}
			if opts.GetVtxBoundaryInterpolation() != VTX_BOUNDARY_NONE ||
				opts.GetCreasingMethod() != CREASE_UNIFORM ||
				opts.GetTriangleSubdivision() != TRI_SUB_CATMARK {
				t.Errorf("Setting fvar linear changed another field: %+v", opts)
			}
		})
	}
}

func TestCreasingMethodRoundTrip(t *testing.T) {
	for _, v := range []CreasingMethod{CREASE_UNIFORM, CREASE_CHAIKIN} {
		t.Run(v.String(), func(t *testing.T) {
			opts := NewOptions()
			opts.SetCreasingMethod(v)
			if opts.GetCreasingMethod() != v {
				t.Errorf("Expected %v, got %v", v, opts.GetCreasingMethod())
			}
			if opts.GetVtxBoundaryInterpolation() != VTX_BOUNDARY_NONE ||
				opts.GetFVarLinearInterpolation() != FVAR_LINEAR_ALL ||
				opts.GetTriangleSubdivision() != TRI_SUB_CATMARK {
				t.Errorf("Setting creasing method changed another field: %+v", opts)
			}
		})
	}
}

func TestTriangleSubdivisionRoundTrip(t *testing.T) {
	for _, v := range []TriangleSubdivision{TRI_SUB_CATMARK, TRI_SUB_SMOOTH} {
		t.Run(v.String(), func(t *testing.T) {
			opts := NewOptions()
			opts.SetTriangleSubdivision(v)
			if opts.GetTriangleSubdivision() != v {
				t.Errorf("Expected %v, got %v", v, opts.GetTriangleSubdivision())
			}
			if opts.GetVtxBoundaryInterpolation() != VTX_BOUNDARY_NONE ||
				opts.GetFVarLinearInterpolation() != FVAR_LINEAR_ALL ||
				opts.GetCreasingMethod() != CREASE_UNIFORM {
				t.Errorf("Setting triangle subdivision changed another field: %+v", opts)
			}
		})
	}
}

// TestOptionsEquality 测试值相等语义
func TestOptionsEquality(t *testing.T) {
	a := NewOptions()
	b := NewOptions()
	if a != b {
		t.Fatal("Expected two default instances to compare equal")
	}

	explicit := Options{}
	explicit.SetVtxBoundaryInterpolation(VTX_BOUNDARY_NONE)
	explicit.SetFVarLinearInterpolation(FVAR_LINEAR_ALL)
	explicit.SetCreasingMethod(CREASE_UNIFORM)
	explicit.SetTriangleSubdivision(TRI_SUB_CATMARK)
	if explicit != a {
		t.Errorf("Expected explicitly set defaults to equal NewOptions, got %+v", explicit)
	}

	b.SetCreasingMethod(CREASE_CHAIKIN)
	if a == b {
		t.Error("Expected inequality after mutating one field")
	}
	if a.Pack() == b.Pack() {
		t.Error("Expected distinct packed values for distinct options")
	}
}

// TestOptionsCopyIndependence 测试拷贝独立性
func TestOptionsCopyIndependence(t *testing.T) {
	orig := NewOptions()
	cp := orig
	cp.SetVtxBoundaryInterpolation(VTX_BOUNDARY_EDGE_AND_CORNER)
	cp.SetTriangleSubdivision(TRI_SUB_SMOOTH)

	if orig.GetVtxBoundaryInterpolation() != VTX_BOUNDARY_NONE {
		t.Errorf("Mutating the copy changed the original vtx boundary: %v", orig.GetVtxBoundaryInterpolation())
	}
	if orig.GetTriangleSubdivision() != TRI_SUB_CATMARK {
		t.Errorf("Mutating the copy changed the original triangle subdivision: %v", orig.GetTriangleSubdivision())
	}
}

// TestOptionsScenario 典型使用场景
func TestOptionsScenario(t *testing.T) {
	opts := NewOptions()
	opts.SetVtxBoundaryInterpolation(VTX_BOUNDARY_EDGE_AND_CORNER)
	opts.SetFVarLinearInterpolation(FVAR_LINEAR_CORNERS_ONLY)

	if opts.GetVtxBoundaryInterpolation() != VTX_BOUNDARY_EDGE_AND_CORNER {
		t.Errorf("Expected edge_and_corner, got %v", opts.GetVtxBoundaryInterpolation())
	}
	if opts.GetFVarLinearInterpolation() != FVAR_LINEAR_CORNERS_ONLY {
		t.Errorf("Expected corners_only, got %v", opts.GetFVarLinearInterpolation())
	}
	if opts.GetCreasingMethod() != CREASE_UNIFORM {
		t.Errorf("Expected creasing method to keep its default, got %v", opts.GetCreasingMethod())
	}
	if opts.GetTriangleSubdivision() != TRI_SUB_CATMARK {
		t.Errorf("Expected triangle subdivision to keep its default, got %v", opts.GetTriangleSubdivision())
	}
}

// TestPackUnpack 测试打包形式往返与越界拒绝
func TestPackUnpack(t *testing.T) {
	opts := NewOptions()
	opts.SetVtxBoundaryInterpolation(VTX_BOUNDARY_EDGE_ONLY)
	opts.SetFVarLinearInterpolation(FVAR_LINEAR_BOUNDARIES)
	opts.SetCreasingMethod(CREASE_CHAIKIN)
	opts.SetTriangleSubdivision(TRI_SUB_SMOOTH)

	back, err := UnpackOptions(opts.Pack())
	if err != nil {
		t.Fatalf("UnpackOptions failed: %v", err)
	}
	if back != opts {
		t.Errorf("Expected %+v, got %+v", opts, back)
	}

	invalid := []struct {
		name   string
		packed uint32
	}{
		{"vtx boundary out of range", 3},
		{"fvar linear out of range", 6 << 8},
		{"creasing out of range", 2 << 16},
		{"triangle subdivision out of range", 2 << 24},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := UnpackOptions(tt.packed); !errors.Is(err, ErrInvalidOption) {
				t.Errorf("Expected ErrInvalidOption, got %v", err)
			}
		})
	}
}

// TestParseOptionValues 测试字符串解析
func TestParseOptionValues(t *testing.T) {
	if v, err := ParseVtxBoundaryInterpolation("edge_and_corner"); err != nil || v != VTX_BOUNDARY_EDGE_AND_CORNER {
		t.Errorf("Expected edge_and_corner, got %v (%v)", v, err)
	}
	if f, err := ParseFVarLinearInterpolation("corners_plus2"); err != nil || f != FVAR_LINEAR_CORNERS_PLUS2 {
		t.Errorf("Expected corners_plus2, got %v (%v)", f, err)
	}
	if c, err := ParseCreasingMethod("chaikin"); err != nil || c != CREASE_CHAIKIN {
		t.Errorf("Expected chaikin, got %v (%v)", c, err)
	}
	if ts, err := ParseTriangleSubdivision("smooth"); err != nil || ts != TRI_SUB_SMOOTH {
		t.Errorf("Expected smooth, got %v (%v)", ts, err)
	}

	if _, err := ParseVtxBoundaryInterpolation("edges"); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("Expected ErrInvalidOption for unknown name, got %v", err)
	}
	if _, err := ParseCreasingMethod(""); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("Expected ErrInvalidOption for empty name, got %v", err)
	}
}

// TestOptionsJSON 测试JSON序列化
func TestOptionsJSON(t *testing.T) {
	opts := NewOptions()
	bt, err := json.Marshal(opts)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `{"vtxBoundaryInterpolation":"none","fvarLinearInterpolation":"all","creasingMethod":"uniform","triangleSubdivision":"catmark"}`
	if string(bt) != want {
		t.Errorf("Expected %s, got %s", want, string(bt))
	}

	var back Options
	if err := json.Unmarshal(bt, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if back != opts {
		t.Errorf("Expected %+v, got %+v", opts, back)
	}

	// 缺失字段保持默认值
	var partial Options
	if err := json.Unmarshal([]byte(`{"creasingMethod":"chaikin"}`), &partial); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if partial.GetCreasingMethod() != CREASE_CHAIKIN {
		t.Errorf("Expected chaikin, got %v", partial.GetCreasingMethod())
	}
	if partial.GetFVarLinearInterpolation() != FVAR_LINEAR_ALL {
		t.Errorf("Expected absent fvar field to default to all, got %v", partial.GetFVarLinearInterpolation())
	}

	var bad Options
	if err := json.Unmarshal([]byte(`{"triangleSubdivision":"loop"}`), &bad); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("Expected ErrInvalidOption, got %v", err)
	}

	invalid := Options{}
	invalid.SetFVarLinearInterpolation(FVarLinearInterpolation(9))
	if _, err := json.Marshal(invalid); err == nil {
		t.Error("Expected marshal of out-of-range field to fail")
	}
}
