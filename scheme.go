package sdc

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// SchemeType 细分方案类型
type SchemeType uint8

const (
	SCHEME_BILINEAR SchemeType = 0
	SCHEME_CATMARK  SchemeType = 1
	SCHEME_LOOP     SchemeType = 2
)

func (s SchemeType) IsValid() bool {
	return s <= SCHEME_LOOP
}

func (s SchemeType) String() string {
	switch s {
	case SCHEME_BILINEAR:
		return "bilinear"
	case SCHEME_CATMARK:
		return "catmark"
	case SCHEME_LOOP:
		return "loop"
	}
	return fmt.Sprintf("scheme(%d)", uint8(s))
}

func ParseSchemeType(s string) (SchemeType, error) {
	switch s {
	case "bilinear":
		return SCHEME_BILINEAR, nil
	case "catmark":
		return SCHEME_CATMARK, nil
	case "loop":
		return SCHEME_LOOP, nil
	}
	return 0, fmt.Errorf("%w: scheme type %q", ErrInvalidOption, s)
}

func (s SchemeType) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: scheme type %d", ErrInvalidOption, uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *SchemeType) UnmarshalText(text []byte) error {
	p, err := ParseSchemeType(string(text))
	if err != nil {
		return err
	}
	*s = p
	return nil
}

func (s *SchemeType) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return err
	}
	return s.UnmarshalText([]byte(str))
}

// RegularFaceSize 返回方案的规则面顶点数
func (s SchemeType) RegularFaceSize() int {
	if s == SCHEME_LOOP {
		return 3
	}
	return 4
}

// RegularVertexValence 返回方案的规则顶点度数
func (s SchemeType) RegularVertexValence() int {
	if s == SCHEME_LOOP {
		return 6
	}
	return 4
}

// AppliesTriangleSubdivision reports whether the triangle subdivision
// option has any effect for the scheme. Only Catmark specializes the
// weighting of triangular faces.
func (s SchemeType) AppliesTriangleSubdivision() bool {
	return s == SCHEME_CATMARK
}
