package sdc

import (
	"encoding/json"
	"fmt"

	"github.com/qmuntal/gltf"
)

// ExtensionName keys the subdivision configuration in a glTF document's
// root extensions, so options authored for an asset travel with it.
const ExtensionName = "FLYWAVE_subdivision"

type subdivisionExtension struct {
	Scheme  SchemeType `json:"scheme"`
	Options Options    `json:"options"`
}

// AttachToDocument 将细分配置写入GLTF文档扩展
func AttachToDocument(doc *gltf.Document, scheme SchemeType, opts Options) error {
	if !scheme.IsValid() {
		return fmt.Errorf("%w: scheme type %d", ErrInvalidOption, uint8(scheme))
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	if doc.Extensions == nil {
		doc.Extensions = make(map[string]interface{})
	}
	doc.Extensions[ExtensionName] = subdivisionExtension{Scheme: scheme, Options: opts}

	for _, used := range doc.ExtensionsUsed {
		if used == ExtensionName {
			return nil
		}
	}
	doc.ExtensionsUsed = append(doc.ExtensionsUsed, ExtensionName)
	return nil
}

// OptionsFromDocument reads the subdivision configuration back from a glTF
// document. The second return value reports whether the extension was
// present; absent fields keep their defaults, invalid values fail.
func OptionsFromDocument(doc *gltf.Document) (SchemeType, Options, bool, error) {
	ext, ok := doc.Extensions[ExtensionName]
	if !ok {
		return SCHEME_CATMARK, NewOptions(), false, nil
	}

	out := subdivisionExtension{Scheme: SCHEME_CATMARK, Options: NewOptions()}
	switch v := ext.(type) {
	case subdivisionExtension:
		out = v
	case json.RawMessage:
		if err := json.Unmarshal(v, &out); err != nil {
			return 0, Options{}, true, err
		}
	default:
		// 解码器把未注册的扩展保存为通用值，重新编码后再解析
		bt, err := json.Marshal(v)
		if err != nil {
			return 0, Options{}, true, err
		}
		if err := json.Unmarshal(bt, &out); err != nil {
			return 0, Options{}, true, err
		}
	}

	if !out.Scheme.IsValid() {
		return 0, Options{}, true, fmt.Errorf("%w: scheme type %d", ErrInvalidOption, uint8(out.Scheme))
	}
	if err := out.Options.Validate(); err != nil {
		return 0, Options{}, true, err
	}
	return out.Scheme, out.Options, true, nil
}
