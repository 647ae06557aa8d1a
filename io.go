package sdc

import (
	"encoding/binary"
	"fmt"
	"io"
)

// 独立配置流的签名与版本
const OPTIONS_SIGNATURE string = "fwsd"
const V1 uint32 = 1

// writeLittleUint8 写入小端序uint8
func writeLittleUint8(wt io.Writer, v uint8) error {
	_, err := wt.Write([]byte{v})
	return err
}

// writeLittleUint32 写入小端序uint32
func writeLittleUint32(wt io.Writer, v uint32) error {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, v)
	_, err := wt.Write(buf)
	return err
}

func readLittleByte(rd io.Reader, v interface{}) error {
	return binary.Read(rd, binary.LittleEndian, v)
}

// OptionsMarshal writes the four option fields as one ordinal byte each,
// in declaration order. The layout is the wire and cache-key form of the
// configuration and stays bit-compatible across releases.
func OptionsMarshal(wt io.Writer, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	if err := writeLittleUint8(wt, uint8(opts.GetVtxBoundaryInterpolation())); err != nil {
		return fmt.Errorf("write vtx boundary interpolation failed: %w", err)
	}
	if err := writeLittleUint8(wt, uint8(opts.GetFVarLinearInterpolation())); err != nil {
		return fmt.Errorf("write fvar linear interpolation failed: %w", err)
	}
	if err := writeLittleUint8(wt, uint8(opts.GetCreasingMethod())); err != nil {
		return fmt.Errorf("write creasing method failed: %w", err)
	}
	if err := writeLittleUint8(wt, uint8(opts.GetTriangleSubdivision())); err != nil {
		return fmt.Errorf("write triangle subdivision failed: %w", err)
	}
	return nil
}

// OptionsUnMarshal 读取并校验四个配置字段
func OptionsUnMarshal(rd io.Reader) (Options, error) {
	var fields [4]uint8
	if err := readLittleByte(rd, fields[:]); err != nil {
		return Options{}, fmt.Errorf("read options failed: %w", err)
	}

	opts := Options{}
	opts.SetVtxBoundaryInterpolation(VtxBoundaryInterpolation(fields[0]))
	opts.SetFVarLinearInterpolation(FVarLinearInterpolation(fields[1]))
	opts.SetCreasingMethod(CreasingMethod(fields[2]))
	opts.SetTriangleSubdivision(TriangleSubdivision(fields[3]))
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// OptionsSave 以带签名和版本的独立流形式保存配置
func OptionsSave(wt io.Writer, opts Options) error {
	if _, err := wt.Write([]byte(OPTIONS_SIGNATURE)); err != nil {
		return fmt.Errorf("write signature failed: %w", err)
	}
	if err := writeLittleUint32(wt, V1); err != nil {
		return fmt.Errorf("write version failed: %w", err)
	}
	return OptionsMarshal(wt, opts)
}

// OptionsLoad 读取独立流形式的配置
func OptionsLoad(rd io.Reader) (Options, error) {
	sig := make([]byte, 4)
	if _, err := io.ReadFull(rd, sig); err != nil {
		return Options{}, fmt.Errorf("read signature failed: %w", err)
	}
	if string(sig) != OPTIONS_SIGNATURE {
		return Options{}, fmt.Errorf("bad signature %q", string(sig))
	}
	var version uint32
	if err := readLittleByte(rd, &version); err != nil {
		return Options{}, fmt.Errorf("read version failed: %w", err)
	}
	if version == 0 || version > V1 {
		return Options{}, fmt.Errorf("unsupported version %d", version)
	}
	return OptionsUnMarshal(rd)
}
