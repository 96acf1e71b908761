package shader

import (
	"encoding/binary"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/pkg/errors"
)

// SPIRVMagic is the first word of every SPIR-V module.
const SPIRVMagic = 0x07230203

// CompileError is returned when a program fails to compile.
type CompileError struct {
	Program string
	Err     error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Program, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// Compile translates the WGSL rendition of p into SPIR-V words.
func Compile(p *Program) ([]uint32, error) {
	if len(p.WGSL) == 0 {
		return nil, &CompileError{Program: p.Name, Err: errors.New("no WGSL source")}
	}

	code, err := naga.Compile(p.WGSL)
	if err != nil {
		return nil, &CompileError{Program: p.Name, Err: err}
	}

	if len(code) < 4 || len(code)%4 != 0 {
		return nil, &CompileError{Program: p.Name, Err: errors.Errorf("invalid SPIR-V size %d", len(code))}
	}

	// SPIR-V is a stream of little-endian 32-bit words.
	words := make([]uint32, len(code)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(code[i*4:])
	}

	if words[0] != SPIRVMagic {
		return nil, &CompileError{Program: p.Name, Err: errors.Errorf("invalid SPIR-V magic 0x%08x", words[0])}
	}

	return words, nil
}

// Bytes encodes SPIR-V words as a little-endian byte stream, suitable for
// writing to a .spv file.
func Bytes(words []uint32) []byte {
	out := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(out[i*4:], w)
	}
	return out
}
