package script

import "github.com/conformal-wire/satoshiwire/serialize"

// Script is a wrapped byte vector: an ordered sequence of opcodes and
// push-data payloads. It has no notion of execution, only structure.
type Script []byte

// Instruction is one parsed step of a Script: an opcode together with
// the payload bytes it pushes (empty for non-push opcodes) and the
// length in bytes the instruction occupies within the script. The data
// slice aliases the underlying Script's storage and must not be used
// once the Script is mutated or goes out of scope, per spec.md §9's note
// on self-referential iterator bounds.
type Instruction struct {
	Opcode Opcode
	Data   []byte
	Length int
}

// instructionAt decodes the instruction beginning at offset i, returning
// its length in bytes. The second return value is false when the
// instruction's length prefix or payload runs past the end of the
// script; the returned Instruction then carries no Data.
func instructionAt(s Script, i int) (Instruction, bool) {
	if i >= len(s) {
		return Instruction{}, false
	}
	op := Opcode(s[i])
	switch {
	case op <= 0x4B:
		length := int(op)
		end := i + 1 + length
		if end > len(s) {
			return Instruction{Opcode: op, Length: len(s) - i}, false
		}
		return Instruction{Opcode: op, Data: s[i+1 : end], Length: 1 + length}, true
	case op == OP_PUSHDATA1:
		if i+2 > len(s) {
			return Instruction{Opcode: op, Length: len(s) - i}, false
		}
		length := int(s[i+1])
		end := i + 2 + length
		if end > len(s) {
			return Instruction{Opcode: op, Length: len(s) - i}, false
		}
		return Instruction{Opcode: op, Data: s[i+2 : end], Length: 2 + length}, true
	case op == OP_PUSHDATA2:
		// Big-endian length prefix: a deliberate deviation from real
		// Bitcoin Core (which is little-endian here), confirmed by the
		// reference implementation this library was distilled from.
		if i+3 > len(s) {
			return Instruction{Opcode: op, Length: len(s) - i}, false
		}
		length := int(s[i+1])<<8 | int(s[i+2])
		end := i + 3 + length
		if end > len(s) {
			return Instruction{Opcode: op, Length: len(s) - i}, false
		}
		return Instruction{Opcode: op, Data: s[i+3 : end], Length: 3 + length}, true
	case op == OP_PUSHDATA4:
		if i+5 > len(s) {
			return Instruction{Opcode: op, Length: len(s) - i}, false
		}
		length := int(s[i+1])<<24 | int(s[i+2])<<16 | int(s[i+3])<<8 | int(s[i+4])
		end := i + 5 + length
		if end > len(s) || end < i { // guard overflow on 32-bit int platforms
			return Instruction{Opcode: op, Length: len(s) - i}, false
		}
		return Instruction{Opcode: op, Data: s[i+5 : end], Length: 5 + length}, true
	default:
		return Instruction{Opcode: op, Length: 1}, true
	}
}

// Iterator produces a lazy, finite, single-pass sequence of instructions
// over a Script.
type Iterator struct {
	s   Script
	pos int
}

func (s Script) Iterate() *Iterator { return &Iterator{s: s} }

// Next advances the iterator and returns the next instruction. The
// second return value is false once the script is exhausted.
func (it *Iterator) Next() (Instruction, bool) {
	if it.pos >= len(it.s) {
		return Instruction{}, false
	}
	inst, ok := instructionAt(it.s, it.pos)
	if !ok {
		// Stop iteration at the first truncated instruction; Valid
		// reports this script as invalid.
		it.pos = len(it.s)
		return Instruction{}, false
	}
	it.pos += inst.Length
	return inst, true
}

// Valid reports whether every instruction's declared payload is fully
// contained within the script, per spec.md §4.2.
func (s Script) Valid() bool {
	i := 0
	for i < len(s) {
		inst, ok := instructionAt(s, i)
		if !ok {
			return false
		}
		i += inst.Length
	}
	return true
}

// Instructions collects every instruction in the script; it does not
// check Valid first, so the returned slice may be short if the script is
// malformed (iteration simply stops at the first bad instruction).
func (s Script) Instructions() []Instruction {
	var out []Instruction
	it := s.Iterate()
	for {
		inst, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, inst)
	}
	return out
}

// Deserialize reads a Script from src: a varint length followed by that
// many raw bytes, per the general length-prefixed container rule in
// spec.md §4.1.
func Deserialize(src serialize.Source, maxLen uint64) (Script, error) {
	b, err := serialize.ReadVarBytes(src, maxLen)
	if err != nil {
		return nil, err
	}
	return Script(b), nil
}

// Serialize writes a Script as a varint length followed by its raw bytes.
func (s Script) Serialize(sink serialize.Sink) error {
	return serialize.WriteVarBytes(sink, []byte(s))
}
