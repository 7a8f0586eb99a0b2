package internal

import "github.com/pkg/errors"

// StackDepth is the number of return addresses the call stack can hold.
const StackDepth = 16

// callStack is a fixed capacity stack of return addresses.
type callStack struct {
	data [StackDepth]uint16
	sp   uint8
}

func (s *callStack) push(addr uint16) error {
	if int(s.sp) == len(s.data) {
		return errors.Wrapf(ErrStackOverflow, "depth %d", StackDepth)
	}
	s.data[s.sp] = addr
	s.sp++
	return nil
}

func (s *callStack) pop() (uint16, error) {
	if s.sp == 0 {
		return 0, ErrStackUnderflow
	}
	s.sp--
	return s.data[s.sp], nil
}

func (s *callStack) depth() int {
	return int(s.sp)
}
