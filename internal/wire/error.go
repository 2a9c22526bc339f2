package wire

import (
	"errors"
	"fmt"
)

// ErrTruncated reports that the payload ended before a required field could
// be fully read. It is returned unchanged from every decode layer.
var ErrTruncated = errors.New("transaction payload truncated")

// ParseError reports a payload that reads structurally but violates a
// protocol rule. The decode that raised it is terminal; no partial record is
// returned.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "parse failed: " + e.Reason
}

// SegwitFlagError reports a witness scheme flag byte this codec does not
// support. Only flag 0x01 is defined.
type SegwitFlagError struct {
	Flag byte
}

func (e *SegwitFlagError) Error() string {
	return fmt.Sprintf("unsupported segwit version: %d", e.Flag)
}
