package imgdim

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// pnmDecoder parses the ASCII header shared by the netpbm family (P1-P6):
// after the magic, any blank lines and '#' comment lines may precede the
// whitespace-delimited width and height tokens.
type pnmDecoder struct{}

func (pnmDecoder) Decode(r io.ReadSeeker) (Size, error) {
	br := bufio.NewReader(r)
	if _, err := br.Discard(2); err != nil {
		return Size{}, missingErr(PNM, "magic number")
	}

	tokens, err := pnmTokens(br)
	if err != nil {
		return Size{}, err
	}

	w, err := strconv.ParseUint(tokens[0], 10, 32)
	if err != nil {
		return Size{}, missingErr(PNM, fmt.Sprintf("width token %q is not a number", tokens[0]))
	}
	h, err := strconv.ParseUint(tokens[1], 10, 32)
	if err != nil {
		return Size{}, missingErr(PNM, fmt.Sprintf("height token %q is not a number", tokens[1]))
	}
	return Size{Width: uint32(w), Height: uint32(h)}, nil
}

// pnmTokens skips blank and comment lines, then collects the first two
// whitespace-delimited tokens. Comments are only recognized before the
// dimension tokens start; a '#' afterwards is an ordinary (non-numeric)
// token.
func pnmTokens(br *bufio.Reader) ([]string, error) {
	var (
		tokens  []string
		started bool
	)
	for len(tokens) < 2 {
		line, err := br.ReadString('\n')
		if !started {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || strings.HasPrefix(trimmed, "#") {
				if err != nil {
					return nil, pnmEOF(err)
				}
				continue
			}
			started = true
		}
		tokens = append(tokens, strings.Fields(line)...)
		if err != nil {
			if len(tokens) >= 2 {
				break
			}
			return nil, pnmEOF(err)
		}
	}
	return tokens, nil
}

func pnmEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return missingErr(PNM, "width/height tokens")
	}
	return &DecodeError{Kind: ErrIO, Format: PNM, Detail: err.Error(), Err: err}
}
