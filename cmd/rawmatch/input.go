package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// readNeedle and readHaystack decide on whether a source flag was given, not
// on its value: an explicit empty value is an empty input.
func (o *findOptions) readNeedle(given func(string) bool) ([]byte, error) {
	switch {
	case given("needle") && given("needle-hex"):
		return nil, errors.New("--needle and --needle-hex are mutually exclusive")
	case given("needle-hex"):
		b, err := decodeHex(o.needleHex)
		if err != nil {
			return nil, fmt.Errorf("invalid --needle-hex: %w", err)
		}
		return b, nil
	default:
		// an empty needle is valid input, it just never matches
		return []byte(o.needle), nil
	}
}

func (o *findOptions) readHaystack(given func(string) bool, stdin io.Reader) ([]byte, error) {
	set := 0
	for _, name := range []string{"haystack", "haystack-hex", "haystack-file"} {
		if given(name) {
			set++
		}
	}
	if set > 1 {
		return nil, errors.New("only one of --haystack, --haystack-hex and --haystack-file may be given")
	}

	switch {
	case given("haystack"):
		return []byte(o.haystack), nil
	case given("haystack-hex"):
		b, err := decodeHex(o.haystackHex)
		if err != nil {
			return nil, fmt.Errorf("invalid --haystack-hex: %w", err)
		}
		return b, nil
	case given("haystack-file"):
		b, err := os.ReadFile(o.haystackFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read haystack: %w", err)
		}
		return b, nil
	default:
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read haystack from stdin: %w", err)
		}
		return b, nil
	}
}

// decodeHex accepts hex with optional whitespace or colons between bytes.
func decodeHex(s string) ([]byte, error) {
	s = strings.NewReplacer(" ", "", "\t", "", "\n", "", ":", "").Replace(s)
	return hex.DecodeString(s)
}
