package main

import (
	"fmt"
	"strconv"
	"strings"
)

// Radix selects an output rendering for reported values.
type Radix int

// Supported output radixes.
const (
	Decimal     Radix = 10
	Hexadecimal Radix = 16
	Octal       Radix = 8
	Binary      Radix = 2
)

// AllRadixes lists every supported radix in report order.
var AllRadixes = []Radix{Decimal, Hexadecimal, Octal, Binary}

var radixNames = map[Radix]string{
	Decimal:     "dec",
	Hexadecimal: "hex",
	Octal:       "oct",
	Binary:      "bin",
}

var radixPrefixes = map[Radix]string{
	Hexadecimal: "0x",
	Octal:       "0o",
	Binary:      "0b",
}

func (r Radix) String() string {
	if name, ok := radixNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Radix(%d)", int(r))
}

// Format renders val as sign, prefix, then magnitude digits; e.g. -255 in
// Hexadecimal is "-0xff". The result parses back to val as a literal.
func (r Radix) Format(val int64) string {
	mag := uint64(val)
	sign := ""
	if val < 0 {
		mag = -mag
		sign = "-"
	}
	return sign + radixPrefixes[r] + strconv.FormatUint(mag, int(r))
}

// ParseRadix parses a radix name like "hex", or a base number like "16".
func ParseRadix(s string) (Radix, error) {
	for r, name := range radixNames {
		if s == name || s == strconv.Itoa(int(r)) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unsupported radix %q", s)
}

// radixList implements flag.Value around a comma separated list of radixes,
// with "all" standing for AllRadixes.
type radixList []Radix

func (rl radixList) String() string {
	parts := make([]string, len(rl))
	for i, r := range rl {
		parts[i] = r.String()
	}
	return strings.Join(parts, ",")
}

func (rl *radixList) Set(s string) error {
	var radixes radixList
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "all" {
			radixes = append(radixes, AllRadixes...)
			continue
		}
		r, err := ParseRadix(part)
		if err != nil {
			return err
		}
		radixes = append(radixes, r)
	}
	*rl = radixes
	return nil
}

// format renders val in every listed radix, separated by tabs.
func (rl radixList) format(val int64) string {
	if len(rl) == 0 {
		return Decimal.Format(val)
	}
	var sb strings.Builder
	for i, r := range rl {
		if i > 0 {
			sb.WriteByte('\t')
		}
		sb.WriteString(r.Format(val))
	}
	return sb.String()
}
