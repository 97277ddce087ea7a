// Package fileinput reads whitespace-delimited tokens from a queue of input
// streams, tracking the file name and line of every token.
package fileinput

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode"
)

// Location names a line in an Input file.
type Location struct {
	Name string
	Line int
}

// Line combines a Location along with a bytes.Buffer for handling it.
type Line struct {
	Location
	bytes.Buffer
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }
func (il *Line) String() string     { return fmt.Sprintf("%v %q", il.Location, il.Buffer.String()) }

// Input implements sequential rune reading through a Queue of one or more
// input streams. Both the current and last scanned lines are tracked to
// facilitate user feedback.
type Input struct {
	rr    io.RuneReader
	Queue []io.Reader
	Last  Line
	Scan  Line
}

// ReadRune reads one rune from the current input stream, moving on to the
// next queued stream at EOF. Runes are appended into the current Scan line,
// which rolls over to Last after line feed.
func (in *Input) ReadRune() (rune, int, error) {
	for {
		if in.rr == nil && !in.nextIn() {
			return 0, 0, io.EOF
		}
		r, n, err := in.readRune()
		if err == io.EOF {
			in.closeIn()
			continue
		}
		return r, n, err
	}
}

func (in *Input) readRune() (rune, int, error) {
	r, n, err := in.rr.ReadRune()
	if err != nil {
		return 0, n, err
	}
	if r == '\n' {
		in.nextLine()
	} else {
		in.Scan.WriteRune(r)
	}
	return r, n, nil
}

// ScanToken skips any leading space, then reads runes up to the next space or
// the end of the current stream, returning the token and the location where
// it started. Returns io.EOF once all input is consumed.
func (in *Input) ScanToken() (string, Location, error) {
	var (
		sb  bytes.Buffer
		loc Location
	)
	for {
		r, _, err := in.ReadRune()
		if err != nil {
			return "", loc, err
		}
		if !isSpace(r) {
			loc = in.Scan.Location
			sb.WriteRune(r)
			break
		}
	}
	for {
		r, _, err := in.readRune()
		if err == io.EOF {
			in.closeIn()
			break
		} else if err != nil {
			return "", loc, err
		} else if isSpace(r) {
			break
		}
		sb.WriteRune(r)
	}
	return sb.String(), loc, nil
}

func isSpace(r rune) bool { return unicode.IsSpace(r) || unicode.IsControl(r) }

func (in *Input) nextLine() {
	in.Last.Reset()
	in.Last.Name = in.Scan.Name
	in.Last.Line = in.Scan.Line
	in.Last.Write(in.Scan.Bytes())
	in.Scan.Reset()
	in.Scan.Line++
}

func (in *Input) closeIn() {
	if in.Scan.Len() > 0 {
		in.nextLine()
	}
	if cl, ok := in.rr.(io.Closer); ok {
		cl.Close()
	}
	in.rr = nil
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	r := in.Queue[0]
	in.Queue = in.Queue[1:]
	in.rr = newRuneReader(r)
	in.Scan.Name = nameOf(r)
	in.Scan.Line = 1
	return true
}

type runeReader struct {
	io.RuneReader
	io.Closer
}

func newRuneReader(r io.Reader) io.RuneReader {
	var rr io.RuneReader
	if impl, ok := r.(io.RuneReader); ok {
		rr = impl
	} else {
		rr = bufio.NewReader(r)
	}
	if cl, ok := r.(io.Closer); ok {
		return runeReader{rr, cl}
	}
	return rr
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
