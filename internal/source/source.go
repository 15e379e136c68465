// Package source loads the viewed file and measures it in terminal cells.
package source

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// TabWidth is the number of columns a tab expands to
const TabWidth = 4

// File is a text file split into display lines
type File struct {
	Path  string
	Lines []string
	width int
}

// Load reads path into a File
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	file, err := Read(path, f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return file, nil
}

// Read splits r into lines, expanding tabs and dropping carriage returns
func Read(name string, r io.Reader) (*File, error) {
	file := &File{Path: name}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for sc.Scan() {
		file.addLine(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	file.measure()
	return file, nil
}

// FromString builds a File from in-memory text. Lines split the way Read
// splits them, with no length limit.
func FromString(name, text string) *File {
	file := &File{Path: name}
	if text != "" {
		for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
			file.addLine(line)
		}
	}
	file.measure()
	return file
}

func (f *File) addLine(line string) {
	f.Lines = append(f.Lines, expandTabs(strings.TrimRight(line, "\r")))
}

func (f *File) measure() {
	f.width = 0
	for _, l := range f.Lines {
		if w := runewidth.StringWidth(l); w > f.width {
			f.width = w
		}
	}
}

// Name is the base name of the file
func (f *File) Name() string {
	return filepath.Base(f.Path)
}

// LineCount is the number of lines
func (f *File) LineCount() int {
	return len(f.Lines)
}

// Width is the widest line in cells
func (f *File) Width() int {
	return f.width
}

// GutterWidth is the line-number column width including one space of padding
func (f *File) GutterWidth() int {
	return len(strconv.Itoa(max(f.LineCount(), 1))) + 1
}

// LineNumbers returns right-aligned line numbers for the gutter
func (f *File) LineNumbers() []string {
	w := f.GutterWidth() - 1
	nums := make([]string, len(f.Lines))
	for i := range f.Lines {
		nums[i] = fmt.Sprintf("%*d ", w, i+1)
	}
	return nums
}

// Ruler returns a column ruler width cells wide: a digit every ten columns
// and a tick every five.
func Ruler(width int) string {
	var b strings.Builder
	for col := 0; col < width; {
		switch {
		case col%10 == 0:
			label := strconv.Itoa(col)
			if col+len(label) > width {
				label = label[:width-col]
			}
			b.WriteString(label)
			col += len(label)
		case col%5 == 0:
			b.WriteByte('+')
			col++
		default:
			b.WriteByte('.')
			col++
		}
	}
	return b.String()
}

// Slice returns the cells [from, from+width) of s, padded with spaces.
// Wide runes cut by either edge become spaces.
func Slice(s string, from, width int) string {
	if width <= 0 {
		return ""
	}
	if from < 0 {
		from = 0
	}
	var b strings.Builder
	col, out := 0, 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		end := col + rw
		switch {
		case end <= from:
		case col < from:
			// straddles the left edge
			n := min(end-from, width-out)
			b.WriteString(strings.Repeat(" ", n))
			out += n
		case end <= from+width:
			b.WriteRune(r)
			out += rw
		default:
			// straddles the right edge
			n := width - out
			b.WriteString(strings.Repeat(" ", n))
			out += n
		}
		col = end
		if out >= width {
			break
		}
	}
	if out < width {
		b.WriteString(strings.Repeat(" ", width-out))
	}
	return b.String()
}

func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := TabWidth - col%TabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return b.String()
}
