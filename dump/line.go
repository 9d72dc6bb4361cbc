package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"hexdump/ds"
)

const (
	groupSize   = 4
	placeholder = "   "
)

// Line is the chunk read in one iteration, starting at Offset.
type Line struct {
	Offset int64
	Bytes  []byte
}

func formatCell(b byte) string {
	return fmt.Sprintf(" %02X", b)
}

func formatPrintable(b byte) string {
	if b >= 32 && b <= 126 {
		return string(rune(b))
	}
	return "."
}

// FormatLine renders line on a grid of width columns, without the trailing
// newline:
//
//	     7 | 77 6F 72 6C  64 21 0A ...  | world!.
//
// Columns past the end of a short line are left blank so that the ASCII
// column stays aligned.
func FormatLine(line Line, width int) string {
	cells := lo.Map(line.Bytes, func(b byte, _ int) string { return formatCell(b) })
	if len(cells) < width {
		cells = append(cells, ds.Repeat(width-len(cells), placeholder)...)
	}
	groups := lo.Map(
		ds.MakeChunks(cells, groupSize),
		func(group []string, _ int) string { return strings.Join(group, "") },
	)
	printable := lo.Map(line.Bytes, func(b byte, _ int) string { return formatPrintable(b) })

	return fmt.Sprintf(
		"%6X |%s | %s",
		line.Offset,
		strings.Join(groups, " "),
		strings.Join(printable, ""),
	)
}

// WriteLine writes the formatted line followed by a newline in a single call.
func WriteLine(w io.Writer, line Line, width int) error {
	if _, err := io.WriteString(w, FormatLine(line, width)+"\n"); err != nil {
		return NewError(KindWriteFailed, errors.Wrapf(err, "WriteLine error writing line at offset %d", line.Offset))
	}
	return nil
}
