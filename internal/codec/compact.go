package codec

import (
	"fmt"
	"strconv"
	"strings"
)

// Version tags the compact string grammar. A reader accepts exactly what a
// writer of the same version emits.
const Version = "1.0.0"

// CompactString renders the compressed grid as the stable wire form:
//
//	{width}x{height}|{seed}|{theme}|{version}|row|row|...
//
// where each row joins its segments with "," and each segment is
// "terrainId:count".
func (c *CompressedGrid) CompactString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%dx%d|%d|%s|%s", c.Width, c.Height, c.Seed, c.Theme, Version)
	for _, row := range c.Rows {
		b.WriteByte('|')
		for i, seg := range row.Segments {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(seg.Terrain)
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(seg.Count))
		}
	}
	return b.String()
}

// ParseCompactString parses the wire form back into a CompressedGrid,
// rejecting anything CompactString could not have emitted: bad headers,
// row counts that mismatch the declared height, and rows whose run lengths
// do not sum to the declared width.
func ParseCompactString(s string) (*CompressedGrid, error) {
	fields := strings.Split(s, "|")
	if len(fields) < 5 {
		return nil, fmt.Errorf("%w: expected header and rows, got %d fields", ErrMalformed, len(fields))
	}

	width, height, err := parseDimensions(fields[0])
	if err != nil {
		return nil, err
	}
	seed, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil || seed < 0 {
		return nil, fmt.Errorf("%w: invalid seed %q", ErrMalformed, fields[1])
	}
	theme := fields[2]
	if theme == "" {
		return nil, fmt.Errorf("%w: empty theme", ErrMalformed)
	}
	if fields[3] != Version {
		return nil, fmt.Errorf("%w: unsupported version %q", ErrMalformed, fields[3])
	}

	rowFields := fields[4:]
	if len(rowFields) != height {
		return nil, fmt.Errorf("%w: %d rows for declared height %d", ErrMalformed, len(rowFields), height)
	}

	c := &CompressedGrid{
		Width:  width,
		Height: height,
		Rows:   make([]Row, height),
		Seed:   seed,
		Theme:  theme,
	}
	segments := 0
	for y, rowField := range rowFields {
		row, err := parseRow(y, rowField, width)
		if err != nil {
			return nil, err
		}
		segments += len(row.Segments)
		c.Rows[y] = row
	}
	c.CompressionRatio = 1 - float64(segments)/float64(width*height)

	return c, nil
}

// parseDimensions parses the "{width}x{height}" header field.
func parseDimensions(field string) (int, int, error) {
	w, h, ok := strings.Cut(field, "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: invalid dimensions %q", ErrMalformed, field)
	}
	width, err := strconv.Atoi(w)
	if err != nil || width <= 0 {
		return 0, 0, fmt.Errorf("%w: invalid width %q", ErrMalformed, w)
	}
	height, err := strconv.Atoi(h)
	if err != nil || height <= 0 {
		return 0, 0, fmt.Errorf("%w: invalid height %q", ErrMalformed, h)
	}
	return width, height, nil
}

// parseRow parses one "terrain:count,terrain:count" field and checks its
// run lengths sum exactly to the grid width.
func parseRow(y int, field string, width int) (Row, error) {
	row := Row{Y: y}
	total := 0
	for _, segField := range strings.Split(field, ",") {
		terrain, countField, ok := strings.Cut(segField, ":")
		if !ok || terrain == "" {
			return row, fmt.Errorf("%w: row %d has invalid segment %q", ErrMalformed, y, segField)
		}
		count, err := strconv.Atoi(countField)
		if err != nil || count < 1 {
			return row, fmt.Errorf("%w: row %d has invalid run length %q", ErrMalformed, y, countField)
		}
		row.Segments = append(row.Segments, Segment{Terrain: terrain, Count: count})
		total += count
	}
	if total != width {
		return row, fmt.Errorf("%w: row %d runs sum to %d, want %d", ErrMalformed, y, total, width)
	}
	return row, nil
}
