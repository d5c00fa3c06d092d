// Package tolerantcsv parses delimited tabular text that standard CSV
// readers reject: rows with unescaped delimiters inside citation
// fields, short rows, stray quotes. Its contract is data recovery over
// strict validation - no row is ever silently dropped.
// This is a pure package - it operates on strings, not files.
package tolerantcsv

import (
	"regexp"
	"strings"
)

// Row is one logical row of a parsed source.
type Row struct {
	// Fields holds the recovered field values.
	Fields []string

	// Line is the 1-based line number where the row starts.
	Line int

	// Repaired is true when a split citation was re-joined.
	Repaired bool

	// NeedsReview is true when the row still has more fields than
	// expected after repair. Its values may be misaligned.
	NeedsReview bool
}

// Parser splits raw text into rows and fields, repairing the known
// split-citation failure pattern on the way.
type Parser struct {
	delimiter  rune
	quote      rune
	fieldCount int
	sciNameCol int
}

// Option modifies a Parser.
type Option func(*Parser)

// OptFieldCount sets the expected number of fields per row. Shorter
// rows are padded with empty strings; longer rows are repaired or
// flagged for review. Zero disables the check.
func OptFieldCount(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.fieldCount = n
		}
	}
}

// OptSciNameCol sets the 0-based position of the scientific-name
// column, enabling split-citation repair. Negative disables repair.
func OptSciNameCol(i int) Option {
	return func(p *Parser) {
		p.sciNameCol = i
	}
}

// OptDelimiter sets the field delimiter. Default is a comma.
func OptDelimiter(r rune) Option {
	return func(p *Parser) {
		p.delimiter = r
	}
}

// New creates a Parser with the given options.
func New(opts ...Option) *Parser {
	res := &Parser{
		delimiter:  ',',
		quote:      '"',
		sciNameCol: -1,
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

var (
	// Matches a citation left open at the end of a field: an opening
	// parenthesis followed by author text, never closed.
	openCitation = regexp.MustCompile(`\([^,()]+$`)

	// Matches the orphaned tail of a split citation: a four-digit year
	// followed by the closing parenthesis.
	yearTail = regexp.MustCompile(`^(\d{4})\)(.*)$`)
)

// Parse splits raw text into logical rows. A leading byte-order marker
// is stripped before parsing. Quoted fields may span delimiters and
// newlines; a doubled quote inside a quoted field is a literal quote.
func (p *Parser) Parse(text string) []Row {
	text = strings.TrimPrefix(text, "\uFEFF")

	var res []Row
	var fields []string
	var field strings.Builder
	inQuotes := false
	line := 1
	rowLine := 1

	flushRow := func() {
		fields = append(fields, field.String())
		field.Reset()
		// Blank lines are not rows.
		if len(fields) == 1 && strings.TrimSpace(fields[0]) == "" {
			fields = nil
			return
		}
		res = append(res, p.finishRow(fields, rowLine))
		fields = nil
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == p.quote:
			if inQuotes && i+1 < len(runes) && runes[i+1] == p.quote {
				// Escaped literal quote.
				field.WriteRune(p.quote)
				i++
			} else {
				inQuotes = !inQuotes
			}
		case r == p.delimiter && !inQuotes:
			fields = append(fields, field.String())
			field.Reset()
		case r == '\n':
			line++
			if inQuotes {
				field.WriteRune(r)
			} else {
				flushRow()
				rowLine = line
			}
		case r == '\r':
			if inQuotes {
				field.WriteRune(r)
			}
			// Outside quotes the following \n terminates the row.
		default:
			field.WriteRune(r)
		}
	}
	if field.Len() > 0 || len(fields) > 0 {
		flushRow()
	}

	return res
}

// finishRow trims fields, pads short rows, and attempts citation
// repair on over-long rows.
func (p *Parser) finishRow(fields []string, line int) Row {
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	row := Row{Fields: fields, Line: line}
	if p.fieldCount == 0 {
		return row
	}

	if len(row.Fields) > p.fieldCount {
		row = p.repairCitation(row)
	}
	if len(row.Fields) > p.fieldCount {
		row.NeedsReview = true
	}
	for len(row.Fields) < p.fieldCount {
		row.Fields = append(row.Fields, "")
	}
	return row
}

// repairCitation detects the known failure shape where the comma
// inside an author citation split the year into the next field, e.g.
// "... (Motschulsky" followed by "1861)". The two fields are
// re-joined and the remaining fields shift left by one.
func (p *Parser) repairCitation(row Row) Row {
	col := p.sciNameCol
	if col < 0 || col+1 >= len(row.Fields) {
		return row
	}

	sciName := row.Fields[col]
	next := row.Fields[col+1]
	if !openCitation.MatchString(sciName) {
		return row
	}
	m := yearTail.FindStringSubmatch(next)
	if m == nil {
		return row
	}

	year, rest := m[1], m[2]
	fixed := sciName + ", " + year + ")"
	rest = strings.TrimSpace(strings.TrimPrefix(rest, ","))

	fields := make([]string, 0, len(row.Fields)-1)
	fields = append(fields, row.Fields[:col]...)
	fields = append(fields, fixed)
	if rest != "" {
		// The tail field also carried the next column's value.
		fields = append(fields, strings.Trim(rest, `"`))
	}
	fields = append(fields, row.Fields[col+2:]...)

	row.Fields = fields
	row.Repaired = true
	return row
}
