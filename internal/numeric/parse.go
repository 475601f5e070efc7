package numeric

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	apperrors "github.com/agbru/numcalc/internal/errors"
)

// maxLineSize bounds a single input line read by ReadValues.
const maxLineSize = 1 << 20

// ParseValues converts tokens into float64 values. Any token strconv accepts
// is valid, including "Inf", "NaN" and exponent forms.
func ParseValues(tokens []string) ([]float64, error) {
	values := make([]float64, 0, len(tokens))
	for i, tok := range tokens {
		v, err := parseToken(tok)
		if err != nil {
			return nil, apperrors.ValidationError{
				Field:   fmt.Sprintf("values[%d]", i),
				Message: fmt.Sprintf("%q is not a number", tok),
			}
		}
		values = append(values, v)
	}
	return values, nil
}

// IsNumber reports whether tok is a well-formed number. Literals beyond
// the float64 range count as numbers.
func IsNumber(tok string) bool {
	_, err := parseToken(tok)
	return err == nil
}

// parseToken parses tok as a float64. A well-formed literal out of range
// yields ±Inf rather than an error.
func parseToken(tok string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
	if errors.Is(err, strconv.ErrRange) {
		return v, nil
	}
	return v, err
}

// ReadValues reads whitespace or comma separated numbers from r. A '#'
// starts a comment that runs to the end of the line.
func ReadValues(r io.Reader) ([]float64, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var tokens []string
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if idx := strings.IndexByte(text, '#'); idx >= 0 {
			text = text[:idx]
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\r'
		})
		for _, f := range fields {
			if !IsNumber(f) {
				return nil, apperrors.ValidationError{
					Field:   fmt.Sprintf("line %d", line),
					Message: fmt.Sprintf("%q is not a number", f),
				}
			}
			tokens = append(tokens, f)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, apperrors.WrapError(err, "reading values")
	}
	return ParseValues(tokens)
}
