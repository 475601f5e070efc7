package numeric

import (
	"fmt"
	"math"
	"strconv"

	apperrors "github.com/agbru/numcalc/internal/errors"
)

// ValidateFinite reports the first NaN or infinite entry of values as an
// apperrors.ValidationError.
func ValidateFinite(values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return apperrors.ValidationError{
				Field:   fmt.Sprintf("values[%d]", i),
				Message: "non-finite value " + strconv.FormatFloat(v, 'g', -1, 64),
			}
		}
	}
	return nil
}
