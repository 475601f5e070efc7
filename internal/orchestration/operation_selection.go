package orchestration

import (
	"github.com/agbru/numcalc/internal/config"
	"github.com/agbru/numcalc/internal/numeric"
)

// GetOperationsToRun resolves the --op selection against the factory.
// "all" yields every registered operation in name order; an unknown name
// yields nil.
func GetOperationsToRun(selection string, factory numeric.OperationFactory) []numeric.Operation {
	if selection == config.OpAll {
		return factory.GetAll()
	}
	if op, err := factory.Get(selection); err == nil {
		return []numeric.Operation{op}
	}
	return nil
}
