package numeric

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Kind distinguishes scalar results from sequence results.
type Kind int

const (
	// KindScalar marks a Result carrying Total.
	KindScalar Kind = iota
	// KindSequence marks a Result carrying Sorted.
	KindSequence
)

// Result is the outcome of applying an Operation.
type Result struct {
	Kind   Kind
	Total  float64
	Sorted []float64
}

// Options tunes how operations treat their input.
type Options struct {
	// RejectNonFinite makes operations fail on NaN or infinite values
	// instead of propagating them.
	RejectNonFinite bool
}

// Operation is a named computation over a list of values.
type Operation interface {
	Name() string
	Description() string
	Apply(ctx context.Context, values []float64, opts Options) (Result, error)
}

// SumOperation adapts Addition to the Operation interface.
type SumOperation struct{}

func (SumOperation) Name() string        { return "sum" }
func (SumOperation) Description() string { return "arithmetic total of the values" }

// Apply computes the total of values.
func (SumOperation) Apply(ctx context.Context, values []float64, opts Options) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if opts.RejectNonFinite {
		if err := ValidateFinite(values); err != nil {
			return Result{}, err
		}
	}
	return Result{Kind: KindScalar, Total: Addition(values...)}, nil
}

// SortOperation adapts Sort to the Operation interface.
type SortOperation struct{}

func (SortOperation) Name() string        { return "sort" }
func (SortOperation) Description() string { return "values in ascending order" }

// Apply sorts values. The wait is bounded by ctx.
func (SortOperation) Apply(ctx context.Context, values []float64, opts Options) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if opts.RejectNonFinite {
		if err := ValidateFinite(values); err != nil {
			return Result{}, err
		}
	}
	sorted, err := SortAsync(values...).Await(ctx)
	if err != nil {
		return Result{}, err
	}
	return Result{Kind: KindSequence, Sorted: sorted}, nil
}

// OperationFactory is a registry of operations addressable by name.
type OperationFactory interface {
	Register(op Operation) error
	Get(name string) (Operation, error)
	List() []string
	GetAll() []Operation
}

// DefaultFactory is the concurrency-safe OperationFactory implementation.
type DefaultFactory struct {
	mu  sync.RWMutex
	ops map[string]Operation
}

// NewFactory returns an empty factory.
func NewFactory() *DefaultFactory {
	return &DefaultFactory{ops: make(map[string]Operation)}
}

// NewDefaultFactory returns a factory with the built-in operations registered.
func NewDefaultFactory() *DefaultFactory {
	f := NewFactory()
	_ = f.Register(SumOperation{})
	_ = f.Register(SortOperation{})
	return f
}

// Register adds op under its name. Registering a name twice is an error.
func (f *DefaultFactory) Register(op Operation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := op.Name()
	if _, exists := f.ops[name]; exists {
		return fmt.Errorf("operation %q already registered", name)
	}
	f.ops[name] = op
	return nil
}

// Get returns the operation registered under name.
func (f *DefaultFactory) Get(name string) (Operation, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	op, ok := f.ops[name]
	if !ok {
		return nil, fmt.Errorf("unknown operation %q (available: %s)", name, strings.Join(f.listLocked(), ", "))
	}
	return op, nil
}

// List returns the registered names in sorted order.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.listLocked()
}

func (f *DefaultFactory) listLocked() []string {
	names := make([]string, 0, len(f.ops))
	for name := range f.ops {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// GetAll returns every registered operation ordered by name.
func (f *DefaultFactory) GetAll() []Operation {
	f.mu.RLock()
	defer f.mu.RUnlock()
	ops := make([]Operation, 0, len(f.ops))
	for _, name := range f.listLocked() {
		ops = append(ops, f.ops[name])
	}
	return ops
}

var _ OperationFactory = (*DefaultFactory)(nil)
