package service

import "context"

type operatorKey struct{}

// SystemOperator is recorded for changes made without an authenticated caller.
const SystemOperator = "system"

// WithOperator returns a context that attributes registry changes to operator.
func WithOperator(ctx context.Context, operator string) context.Context {
	return context.WithValue(ctx, operatorKey{}, operator)
}

// OperatorFromContext returns the operator stored by WithOperator, or SystemOperator.
func OperatorFromContext(ctx context.Context) string {
	if op, ok := ctx.Value(operatorKey{}).(string); ok && op != "" {
		return op
	}
	return SystemOperator
}
