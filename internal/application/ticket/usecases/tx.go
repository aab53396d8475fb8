package usecases

import "context"

// TransactionRunner is satisfied by db.TransactionManager. Multi-step writes
// run through it so a failure rolls back every row they touched.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
