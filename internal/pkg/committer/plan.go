// Package committer collects Spanner mutations produced by repositories and
// applies them as one atomic commit.
//
// Repositories never write to the database themselves; they return mutations.
// Use cases gather those mutations into a CommitPlan together with any outbox
// events, then hand the plan to the Committer. Either every mutation in the
// plan commits or none of them do, which is what keeps orders, order items,
// stock decrements and cart deletions consistent with each other.
//
// Use cases that must read inside the transaction (checkout re-reads stock,
// the bulk repricer reads every product row) use InTransaction and buffer
// their plan on the supplied read-write transaction instead.
package committer

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
)

// CommitPlan is an ordered collection of Spanner mutations to be applied
// atomically.
type CommitPlan struct {
	mutations []*spanner.Mutation
}

// NewPlan creates a new empty CommitPlan.
func NewPlan() *CommitPlan {
	return &CommitPlan{
		mutations: make([]*spanner.Mutation, 0),
	}
}

// Add adds a mutation to the plan. Nil mutations are ignored so repositories
// can return nil when an aggregate has no changes.
func (cp *CommitPlan) Add(mut *spanner.Mutation) {
	if mut != nil {
		cp.mutations = append(cp.mutations, mut)
	}
}

// AddMultiple adds multiple mutations to the plan.
func (cp *CommitPlan) AddMultiple(muts []*spanner.Mutation) {
	for _, mut := range muts {
		cp.Add(mut)
	}
}

// Mutations returns all collected mutations.
func (cp *CommitPlan) Mutations() []*spanner.Mutation {
	return cp.mutations
}

// IsEmpty returns true if the plan has no mutations.
func (cp *CommitPlan) IsEmpty() bool {
	return len(cp.mutations) == 0
}

// Count returns the number of mutations in the plan.
func (cp *CommitPlan) Count() int {
	return len(cp.mutations)
}

// Buffer writes all mutations in the plan onto an open read-write
// transaction. The plan commits or rolls back with that transaction.
func (cp *CommitPlan) Buffer(txn *spanner.ReadWriteTransaction) error {
	if cp.IsEmpty() {
		return nil
	}
	return txn.BufferWrite(cp.mutations)
}

// Committer executes CommitPlans against Spanner.
type Committer struct {
	client *spanner.Client
}

// NewCommitter creates a new Committer.
func NewCommitter(client *spanner.Client) *Committer {
	return &Committer{client: client}
}

// Apply commits the plan in a single blind write. Suitable when no reads are
// needed inside the transaction.
func (c *Committer) Apply(ctx context.Context, plan *CommitPlan) error {
	if plan.IsEmpty() {
		return nil
	}

	_, err := c.client.Apply(ctx, plan.Mutations())
	if err != nil {
		return fmt.Errorf("failed to apply commit plan: %w", err)
	}

	return nil
}

// InTransaction runs fn inside a Spanner read-write transaction. Reads
// performed through the transaction take shared locks, so two concurrent
// checkouts touching the same product rows serialize against each other.
// Returning an error from fn rolls back everything buffered on the
// transaction. Spanner may invoke fn more than once on aborts; fn must be
// safe to re-run.
func (c *Committer) InTransaction(ctx context.Context, fn func(context.Context, *spanner.ReadWriteTransaction) error) error {
	_, err := c.client.ReadWriteTransaction(ctx, fn)
	return err
}
