// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package cleaner

import (
	"context"
	"iter"

	"github.com/gardener/gardener/pkg/utils/flow"
)

// resourceKind describes how one kind of remote resource is listed,
// classified, and removed.
type resourceKind[T any] struct {
	kind    string
	list    func(ctx context.Context) iter.Seq2[T, error]
	matches func(item T) bool
	name    func(item T) string
	remove  func(ctx context.Context, item T) error
}

// clean lists a kind completely, then deletes the matching items in parallel.
// A listing failure aborts the kind; delete failures are settled per item by
// the attempt wrapper.
func clean[T any](ctx context.Context, c *Cleaner, k resourceKind[T]) error {
	all, err := collect(k.list(ctx))
	if err != nil {
		return err
	}

	var tasks []flow.TaskFn
	for _, item := range all {
		if !k.matches(item) {
			continue
		}
		item := item
		tasks = append(tasks, c.attempt(k.kind, k.name(item), func(ctx context.Context) error {
			return k.remove(ctx, item)
		}))
	}
	if len(tasks) == 0 {
		return nil
	}
	return flow.Parallel(tasks...)(ctx)
}

// attempt wraps one delete so that an ordinary failure is counted and logged
// without stopping the rest of the kind. Transport security faults and
// context errors pass through untouched, they have to abort the whole run.
func (c *Cleaner) attempt(kind, name string, fn flow.TaskFn) flow.TaskFn {
	return func(ctx context.Context) error {
		if err := fn(ctx); err != nil {
			if isTransportSecurityFault(err) || ctx.Err() != nil {
				return err
			}
			c.stats.failed(kind)
			c.log.Info("unable to delete resource", "kind", kind, "name", name, "error", err.Error())
			return nil
		}
		c.stats.deleted(kind)
		c.log.V(3).Info("deleted resource", "kind", kind, "name", name)
		return nil
	}
}
