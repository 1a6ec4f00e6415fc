// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package cleaner

import (
	"context"
	"iter"
)

// pagedList fetches one 1-based page of a listing and reports the total page
// count of the collection.
type pagedList[T any] func(ctx context.Context, page int) (items []T, totalPages int, err error)

// pages walks a page-numbered listing lazily. The sequence restarts from the
// first page every time it is ranged over; a listing error ends the sequence
// with that error as its final element.
func pages[T any](ctx context.Context, list pagedList[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		for page := 1; ; page++ {
			items, totalPages, err := list(ctx, page)
			if err != nil {
				yield(zero, err)
				return
			}
			for _, item := range items {
				if !yield(item, nil) {
					return
				}
			}
			if page >= totalPages {
				return
			}
		}
	}
}

// indexedList fetches one slice of records starting at the 1-based record
// index and reports the page size and the total record count.
type indexedList[T any] func(ctx context.Context, startIndex int) (items []T, itemsPerPage, totalResults int, err error)

// indexedPages walks a record-indexed listing, advancing the start index by
// the server-reported page size until the total record count is exhausted.
func indexedPages[T any](ctx context.Context, list indexedList[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		startIndex := 1
		for {
			items, perPage, total, err := list(ctx, startIndex)
			if err != nil {
				yield(zero, err)
				return
			}
			for _, item := range items {
				if !yield(item, nil) {
					return
				}
			}
			if perPage <= 0 || len(items) == 0 {
				return
			}
			startIndex += perPage
			if startIndex > total {
				return
			}
		}
	}
}

// items adapts an unpaginated listing to the sequence shape of the paged ones.
func items[T any](list func() ([]T, error)) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		out, err := list()
		if err != nil {
			yield(zero, err)
			return
		}
		for _, item := range out {
			if !yield(item, nil) {
				return
			}
		}
	}
}

// collect materializes a listing before any deletes start, so removals cannot
// shift pages under a running iteration.
func collect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	var out []T
	for item, err := range seq {
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}
