// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package cleaner

import (
	"context"

	"github.com/anwarchk/cf-cleaner/pkg/uaaclient"
)

// cleanGroups removes fixture groups one by one. Groups nest through their
// membership lists and the identity management API rejects deleting a group
// that is still a member of another, so member groups go first and the
// deletes run sequentially.
func (c *Cleaner) cleanGroups(ctx context.Context) error {
	all, err := collect(indexedPages(ctx, func(ctx context.Context, startIndex int) ([]uaaclient.Group, int, int, error) {
		res, err := c.uaa.Groups().List(ctx, startIndex)
		if err != nil {
			return nil, 0, 0, err
		}
		return res.Resources, res.ItemsPerPage, res.TotalResults, nil
	}))
	if err != nil {
		return err
	}

	var fixtures []uaaclient.Group
	for _, group := range all {
		if c.names.IsGroupName(group.DisplayName) {
			fixtures = append(fixtures, group)
		}
	}
	if len(fixtures) == 0 {
		return nil
	}

	for _, group := range orderGroups(fixtures) {
		group := group
		task := c.attempt(kindGroups, group.DisplayName, func(ctx context.Context) error {
			return c.uaa.Groups().Delete(ctx, group.ID)
		})
		if err := task(ctx); err != nil {
			return err
		}
	}
	return nil
}

// orderGroups sorts the groups so that a member group precedes every group
// containing it, to arbitrary nesting depth. Membership cycles cannot be
// ordered; whatever remains keeps its listed order.
func orderGroups(groups []uaaclient.Group) []uaaclient.Group {
	index := make(map[string]int, len(groups))
	for i, group := range groups {
		index[group.ID] = i
	}

	containers := make([][]int, len(groups))
	pending := make([]int, len(groups))
	for i, group := range groups {
		for _, member := range group.Members {
			m, ok := index[member.Value]
			if !ok {
				continue
			}
			containers[m] = append(containers[m], i)
			pending[i]++
		}
	}

	queue := make([]int, 0, len(groups))
	for i := range groups {
		if pending[i] == 0 {
			queue = append(queue, i)
		}
	}

	ordered := make([]uaaclient.Group, 0, len(groups))
	emitted := make([]bool, len(groups))
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		emitted[i] = true
		ordered = append(ordered, groups[i])
		for _, container := range containers[i] {
			pending[container]--
			if pending[container] == 0 {
				queue = append(queue, container)
			}
		}
	}
	for i, group := range groups {
		if !emitted[i] {
			ordered = append(ordered, group)
		}
	}
	return ordered
}
