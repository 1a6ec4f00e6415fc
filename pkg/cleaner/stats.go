// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package cleaner

import (
	"io"
	"sort"
	"strconv"
	"sync"

	"github.com/olekukonko/tablewriter"
)

// KindStats counts the outcomes of delete attempts for one resource kind.
type KindStats struct {
	Deleted int
	Failed  int
}

type runStats struct {
	mu    sync.Mutex
	kinds map[string]KindStats
}

func newRunStats() *runStats {
	return &runStats{kinds: map[string]KindStats{}}
}

func (s *runStats) deleted(kind string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := s.kinds[kind]
	entry.Deleted++
	s.kinds[kind] = entry
}

func (s *runStats) failed(kind string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := s.kinds[kind]
	entry.Failed++
	s.kinds[kind] = entry
}

func (s *runStats) snapshot() map[string]KindStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]KindStats, len(s.kinds))
	for kind, entry := range s.kinds {
		out[kind] = entry
	}
	return out
}

// Stats returns the counters collected so far, keyed by resource kind.
func (c *Cleaner) Stats() map[string]KindStats {
	return c.stats.snapshot()
}

// RenderStats writes the per-kind counters as a table.
func (c *Cleaner) RenderStats(writer io.Writer) error {
	stats := c.stats.snapshot()
	kinds := make([]string, 0, len(stats))
	for kind := range stats {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	content := make([][]string, 0, len(kinds))
	for _, kind := range kinds {
		entry := stats[kind]
		content = append(content, []string{kind, strconv.Itoa(entry.Deleted), strconv.Itoa(entry.Failed)})
	}

	table := tablewriter.NewWriter(writer)
	table.Header("Kind", "Deleted", "Failed")
	if err := table.Bulk(content); err != nil {
		return err
	}
	return table.Render()
}
