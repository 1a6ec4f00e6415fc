// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package cfclient

import (
	"context"
)

// Jobs exposes the status of remote long-running operations.
type Jobs interface {
	Get(ctx context.Context, jobGUID string) (*Job, error)
}

type jobs struct {
	*client
}

func (s *jobs) Get(ctx context.Context, jobGUID string) (*Job, error) {
	job := &Job{}
	if err := s.get(ctx, "/v2/jobs/"+jobGUID, nil, job); err != nil {
		return nil, err
	}
	return job, nil
}
