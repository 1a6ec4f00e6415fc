// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package cleaner

import (
	"context"
	"fmt"

	"github.com/gardener/gardener/pkg/utils/retry"

	"github.com/anwarchk/cf-cleaner/pkg/cfclient"
	cferrors "github.com/anwarchk/cf-cleaner/pkg/common/error"
)

// waitForJob blocks until the job behind an asynchronous delete reaches a
// terminal state. A handle that arrived already terminal is settled without a
// single poll.
func (c *Cleaner) waitForJob(ctx context.Context, job *cfclient.Job) error {
	if job == nil {
		return nil
	}
	guid := job.Entity.GUID
	if guid == "" {
		guid = job.Metadata.GUID
	}
	if job.Terminal() {
		return jobOutcome(job, guid)
	}

	err := retry.UntilTimeout(ctx, c.jobPollInterval, c.jobPollTimeout, func(ctx context.Context) (bool, error) {
		current, err := c.cf.Jobs().Get(ctx, guid)
		if err != nil {
			if isTransportSecurityFault(err) {
				return retry.SevereError(err)
			}
			return retry.MinorError(err)
		}
		switch current.Entity.Status {
		case cfclient.JobStatusFinished:
			return retry.Ok()
		case cfclient.JobStatusFailed:
			return retry.SevereError(jobOutcome(current, guid))
		default:
			return retry.NotOk()
		}
	})
	if err == nil || cferrors.IsJobFailed(err) || isTransportSecurityFault(err) {
		return err
	}
	return cferrors.NewJobTimeoutError(fmt.Sprintf("job %s did not finish in time", guid), err)
}

func jobOutcome(job *cfclient.Job, guid string) error {
	if job.Entity.Status != cfclient.JobStatusFailed {
		return nil
	}
	message := fmt.Sprintf("job %s failed", guid)
	if job.Entity.Error != "" {
		message = fmt.Sprintf("%s: %s", message, job.Entity.Error)
	}
	if job.Entity.ErrorDetails != nil && job.Entity.ErrorDetails.Description != "" {
		message = fmt.Sprintf("%s: %s", message, job.Entity.ErrorDetails.Description)
	}
	return cferrors.NewJobFailedError(message)
}

// deleteAndWait runs an asynchronous delete and settles its job.
func (c *Cleaner) deleteAndWait(ctx context.Context, remove func(context.Context, string) (*cfclient.Job, error), guid string) error {
	job, err := remove(ctx, guid)
	if err != nil {
		return err
	}
	return c.waitForJob(ctx, job)
}
