// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package cleaner

import (
	"context"
	"time"

	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/anwarchk/cf-cleaner/pkg/cfclient"
	cferrors "github.com/anwarchk/cf-cleaner/pkg/common/error"
	"github.com/anwarchk/cf-cleaner/pkg/names"
)

var _ = Describe("waitForJob", func() {
	var (
		rec *recorder
		cf  *fakeCF
		c   *Cleaner
	)

	BeforeEach(func() {
		rec = &recorder{}
		cf = newFakeCF(rec)
		c = New(logr.Discard(), cf, newFakeUAA(rec), names.NewFactory("test"),
			WithJobPollInterval(time.Millisecond),
			WithJobPollTimeout(50*time.Millisecond))
	})

	It("accepts a missing handle", func() {
		Expect(c.waitForJob(context.Background(), nil)).To(Succeed())
	})

	It("settles an already finished handle without polling", func() {
		Expect(c.waitForJob(context.Background(), finishedJob("job-1"))).To(Succeed())
		Expect(rec.list()).To(BeEmpty())
	})

	It("settles an already failed handle without polling", func() {
		job := &cfclient.Job{Entity: cfclient.JobEntity{GUID: "job-1", Status: cfclient.JobStatusFailed, Error: "boom"}}

		err := c.waitForJob(context.Background(), job)
		Expect(err).To(HaveOccurred())
		Expect(cferrors.IsJobFailed(err)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("boom"))
		Expect(rec.list()).To(BeEmpty())
	})

	It("polls a queued job until it finishes", func() {
		cf.jobPolls["job-1"] = []cfclient.JobStatus{cfclient.JobStatusQueued, cfclient.JobStatusRunning, cfclient.JobStatusFinished}

		Expect(c.waitForJob(context.Background(), pendingJob("job-1"))).To(Succeed())
		Expect(rec.count("poll job-1")).To(Equal(3))
	})

	It("reports a job that fails while polling", func() {
		cf.jobPolls["job-1"] = []cfclient.JobStatus{cfclient.JobStatusRunning, cfclient.JobStatusFailed}

		err := c.waitForJob(context.Background(), pendingJob("job-1"))
		Expect(err).To(HaveOccurred())
		Expect(cferrors.IsJobFailed(err)).To(BeTrue())
	})

	It("reports a job that never reaches a terminal state", func() {
		cf.jobPolls["job-1"] = []cfclient.JobStatus{cfclient.JobStatusRunning}

		err := c.waitForJob(context.Background(), pendingJob("job-1"))
		Expect(err).To(HaveOccurred())
		Expect(cferrors.IsJobTimeout(err)).To(BeTrue())
	})
})
