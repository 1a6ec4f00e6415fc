// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package cfclient

// Metadata is the envelope of every v2 resource.
type Metadata struct {
	GUID string `json:"guid"`
	URL  string `json:"url"`
}

// ListMeta carries the pagination metadata of a v2 listing response.
type ListMeta struct {
	TotalResults int `json:"total_results"`
	TotalPages   int `json:"total_pages"`
}

// V3Pagination carries the pagination metadata of a v3 listing response.
type V3Pagination struct {
	TotalResults int `json:"total_results"`
	TotalPages   int `json:"total_pages"`
}

// JobStatus is the state of a remote long-running operation.
type JobStatus string

const (
	JobStatusQueued   JobStatus = "queued"
	JobStatusRunning  JobStatus = "running"
	JobStatusFinished JobStatus = "finished"
	JobStatusFailed   JobStatus = "failed"
)

// Job is the handle returned by asynchronous delete calls.
type Job struct {
	Metadata Metadata  `json:"metadata"`
	Entity   JobEntity `json:"entity"`
}

type JobEntity struct {
	GUID         string           `json:"guid"`
	Status       JobStatus        `json:"status"`
	Error        string           `json:"error,omitempty"`
	ErrorDetails *JobErrorDetails `json:"error_details,omitempty"`
}

type JobErrorDetails struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
	ErrorCode   string `json:"error_code"`
}

// Terminal reports whether the job reached one of its terminal states.
func (j *Job) Terminal() bool {
	return j.Entity.Status == JobStatusFinished || j.Entity.Status == JobStatusFailed
}
