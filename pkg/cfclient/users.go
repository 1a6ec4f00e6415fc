// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package cfclient

import (
	"context"
	"net/http"
)

// Users exposes the platform user operations of the cleanup pipeline.
// User deletion is asynchronous.
type Users interface {
	List(ctx context.Context, req ListUsersRequest) (*ListUsersResponse, error)
	Delete(ctx context.Context, userGUID string) (*Job, error)
}

type UserEntity struct {
	Username string `json:"username"`
	Active   bool   `json:"active"`
}

type UserResource struct {
	Metadata Metadata   `json:"metadata"`
	Entity   UserEntity `json:"entity"`
}

type ListUsersRequest struct {
	Page int
}

type ListUsersResponse struct {
	ListMeta
	Resources []UserResource `json:"resources"`
}

type users struct {
	*client
}

func (s *users) List(ctx context.Context, req ListUsersRequest) (*ListUsersResponse, error) {
	out := &ListUsersResponse{}
	if err := s.get(ctx, "/v2/users", pageQuery(req.Page), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *users) Delete(ctx context.Context, userGUID string) (*Job, error) {
	job := &Job{}
	if err := s.do(ctx, http.MethodDelete, "/v2/users/"+userGUID, asyncQuery(), nil, job); err != nil {
		return nil, err
	}
	return job, nil
}
