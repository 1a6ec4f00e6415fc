// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package cfclient

import (
	"context"
	"net/http"
)

// OrganizationQuotas exposes the organization quota definition operations of
// the cleanup pipeline. Deletion is asynchronous.
type OrganizationQuotas interface {
	List(ctx context.Context, req ListQuotasRequest) (*ListQuotasResponse, error)
	Delete(ctx context.Context, quotaGUID string) (*Job, error)
}

// SpaceQuotas exposes the space quota definition operations of the cleanup
// pipeline. Deletion is asynchronous.
type SpaceQuotas interface {
	List(ctx context.Context, req ListQuotasRequest) (*ListQuotasResponse, error)
	Delete(ctx context.Context, quotaGUID string) (*Job, error)
}

type QuotaEntity struct {
	Name string `json:"name"`
}

type QuotaResource struct {
	Metadata Metadata    `json:"metadata"`
	Entity   QuotaEntity `json:"entity"`
}

type ListQuotasRequest struct {
	Page int
}

type ListQuotasResponse struct {
	ListMeta
	Resources []QuotaResource `json:"resources"`
}

type organizationQuotas struct {
	*client
}

func (s *organizationQuotas) List(ctx context.Context, req ListQuotasRequest) (*ListQuotasResponse, error) {
	out := &ListQuotasResponse{}
	if err := s.get(ctx, "/v2/quota_definitions", pageQuery(req.Page), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *organizationQuotas) Delete(ctx context.Context, quotaGUID string) (*Job, error) {
	job := &Job{}
	if err := s.do(ctx, http.MethodDelete, "/v2/quota_definitions/"+quotaGUID, asyncQuery(), nil, job); err != nil {
		return nil, err
	}
	return job, nil
}

type spaceQuotas struct {
	*client
}

func (s *spaceQuotas) List(ctx context.Context, req ListQuotasRequest) (*ListQuotasResponse, error) {
	out := &ListQuotasResponse{}
	if err := s.get(ctx, "/v2/space_quota_definitions", pageQuery(req.Page), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *spaceQuotas) Delete(ctx context.Context, quotaGUID string) (*Job, error) {
	job := &Job{}
	if err := s.do(ctx, http.MethodDelete, "/v2/space_quota_definitions/"+quotaGUID, asyncQuery(), nil, job); err != nil {
		return nil, err
	}
	return job, nil
}
