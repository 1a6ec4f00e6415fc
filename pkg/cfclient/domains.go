// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package cfclient

import (
	"context"
	"net/http"
)

// Domains exposes the shared and private domain operations of the cleanup
// pipeline. Both delete variants are asynchronous.
type Domains interface {
	ListShared(ctx context.Context, req ListDomainsRequest) (*ListDomainsResponse, error)
	DeleteShared(ctx context.Context, domainGUID string) (*Job, error)
	ListPrivate(ctx context.Context, req ListDomainsRequest) (*ListDomainsResponse, error)
	DeletePrivate(ctx context.Context, domainGUID string) (*Job, error)
}

type DomainEntity struct {
	Name                   string `json:"name"`
	OwningOrganizationGUID string `json:"owning_organization_guid,omitempty"`
}

type DomainResource struct {
	Metadata Metadata     `json:"metadata"`
	Entity   DomainEntity `json:"entity"`
}

type ListDomainsRequest struct {
	Page int
}

type ListDomainsResponse struct {
	ListMeta
	Resources []DomainResource `json:"resources"`
}

type domains struct {
	*client
}

func (s *domains) ListShared(ctx context.Context, req ListDomainsRequest) (*ListDomainsResponse, error) {
	out := &ListDomainsResponse{}
	if err := s.get(ctx, "/v2/shared_domains", pageQuery(req.Page), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *domains) DeleteShared(ctx context.Context, domainGUID string) (*Job, error) {
	job := &Job{}
	if err := s.do(ctx, http.MethodDelete, "/v2/shared_domains/"+domainGUID, asyncQuery(), nil, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *domains) ListPrivate(ctx context.Context, req ListDomainsRequest) (*ListDomainsResponse, error) {
	out := &ListDomainsResponse{}
	if err := s.get(ctx, "/v2/private_domains", pageQuery(req.Page), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *domains) DeletePrivate(ctx context.Context, domainGUID string) (*Job, error) {
	job := &Job{}
	if err := s.do(ctx, http.MethodDelete, "/v2/private_domains/"+domainGUID, asyncQuery(), nil, job); err != nil {
		return nil, err
	}
	return job, nil
}
