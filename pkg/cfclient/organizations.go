// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package cfclient

import (
	"context"
	"net/http"
)

// Organizations exposes the organization operations of the cleanup pipeline.
// Organization deletion is asynchronous and recursive.
type Organizations interface {
	List(ctx context.Context, req ListOrganizationsRequest) (*ListOrganizationsResponse, error)
	Delete(ctx context.Context, organizationGUID string) (*Job, error)
}

// Spaces exposes the space operations of the cleanup pipeline.
// Space deletion is asynchronous and recursive.
type Spaces interface {
	List(ctx context.Context, req ListSpacesRequest) (*ListSpacesResponse, error)
	Delete(ctx context.Context, spaceGUID string) (*Job, error)
}

type OrganizationEntity struct {
	Name                string `json:"name"`
	QuotaDefinitionGUID string `json:"quota_definition_guid,omitempty"`
}

type OrganizationResource struct {
	Metadata Metadata           `json:"metadata"`
	Entity   OrganizationEntity `json:"entity"`
}

type ListOrganizationsRequest struct {
	Page int
}

type ListOrganizationsResponse struct {
	ListMeta
	Resources []OrganizationResource `json:"resources"`
}

type SpaceEntity struct {
	Name             string `json:"name"`
	OrganizationGUID string `json:"organization_guid"`
}

type SpaceResource struct {
	Metadata Metadata    `json:"metadata"`
	Entity   SpaceEntity `json:"entity"`
}

type ListSpacesRequest struct {
	Page int
}

type ListSpacesResponse struct {
	ListMeta
	Resources []SpaceResource `json:"resources"`
}

type organizations struct {
	*client
}

func (s *organizations) List(ctx context.Context, req ListOrganizationsRequest) (*ListOrganizationsResponse, error) {
	out := &ListOrganizationsResponse{}
	if err := s.get(ctx, "/v2/organizations", pageQuery(req.Page), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *organizations) Delete(ctx context.Context, organizationGUID string) (*Job, error) {
	job := &Job{}
	query := asyncQuery()
	query.Set("recursive", "true")
	if err := s.do(ctx, http.MethodDelete, "/v2/organizations/"+organizationGUID, query, nil, job); err != nil {
		return nil, err
	}
	return job, nil
}

type spaces struct {
	*client
}

func (s *spaces) List(ctx context.Context, req ListSpacesRequest) (*ListSpacesResponse, error) {
	out := &ListSpacesResponse{}
	if err := s.get(ctx, "/v2/spaces", pageQuery(req.Page), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *spaces) Delete(ctx context.Context, spaceGUID string) (*Job, error) {
	job := &Job{}
	query := asyncQuery()
	query.Set("recursive", "true")
	if err := s.do(ctx, http.MethodDelete, "/v2/spaces/"+spaceGUID, query, nil, job); err != nil {
		return nil, err
	}
	return job, nil
}
