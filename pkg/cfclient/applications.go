// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package cfclient

import (
	"context"
	"fmt"
	"net/http"
)

// ApplicationsV2 exposes the v2 application operations of the cleanup pipeline.
// Deleting a v2 application requires its service bindings to be removed first.
type ApplicationsV2 interface {
	List(ctx context.Context, req ListApplicationsRequest) (*ListApplicationsResponse, error)
	Delete(ctx context.Context, applicationGUID string) error
	ListServiceBindings(ctx context.Context, req ListServiceBindingsRequest) (*ListServiceBindingsResponse, error)
	RemoveServiceBinding(ctx context.Context, applicationGUID, serviceBindingGUID string) error
}

// ApplicationsV3 exposes the v3 application operations of the cleanup pipeline.
type ApplicationsV3 interface {
	List(ctx context.Context, req ListApplicationsV3Request) (*ListApplicationsV3Response, error)
	Delete(ctx context.Context, applicationGUID string) error
}

type ApplicationEntity struct {
	Name      string `json:"name"`
	SpaceGUID string `json:"space_guid"`
	State     string `json:"state"`
}

type ApplicationResource struct {
	Metadata Metadata          `json:"metadata"`
	Entity   ApplicationEntity `json:"entity"`
}

type ListApplicationsRequest struct {
	Page int
}

type ListApplicationsResponse struct {
	ListMeta
	Resources []ApplicationResource `json:"resources"`
}

type ServiceBindingEntity struct {
	ApplicationGUID     string `json:"app_guid"`
	ServiceInstanceGUID string `json:"service_instance_guid"`
}

type ServiceBindingResource struct {
	Metadata Metadata             `json:"metadata"`
	Entity   ServiceBindingEntity `json:"entity"`
}

type ListServiceBindingsRequest struct {
	ApplicationGUID string
	Page            int
}

type ListServiceBindingsResponse struct {
	ListMeta
	Resources []ServiceBindingResource `json:"resources"`
}

type ApplicationV3 struct {
	GUID  string `json:"guid"`
	Name  string `json:"name"`
	State string `json:"state"`
}

type ListApplicationsV3Request struct {
	Page int
}

type ListApplicationsV3Response struct {
	Pagination V3Pagination    `json:"pagination"`
	Resources  []ApplicationV3 `json:"resources"`
}

type applicationsV2 struct {
	*client
}

func (s *applicationsV2) List(ctx context.Context, req ListApplicationsRequest) (*ListApplicationsResponse, error) {
	out := &ListApplicationsResponse{}
	if err := s.get(ctx, "/v2/apps", pageQuery(req.Page), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *applicationsV2) Delete(ctx context.Context, applicationGUID string) error {
	return s.do(ctx, http.MethodDelete, "/v2/apps/"+applicationGUID, nil, nil, nil)
}

func (s *applicationsV2) ListServiceBindings(ctx context.Context, req ListServiceBindingsRequest) (*ListServiceBindingsResponse, error) {
	out := &ListServiceBindingsResponse{}
	path := fmt.Sprintf("/v2/apps/%s/service_bindings", req.ApplicationGUID)
	if err := s.get(ctx, path, pageQuery(req.Page), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *applicationsV2) RemoveServiceBinding(ctx context.Context, applicationGUID, serviceBindingGUID string) error {
	path := fmt.Sprintf("/v2/apps/%s/service_bindings/%s", applicationGUID, serviceBindingGUID)
	return s.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

type applicationsV3 struct {
	*client
}

func (s *applicationsV3) List(ctx context.Context, req ListApplicationsV3Request) (*ListApplicationsV3Response, error) {
	out := &ListApplicationsV3Response{}
	if err := s.get(ctx, "/v3/apps", perPageQuery(req.Page), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *applicationsV3) Delete(ctx context.Context, applicationGUID string) error {
	return s.do(ctx, http.MethodDelete, "/v3/apps/"+applicationGUID, nil, nil, nil)
}
