// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package cfclient

import (
	"context"
	"net/http"
)

// ServiceInstances exposes the managed service instance operations of the
// cleanup pipeline. Deletion is asynchronous.
type ServiceInstances interface {
	List(ctx context.Context, req ListServiceInstancesRequest) (*ListServiceInstancesResponse, error)
	Delete(ctx context.Context, serviceInstanceGUID string) (*Job, error)
}

// UserProvidedServiceInstances exposes the user provided service instance
// operations of the cleanup pipeline. Deletion is synchronous.
type UserProvidedServiceInstances interface {
	List(ctx context.Context, req ListServiceInstancesRequest) (*ListServiceInstancesResponse, error)
	Delete(ctx context.Context, serviceInstanceGUID string) error
}

type ServiceInstanceEntity struct {
	Name      string `json:"name"`
	SpaceGUID string `json:"space_guid"`
}

type ServiceInstanceResource struct {
	Metadata Metadata              `json:"metadata"`
	Entity   ServiceInstanceEntity `json:"entity"`
}

type ListServiceInstancesRequest struct {
	Page int
}

type ListServiceInstancesResponse struct {
	ListMeta
	Resources []ServiceInstanceResource `json:"resources"`
}

type serviceInstances struct {
	*client
}

func (s *serviceInstances) List(ctx context.Context, req ListServiceInstancesRequest) (*ListServiceInstancesResponse, error) {
	out := &ListServiceInstancesResponse{}
	if err := s.get(ctx, "/v2/service_instances", pageQuery(req.Page), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *serviceInstances) Delete(ctx context.Context, serviceInstanceGUID string) (*Job, error) {
	job := &Job{}
	if err := s.do(ctx, http.MethodDelete, "/v2/service_instances/"+serviceInstanceGUID, asyncQuery(), nil, job); err != nil {
		return nil, err
	}
	return job, nil
}

type userProvidedServiceInstances struct {
	*client
}

func (s *userProvidedServiceInstances) List(ctx context.Context, req ListServiceInstancesRequest) (*ListServiceInstancesResponse, error) {
	out := &ListServiceInstancesResponse{}
	if err := s.get(ctx, "/v2/user_provided_service_instances", pageQuery(req.Page), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *userProvidedServiceInstances) Delete(ctx context.Context, serviceInstanceGUID string) error {
	return s.do(ctx, http.MethodDelete, "/v2/user_provided_service_instances/"+serviceInstanceGUID, nil, nil, nil)
}
