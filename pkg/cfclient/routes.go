// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package cfclient

import (
	"context"
	"fmt"
	"net/http"
)

// Routes exposes the route operations of the cleanup pipeline.
// Route deletion is asynchronous.
type Routes interface {
	List(ctx context.Context, req ListRoutesRequest) (*ListRoutesResponse, error)
	Delete(ctx context.Context, routeGUID string) (*Job, error)
}

type RouteEntity struct {
	Host       string `json:"host"`
	Path       string `json:"path"`
	Port       *int   `json:"port"`
	DomainGUID string `json:"domain_guid"`
	SpaceGUID  string `json:"space_guid"`
}

// Name renders the route the way it appears on the platform,
// host.domain[:port][/path], for diagnostics.
func (e RouteEntity) Name(domainName string) string {
	name := domainName
	if e.Host != "" {
		name = fmt.Sprintf("%s.%s", e.Host, domainName)
	}
	if e.Port != nil {
		name = fmt.Sprintf("%s:%d", name, *e.Port)
	}
	return name + e.Path
}

type RouteResource struct {
	Metadata Metadata    `json:"metadata"`
	Entity   RouteEntity `json:"entity"`
}

type ListRoutesRequest struct {
	Page int
}

type ListRoutesResponse struct {
	ListMeta
	Resources []RouteResource `json:"resources"`
}

type routes struct {
	*client
}

func (s *routes) List(ctx context.Context, req ListRoutesRequest) (*ListRoutesResponse, error) {
	out := &ListRoutesResponse{}
	if err := s.get(ctx, "/v2/routes", pageQuery(req.Page), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *routes) Delete(ctx context.Context, routeGUID string) (*Job, error) {
	job := &Job{}
	if err := s.do(ctx, http.MethodDelete, "/v2/routes/"+routeGUID, asyncQuery(), nil, job); err != nil {
		return nil, err
	}
	return job, nil
}
