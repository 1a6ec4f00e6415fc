// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package cfclient

import (
	"context"
	"net/http"
)

// Buildpacks exposes the buildpack operations of the cleanup pipeline.
// Buildpack deletion is asynchronous and returns a job handle.
type Buildpacks interface {
	List(ctx context.Context, req ListBuildpacksRequest) (*ListBuildpacksResponse, error)
	Delete(ctx context.Context, buildpackGUID string) (*Job, error)
}

type BuildpackEntity struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

type BuildpackResource struct {
	Metadata Metadata        `json:"metadata"`
	Entity   BuildpackEntity `json:"entity"`
}

type ListBuildpacksRequest struct {
	Page int
}

type ListBuildpacksResponse struct {
	ListMeta
	Resources []BuildpackResource `json:"resources"`
}

type buildpacks struct {
	*client
}

func (s *buildpacks) List(ctx context.Context, req ListBuildpacksRequest) (*ListBuildpacksResponse, error) {
	out := &ListBuildpacksResponse{}
	if err := s.get(ctx, "/v2/buildpacks", pageQuery(req.Page), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *buildpacks) Delete(ctx context.Context, buildpackGUID string) (*Job, error) {
	job := &Job{}
	if err := s.do(ctx, http.MethodDelete, "/v2/buildpacks/"+buildpackGUID, asyncQuery(), nil, job); err != nil {
		return nil, err
	}
	return job, nil
}
