// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package cfclient

import (
	"context"
	"net/http"
)

// Packages exposes the v3 package operations of the cleanup pipeline.
// Package deletion is synchronous.
type Packages interface {
	List(ctx context.Context, req ListPackagesRequest) (*ListPackagesResponse, error)
	Delete(ctx context.Context, packageGUID string) error
}

type Package struct {
	GUID  string `json:"guid"`
	Type  string `json:"type"`
	State string `json:"state"`
}

type ListPackagesRequest struct {
	Page int
}

type ListPackagesResponse struct {
	Pagination V3Pagination `json:"pagination"`
	Resources  []Package    `json:"resources"`
}

type packages struct {
	*client
}

func (s *packages) List(ctx context.Context, req ListPackagesRequest) (*ListPackagesResponse, error) {
	out := &ListPackagesResponse{}
	if err := s.get(ctx, "/v3/packages", perPageQuery(req.Page), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *packages) Delete(ctx context.Context, packageGUID string) error {
	return s.do(ctx, http.MethodDelete, "/v3/packages/"+packageGUID, nil, nil, nil)
}
