// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package cfclient

import (
	"context"
	"net/http"
)

// SecurityGroups exposes the security group operations of the cleanup
// pipeline. Deletion is synchronous.
type SecurityGroups interface {
	List(ctx context.Context, req ListSecurityGroupsRequest) (*ListSecurityGroupsResponse, error)
	Delete(ctx context.Context, securityGroupGUID string) error
}

type SecurityGroupEntity struct {
	Name string `json:"name"`
}

type SecurityGroupResource struct {
	Metadata Metadata            `json:"metadata"`
	Entity   SecurityGroupEntity `json:"entity"`
}

type ListSecurityGroupsRequest struct {
	Page int
}

type ListSecurityGroupsResponse struct {
	ListMeta
	Resources []SecurityGroupResource `json:"resources"`
}

type securityGroups struct {
	*client
}

func (s *securityGroups) List(ctx context.Context, req ListSecurityGroupsRequest) (*ListSecurityGroupsResponse, error) {
	out := &ListSecurityGroupsResponse{}
	if err := s.get(ctx, "/v2/security_groups", pageQuery(req.Page), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *securityGroups) Delete(ctx context.Context, securityGroupGUID string) error {
	return s.do(ctx, http.MethodDelete, "/v2/security_groups/"+securityGroupGUID, nil, nil, nil)
}
