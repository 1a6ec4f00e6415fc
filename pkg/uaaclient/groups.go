// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package uaaclient

import (
	"context"
	"fmt"
)

// Groups manages SCIM group records.
type Groups interface {
	List(ctx context.Context, startIndex int) (*ListGroupsResponse, error)
	Delete(ctx context.Context, groupID string) error
}

// ListGroupsResponse is the paginated listing of group records.
type ListGroupsResponse struct {
	ListMeta
	Resources []Group `json:"resources"`
}

type groups struct {
	*client
}

func (g *groups) List(ctx context.Context, startIndex int) (*ListGroupsResponse, error) {
	res := &ListGroupsResponse{}
	if err := g.get(ctx, "/Groups", startIndexQuery(startIndex), res); err != nil {
		return nil, err
	}
	return res, nil
}

func (g *groups) Delete(ctx context.Context, groupID string) error {
	return g.deleteAnyVersion(ctx, fmt.Sprintf("/Groups/%s", groupID))
}
