// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package uaaclient

import (
	"context"
	"fmt"
)

// Clients manages OAuth client registrations.
type Clients interface {
	List(ctx context.Context, startIndex int) (*ListOAuthClientsResponse, error)
	Delete(ctx context.Context, clientID string) error
}

// ListOAuthClientsResponse is the paginated listing of client registrations.
type ListOAuthClientsResponse struct {
	ListMeta
	Resources []OAuthClient `json:"resources"`
}

type clients struct {
	*client
}

func (c *clients) List(ctx context.Context, startIndex int) (*ListOAuthClientsResponse, error) {
	res := &ListOAuthClientsResponse{}
	if err := c.get(ctx, "/oauth/clients", startIndexQuery(startIndex), res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *clients) Delete(ctx context.Context, clientID string) error {
	return c.delete(ctx, fmt.Sprintf("/oauth/clients/%s", clientID))
}
