// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package uaaclient

import (
	"context"
	"fmt"
)

// Users manages SCIM user records.
type Users interface {
	List(ctx context.Context, startIndex int) (*ListUsersResponse, error)
	Delete(ctx context.Context, userID string) error
}

// ListUsersResponse is the paginated listing of user records.
type ListUsersResponse struct {
	ListMeta
	Resources []User `json:"resources"`
}

type users struct {
	*client
}

func (u *users) List(ctx context.Context, startIndex int) (*ListUsersResponse, error) {
	res := &ListUsersResponse{}
	if err := u.get(ctx, "/Users", startIndexQuery(startIndex), res); err != nil {
		return nil, err
	}
	return res, nil
}

func (u *users) Delete(ctx context.Context, userID string) error {
	return u.deleteAnyVersion(ctx, fmt.Sprintf("/Users/%s", userID))
}
