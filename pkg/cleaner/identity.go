// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package cleaner

import (
	"context"
	"iter"

	"github.com/anwarchk/cf-cleaner/pkg/uaaclient"
)

func (c *Cleaner) cleanIdentityProviders(ctx context.Context) error {
	return clean(ctx, c, resourceKind[uaaclient.IdentityProvider]{
		kind: kindIdentityProviders,
		list: func(ctx context.Context) iter.Seq2[uaaclient.IdentityProvider, error] {
			return items(func() ([]uaaclient.IdentityProvider, error) {
				return c.uaa.IdentityProviders().List(ctx)
			})
		},
		matches: func(item uaaclient.IdentityProvider) bool {
			return c.names.IsIdentityProviderName(item.Name)
		},
		name: func(item uaaclient.IdentityProvider) string { return item.Name },
		remove: func(ctx context.Context, item uaaclient.IdentityProvider) error {
			return c.uaa.IdentityProviders().Delete(ctx, item.ID)
		},
	})
}

func (c *Cleaner) cleanIdentityZones(ctx context.Context) error {
	return clean(ctx, c, resourceKind[uaaclient.IdentityZone]{
		kind: kindIdentityZones,
		list: func(ctx context.Context) iter.Seq2[uaaclient.IdentityZone, error] {
			return items(func() ([]uaaclient.IdentityZone, error) {
				return c.uaa.IdentityZones().List(ctx)
			})
		},
		matches: func(item uaaclient.IdentityZone) bool { return c.names.IsIdentityZoneName(item.Name) },
		name:    func(item uaaclient.IdentityZone) string { return item.Name },
		remove: func(ctx context.Context, item uaaclient.IdentityZone) error {
			return c.uaa.IdentityZones().Delete(ctx, item.ID)
		},
	})
}

// cleanIdentityUsers removes the identity-side user records, the counterpart
// of the platform user sweep.
func (c *Cleaner) cleanIdentityUsers(ctx context.Context) error {
	return clean(ctx, c, resourceKind[uaaclient.User]{
		kind: kindIdentityUsers,
		list: func(ctx context.Context) iter.Seq2[uaaclient.User, error] {
			return indexedPages(ctx, func(ctx context.Context, startIndex int) ([]uaaclient.User, int, int, error) {
				res, err := c.uaa.Users().List(ctx, startIndex)
				if err != nil {
					return nil, 0, 0, err
				}
				return res.Resources, res.ItemsPerPage, res.TotalResults, nil
			})
		},
		matches: func(item uaaclient.User) bool { return c.names.IsUserName(item.UserName) },
		name:    func(item uaaclient.User) string { return item.UserName },
		remove: func(ctx context.Context, item uaaclient.User) error {
			return c.uaa.Users().Delete(ctx, item.ID)
		},
	})
}

func (c *Cleaner) cleanClients(ctx context.Context) error {
	return clean(ctx, c, resourceKind[uaaclient.OAuthClient]{
		kind: kindClients,
		list: func(ctx context.Context) iter.Seq2[uaaclient.OAuthClient, error] {
			return indexedPages(ctx, func(ctx context.Context, startIndex int) ([]uaaclient.OAuthClient, int, int, error) {
				res, err := c.uaa.Clients().List(ctx, startIndex)
				if err != nil {
					return nil, 0, 0, err
				}
				return res.Resources, res.ItemsPerPage, res.TotalResults, nil
			})
		},
		matches: func(item uaaclient.OAuthClient) bool { return c.names.IsClientID(item.ClientID) },
		name:    func(item uaaclient.OAuthClient) string { return item.ClientID },
		remove: func(ctx context.Context, item uaaclient.OAuthClient) error {
			return c.uaa.Clients().Delete(ctx, item.ClientID)
		},
	})
}
