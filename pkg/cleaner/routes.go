// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package cleaner

import (
	"context"
	"iter"

	"github.com/anwarchk/cf-cleaner/pkg/cfclient"
)

// cleanRoutes removes routes that belong to a test run. A route carries no
// name of its own, so it counts as a fixture when it sits on a fixture domain
// or when its host was minted for a fixture application or host.
func (c *Cleaner) cleanRoutes(ctx context.Context) error {
	domainNames, err := c.domainNamesByGUID(ctx)
	if err != nil {
		return err
	}

	return clean(ctx, c, resourceKind[cfclient.RouteResource]{
		kind: kindRoutes,
		list: func(ctx context.Context) iter.Seq2[cfclient.RouteResource, error] {
			return pages(ctx, func(ctx context.Context, page int) ([]cfclient.RouteResource, int, error) {
				res, err := c.cf.Routes().List(ctx, cfclient.ListRoutesRequest{Page: page})
				if err != nil {
					return nil, 0, err
				}
				return res.Resources, res.TotalPages, nil
			})
		},
		matches: func(item cfclient.RouteResource) bool {
			return c.names.IsDomainName(domainNames[item.Entity.DomainGUID]) ||
				c.names.IsApplicationName(item.Entity.Host) ||
				c.names.IsHostName(item.Entity.Host)
		},
		name: func(item cfclient.RouteResource) string {
			return item.Entity.Name(domainNames[item.Entity.DomainGUID])
		},
		remove: func(ctx context.Context, item cfclient.RouteResource) error {
			return c.deleteAndWait(ctx, c.cf.Routes().Delete, item.Metadata.GUID)
		},
	})
}

// domainNamesByGUID merges the private and shared domain listings into one
// lookup table for route classification.
func (c *Cleaner) domainNamesByGUID(ctx context.Context) (map[string]string, error) {
	table := map[string]string{}

	private, err := collect(pages(ctx, func(ctx context.Context, page int) ([]cfclient.DomainResource, int, error) {
		res, err := c.cf.Domains().ListPrivate(ctx, cfclient.ListDomainsRequest{Page: page})
		if err != nil {
			return nil, 0, err
		}
		return res.Resources, res.TotalPages, nil
	}))
	if err != nil {
		return nil, err
	}
	shared, err := collect(pages(ctx, func(ctx context.Context, page int) ([]cfclient.DomainResource, int, error) {
		res, err := c.cf.Domains().ListShared(ctx, cfclient.ListDomainsRequest{Page: page})
		if err != nil {
			return nil, 0, err
		}
		return res.Resources, res.TotalPages, nil
	}))
	if err != nil {
		return nil, err
	}

	for _, domain := range append(private, shared...) {
		table[domain.Metadata.GUID] = domain.Entity.Name
	}
	return table, nil
}
