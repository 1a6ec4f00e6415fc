// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package cleaner

import (
	"context"
	"iter"

	"github.com/anwarchk/cf-cleaner/pkg/cfclient"
)

func (c *Cleaner) cleanSharedDomains(ctx context.Context) error {
	return clean(ctx, c, resourceKind[cfclient.DomainResource]{
		kind: kindSharedDomains,
		list: func(ctx context.Context) iter.Seq2[cfclient.DomainResource, error] {
			return pages(ctx, func(ctx context.Context, page int) ([]cfclient.DomainResource, int, error) {
				res, err := c.cf.Domains().ListShared(ctx, cfclient.ListDomainsRequest{Page: page})
				if err != nil {
					return nil, 0, err
				}
				return res.Resources, res.TotalPages, nil
			})
		},
		matches: func(item cfclient.DomainResource) bool { return c.names.IsDomainName(item.Entity.Name) },
		name:    func(item cfclient.DomainResource) string { return item.Entity.Name },
		remove: func(ctx context.Context, item cfclient.DomainResource) error {
			return c.deleteAndWait(ctx, c.cf.Domains().DeleteShared, item.Metadata.GUID)
		},
	})
}

func (c *Cleaner) cleanPrivateDomains(ctx context.Context) error {
	return clean(ctx, c, resourceKind[cfclient.DomainResource]{
		kind: kindPrivateDomains,
		list: func(ctx context.Context) iter.Seq2[cfclient.DomainResource, error] {
			return pages(ctx, func(ctx context.Context, page int) ([]cfclient.DomainResource, int, error) {
				res, err := c.cf.Domains().ListPrivate(ctx, cfclient.ListDomainsRequest{Page: page})
				if err != nil {
					return nil, 0, err
				}
				return res.Resources, res.TotalPages, nil
			})
		},
		matches: func(item cfclient.DomainResource) bool { return c.names.IsDomainName(item.Entity.Name) },
		name:    func(item cfclient.DomainResource) string { return item.Entity.Name },
		remove: func(ctx context.Context, item cfclient.DomainResource) error {
			return c.deleteAndWait(ctx, c.cf.Domains().DeletePrivate, item.Metadata.GUID)
		},
	})
}
