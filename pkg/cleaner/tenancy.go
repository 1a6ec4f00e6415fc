// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package cleaner

import (
	"context"
	"iter"

	"github.com/anwarchk/cf-cleaner/pkg/cfclient"
)

func (c *Cleaner) cleanSpaceQuotas(ctx context.Context) error {
	return clean(ctx, c, resourceKind[cfclient.QuotaResource]{
		kind: kindSpaceQuotas,
		list: func(ctx context.Context) iter.Seq2[cfclient.QuotaResource, error] {
			return pages(ctx, func(ctx context.Context, page int) ([]cfclient.QuotaResource, int, error) {
				res, err := c.cf.SpaceQuotas().List(ctx, cfclient.ListQuotasRequest{Page: page})
				if err != nil {
					return nil, 0, err
				}
				return res.Resources, res.TotalPages, nil
			})
		},
		matches: func(item cfclient.QuotaResource) bool {
			return c.names.IsQuotaDefinitionName(item.Entity.Name)
		},
		name: func(item cfclient.QuotaResource) string { return item.Entity.Name },
		remove: func(ctx context.Context, item cfclient.QuotaResource) error {
			return c.deleteAndWait(ctx, c.cf.SpaceQuotas().Delete, item.Metadata.GUID)
		},
	})
}

// cleanSpaces deletes recursively, which also sweeps anything a test run left
// inside a fixture space under a non-fixture name.
func (c *Cleaner) cleanSpaces(ctx context.Context) error {
	return clean(ctx, c, resourceKind[cfclient.SpaceResource]{
		kind: kindSpaces,
		list: func(ctx context.Context) iter.Seq2[cfclient.SpaceResource, error] {
			return pages(ctx, func(ctx context.Context, page int) ([]cfclient.SpaceResource, int, error) {
				res, err := c.cf.Spaces().List(ctx, cfclient.ListSpacesRequest{Page: page})
				if err != nil {
					return nil, 0, err
				}
				return res.Resources, res.TotalPages, nil
			})
		},
		matches: func(item cfclient.SpaceResource) bool { return c.names.IsSpaceName(item.Entity.Name) },
		name:    func(item cfclient.SpaceResource) string { return item.Entity.Name },
		remove: func(ctx context.Context, item cfclient.SpaceResource) error {
			return c.deleteAndWait(ctx, c.cf.Spaces().Delete, item.Metadata.GUID)
		},
	})
}

func (c *Cleaner) cleanOrganizations(ctx context.Context) error {
	return clean(ctx, c, resourceKind[cfclient.OrganizationResource]{
		kind: kindOrganizations,
		list: func(ctx context.Context) iter.Seq2[cfclient.OrganizationResource, error] {
			return pages(ctx, func(ctx context.Context, page int) ([]cfclient.OrganizationResource, int, error) {
				res, err := c.cf.Organizations().List(ctx, cfclient.ListOrganizationsRequest{Page: page})
				if err != nil {
					return nil, 0, err
				}
				return res.Resources, res.TotalPages, nil
			})
		},
		matches: func(item cfclient.OrganizationResource) bool {
			return c.names.IsOrganizationName(item.Entity.Name)
		},
		name: func(item cfclient.OrganizationResource) string { return item.Entity.Name },
		remove: func(ctx context.Context, item cfclient.OrganizationResource) error {
			return c.deleteAndWait(ctx, c.cf.Organizations().Delete, item.Metadata.GUID)
		},
	})
}

func (c *Cleaner) cleanOrganizationQuotas(ctx context.Context) error {
	return clean(ctx, c, resourceKind[cfclient.QuotaResource]{
		kind: kindOrganizationQuotas,
		list: func(ctx context.Context) iter.Seq2[cfclient.QuotaResource, error] {
			return pages(ctx, func(ctx context.Context, page int) ([]cfclient.QuotaResource, int, error) {
				res, err := c.cf.OrganizationQuotas().List(ctx, cfclient.ListQuotasRequest{Page: page})
				if err != nil {
					return nil, 0, err
				}
				return res.Resources, res.TotalPages, nil
			})
		},
		matches: func(item cfclient.QuotaResource) bool {
			return c.names.IsQuotaDefinitionName(item.Entity.Name)
		},
		name: func(item cfclient.QuotaResource) string { return item.Entity.Name },
		remove: func(ctx context.Context, item cfclient.QuotaResource) error {
			return c.deleteAndWait(ctx, c.cf.OrganizationQuotas().Delete, item.Metadata.GUID)
		},
	})
}
