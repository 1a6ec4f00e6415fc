// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package cleaner

import (
	"context"
	"iter"

	"github.com/hashicorp/go-multierror"

	"github.com/anwarchk/cf-cleaner/pkg/cfclient"
)

// cleanApplicationsV2 removes fixture applications. Service bindings block an
// application delete, so each application is unbound first.
func (c *Cleaner) cleanApplicationsV2(ctx context.Context) error {
	return clean(ctx, c, resourceKind[cfclient.ApplicationResource]{
		kind: kindApplicationsV2,
		list: func(ctx context.Context) iter.Seq2[cfclient.ApplicationResource, error] {
			return pages(ctx, func(ctx context.Context, page int) ([]cfclient.ApplicationResource, int, error) {
				res, err := c.cf.ApplicationsV2().List(ctx, cfclient.ListApplicationsRequest{Page: page})
				if err != nil {
					return nil, 0, err
				}
				return res.Resources, res.TotalPages, nil
			})
		},
		matches: func(item cfclient.ApplicationResource) bool {
			return c.names.IsApplicationName(item.Entity.Name)
		},
		name: func(item cfclient.ApplicationResource) string { return item.Entity.Name },
		remove: func(ctx context.Context, item cfclient.ApplicationResource) error {
			if err := c.removeServiceBindings(ctx, item.Metadata.GUID); err != nil {
				return err
			}
			return c.cf.ApplicationsV2().Delete(ctx, item.Metadata.GUID)
		},
	})
}

func (c *Cleaner) removeServiceBindings(ctx context.Context, applicationGUID string) error {
	bindings, err := collect(pages(ctx, func(ctx context.Context, page int) ([]cfclient.ServiceBindingResource, int, error) {
		res, err := c.cf.ApplicationsV2().ListServiceBindings(ctx, cfclient.ListServiceBindingsRequest{
			ApplicationGUID: applicationGUID,
			Page:            page,
		})
		if err != nil {
			return nil, 0, err
		}
		return res.Resources, res.TotalPages, nil
	}))
	if err != nil {
		return err
	}
	var allErrs *multierror.Error
	for _, binding := range bindings {
		if err := c.cf.ApplicationsV2().RemoveServiceBinding(ctx, applicationGUID, binding.Metadata.GUID); err != nil {
			allErrs = multierror.Append(allErrs, err)
		}
	}
	return allErrs.ErrorOrNil()
}

// cleanApplicationsV3 sweeps the v3 surface separately: test suites create
// applications through both API generations and the listings do not fully
// overlap during migrations.
func (c *Cleaner) cleanApplicationsV3(ctx context.Context) error {
	return clean(ctx, c, resourceKind[cfclient.ApplicationV3]{
		kind: kindApplicationsV3,
		list: func(ctx context.Context) iter.Seq2[cfclient.ApplicationV3, error] {
			return pages(ctx, func(ctx context.Context, page int) ([]cfclient.ApplicationV3, int, error) {
				res, err := c.cf.ApplicationsV3().List(ctx, cfclient.ListApplicationsV3Request{Page: page})
				if err != nil {
					return nil, 0, err
				}
				return res.Resources, res.Pagination.TotalPages, nil
			})
		},
		matches: func(item cfclient.ApplicationV3) bool { return c.names.IsApplicationName(item.Name) },
		name:    func(item cfclient.ApplicationV3) string { return item.Name },
		remove: func(ctx context.Context, item cfclient.ApplicationV3) error {
			return c.cf.ApplicationsV3().Delete(ctx, item.GUID)
		},
	})
}
