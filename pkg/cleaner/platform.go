// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package cleaner

import (
	"context"
	"iter"

	"github.com/anwarchk/cf-cleaner/pkg/cfclient"
)

func (c *Cleaner) cleanBuildpacks(ctx context.Context) error {
	return clean(ctx, c, resourceKind[cfclient.BuildpackResource]{
		kind: kindBuildpacks,
		list: func(ctx context.Context) iter.Seq2[cfclient.BuildpackResource, error] {
			return pages(ctx, func(ctx context.Context, page int) ([]cfclient.BuildpackResource, int, error) {
				res, err := c.cf.Buildpacks().List(ctx, cfclient.ListBuildpacksRequest{Page: page})
				if err != nil {
					return nil, 0, err
				}
				return res.Resources, res.TotalPages, nil
			})
		},
		matches: func(item cfclient.BuildpackResource) bool { return c.names.IsBuildpackName(item.Entity.Name) },
		name:    func(item cfclient.BuildpackResource) string { return item.Entity.Name },
		remove: func(ctx context.Context, item cfclient.BuildpackResource) error {
			return c.deleteAndWait(ctx, c.cf.Buildpacks().Delete, item.Metadata.GUID)
		},
	})
}

// cleanPlatformUsers removes the platform-side user records. The records carry
// no usable name, so classification runs on the GUID, which the test suites
// mint themselves.
func (c *Cleaner) cleanPlatformUsers(ctx context.Context) error {
	return clean(ctx, c, resourceKind[cfclient.UserResource]{
		kind: kindPlatformUsers,
		list: func(ctx context.Context) iter.Seq2[cfclient.UserResource, error] {
			return pages(ctx, func(ctx context.Context, page int) ([]cfclient.UserResource, int, error) {
				res, err := c.cf.Users().List(ctx, cfclient.ListUsersRequest{Page: page})
				if err != nil {
					return nil, 0, err
				}
				return res.Resources, res.TotalPages, nil
			})
		},
		matches: func(item cfclient.UserResource) bool { return c.names.IsUserID(item.Metadata.GUID) },
		name: func(item cfclient.UserResource) string {
			if item.Entity.Username != "" {
				return item.Entity.Username
			}
			return item.Metadata.GUID
		},
		remove: func(ctx context.Context, item cfclient.UserResource) error {
			return c.deleteAndWait(ctx, c.cf.Users().Delete, item.Metadata.GUID)
		},
	})
}

// cleanPackages removes all v3 packages unconditionally. Packages are not
// named, and every package in a test installation belongs to a test run.
func (c *Cleaner) cleanPackages(ctx context.Context) error {
	return clean(ctx, c, resourceKind[cfclient.Package]{
		kind: kindPackages,
		list: func(ctx context.Context) iter.Seq2[cfclient.Package, error] {
			return pages(ctx, func(ctx context.Context, page int) ([]cfclient.Package, int, error) {
				res, err := c.cf.Packages().List(ctx, cfclient.ListPackagesRequest{Page: page})
				if err != nil {
					return nil, 0, err
				}
				return res.Resources, res.Pagination.TotalPages, nil
			})
		},
		matches: func(cfclient.Package) bool { return true },
		name:    func(item cfclient.Package) string { return item.GUID },
		remove: func(ctx context.Context, item cfclient.Package) error {
			return c.cf.Packages().Delete(ctx, item.GUID)
		},
	})
}

func (c *Cleaner) cleanSecurityGroups(ctx context.Context) error {
	return clean(ctx, c, resourceKind[cfclient.SecurityGroupResource]{
		kind: kindSecurityGroups,
		list: func(ctx context.Context) iter.Seq2[cfclient.SecurityGroupResource, error] {
			return pages(ctx, func(ctx context.Context, page int) ([]cfclient.SecurityGroupResource, int, error) {
				res, err := c.cf.SecurityGroups().List(ctx, cfclient.ListSecurityGroupsRequest{Page: page})
				if err != nil {
					return nil, 0, err
				}
				return res.Resources, res.TotalPages, nil
			})
		},
		matches: func(item cfclient.SecurityGroupResource) bool {
			return c.names.IsSecurityGroupName(item.Entity.Name)
		},
		name: func(item cfclient.SecurityGroupResource) string { return item.Entity.Name },
		remove: func(ctx context.Context, item cfclient.SecurityGroupResource) error {
			return c.cf.SecurityGroups().Delete(ctx, item.Metadata.GUID)
		},
	})
}

func (c *Cleaner) cleanServiceInstances(ctx context.Context) error {
	return clean(ctx, c, resourceKind[cfclient.ServiceInstanceResource]{
		kind: kindServiceInstances,
		list: func(ctx context.Context) iter.Seq2[cfclient.ServiceInstanceResource, error] {
			return pages(ctx, func(ctx context.Context, page int) ([]cfclient.ServiceInstanceResource, int, error) {
				res, err := c.cf.ServiceInstances().List(ctx, cfclient.ListServiceInstancesRequest{Page: page})
				if err != nil {
					return nil, 0, err
				}
				return res.Resources, res.TotalPages, nil
			})
		},
		matches: func(item cfclient.ServiceInstanceResource) bool {
			return c.names.IsServiceInstanceName(item.Entity.Name)
		},
		name: func(item cfclient.ServiceInstanceResource) string { return item.Entity.Name },
		remove: func(ctx context.Context, item cfclient.ServiceInstanceResource) error {
			return c.deleteAndWait(ctx, c.cf.ServiceInstances().Delete, item.Metadata.GUID)
		},
	})
}

func (c *Cleaner) cleanUserProvidedServiceInstances(ctx context.Context) error {
	return clean(ctx, c, resourceKind[cfclient.ServiceInstanceResource]{
		kind: kindUserProvidedServiceInstances,
		list: func(ctx context.Context) iter.Seq2[cfclient.ServiceInstanceResource, error] {
			return pages(ctx, func(ctx context.Context, page int) ([]cfclient.ServiceInstanceResource, int, error) {
				res, err := c.cf.UserProvidedServiceInstances().List(ctx, cfclient.ListServiceInstancesRequest{Page: page})
				if err != nil {
					return nil, 0, err
				}
				return res.Resources, res.TotalPages, nil
			})
		},
		matches: func(item cfclient.ServiceInstanceResource) bool {
			return c.names.IsServiceInstanceName(item.Entity.Name)
		},
		name: func(item cfclient.ServiceInstanceResource) string { return item.Entity.Name },
		remove: func(ctx context.Context, item cfclient.ServiceInstanceResource) error {
			return c.cf.UserProvidedServiceInstances().Delete(ctx, item.Metadata.GUID)
		},
	})
}
