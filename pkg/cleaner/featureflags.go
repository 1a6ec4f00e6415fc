// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package cleaner

import (
	"context"

	"github.com/gardener/gardener/pkg/utils/flow"
)

// standardFeatureFlags is the feature flag baseline of a pristine test
// installation. Flags outside this set stay untouched.
var standardFeatureFlags = map[string]bool{
	"app_bits_upload":           true,
	"app_scaling":               true,
	"diego_docker":              true,
	"private_domain_creation":   true,
	"route_creation":            true,
	"service_instance_creation": true,
	"set_roles_by_username":     true,
	"unset_roles_by_username":   true,
	"user_org_creation":         false,
}

// normalizeFeatureFlags resets every known feature flag that a test run left
// in a non-standard state.
func (c *Cleaner) normalizeFeatureFlags(ctx context.Context) error {
	flags, err := c.cf.FeatureFlags().List(ctx)
	if err != nil {
		return err
	}

	var tasks []flow.TaskFn
	for _, flag := range flags {
		expected, known := standardFeatureFlags[flag.Name]
		if !known || flag.Enabled == expected {
			continue
		}
		flag := flag
		tasks = append(tasks, c.attempt(kindFeatureFlags, flag.Name, func(ctx context.Context) error {
			return c.cf.FeatureFlags().Set(ctx, flag.Name, expected)
		}))
	}
	if len(tasks) == 0 {
		return nil
	}
	return flow.Parallel(tasks...)(ctx)
}
