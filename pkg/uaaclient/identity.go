// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package uaaclient

import (
	"context"
	"fmt"
)

// IdentityProviders manages identity provider registrations. The listing is
// not paginated, the UAA returns all providers of the zone as a plain array.
type IdentityProviders interface {
	List(ctx context.Context) ([]IdentityProvider, error)
	Delete(ctx context.Context, providerID string) error
}

// IdentityZones manages identity zone registrations. Like providers, zones
// are listed as a plain array without pagination.
type IdentityZones interface {
	List(ctx context.Context) ([]IdentityZone, error)
	Delete(ctx context.Context, zoneID string) error
}

type identityProviders struct {
	*client
}

func (p *identityProviders) List(ctx context.Context) ([]IdentityProvider, error) {
	var res []IdentityProvider
	if err := p.get(ctx, "/identity-providers", nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (p *identityProviders) Delete(ctx context.Context, providerID string) error {
	return p.delete(ctx, fmt.Sprintf("/identity-providers/%s", providerID))
}

type identityZones struct {
	*client
}

func (z *identityZones) List(ctx context.Context) ([]IdentityZone, error) {
	var res []IdentityZone
	if err := z.get(ctx, "/identity-zones", nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (z *identityZones) Delete(ctx context.Context, zoneID string) error {
	return z.delete(ctx, fmt.Sprintf("/identity-zones/%s", zoneID))
}
