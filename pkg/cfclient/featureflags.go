// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package cfclient

import (
	"context"
	"net/http"
)

// FeatureFlags exposes the platform-wide feature flag operations.
// The listing is not paginated; the platform returns all flags at once.
type FeatureFlags interface {
	List(ctx context.Context) ([]FeatureFlag, error)
	Set(ctx context.Context, name string, enabled bool) error
}

type FeatureFlag struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

type setFeatureFlagRequest struct {
	Enabled bool `json:"enabled"`
}

type featureFlags struct {
	*client
}

func (s *featureFlags) List(ctx context.Context) ([]FeatureFlag, error) {
	out := []FeatureFlag{}
	if err := s.get(ctx, "/v2/config/feature_flags", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *featureFlags) Set(ctx context.Context, name string, enabled bool) error {
	return s.do(ctx, http.MethodPut, "/v2/config/feature_flags/"+name, nil, setFeatureFlagRequest{Enabled: enabled}, nil)
}
