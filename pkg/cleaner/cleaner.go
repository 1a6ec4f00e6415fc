// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package cleaner removes the remnants of integration test runs from a
// Cloud Foundry installation. Test fixtures are recognized by their name
// prefix; everything else on the platform is left untouched.
package cleaner

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"time"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"

	"github.com/anwarchk/cf-cleaner/pkg/cfclient"
	cferrors "github.com/anwarchk/cf-cleaner/pkg/common/error"
	"github.com/anwarchk/cf-cleaner/pkg/names"
	"github.com/anwarchk/cf-cleaner/pkg/uaaclient"
)

const (
	// DefaultTimeout bounds one whole cleanup including its retries.
	DefaultTimeout = 30 * time.Minute
	// DefaultJobPollInterval is the delay between two polls of an asynchronous job.
	DefaultJobPollInterval = 5 * time.Second
	// DefaultJobPollTimeout bounds the wait for a single asynchronous job.
	DefaultJobPollTimeout = 5 * time.Minute

	// maxRunAttempts is the number of whole-run attempts granted when the
	// platform terminates connections during the handshake.
	maxRunAttempts = 5
)

const (
	kindApplicationsV2               = "applications"
	kindApplicationsV3               = "v3 applications"
	kindBuildpacks                   = "buildpacks"
	kindClients                      = "clients"
	kindFeatureFlags                 = "feature flags"
	kindGroups                       = "groups"
	kindIdentityProviders            = "identity providers"
	kindIdentityUsers                = "identity users"
	kindIdentityZones                = "identity zones"
	kindOrganizationQuotas           = "organization quotas"
	kindOrganizations                = "organizations"
	kindPackages                     = "packages"
	kindPlatformUsers                = "users"
	kindPrivateDomains               = "private domains"
	kindRoutes                       = "routes"
	kindSecurityGroups               = "security groups"
	kindServiceInstances             = "service instances"
	kindSharedDomains                = "shared domains"
	kindSpaceQuotas                  = "space quotas"
	kindSpaces                       = "spaces"
	kindUserProvidedServiceInstances = "user provided service instances"
)

// Cleaner deletes leftover test fixtures from a platform installation and
// resets its feature flags to the standard test baseline.
type Cleaner struct {
	log   logr.Logger
	cf    cfclient.Client
	uaa   uaaclient.Client
	names names.Factory

	timeout         time.Duration
	jobPollInterval time.Duration
	jobPollTimeout  time.Duration

	stats *runStats
}

// Option adjusts the timing behavior of a Cleaner.
type Option func(*Cleaner)

// WithTimeout overrides the deadline of a whole cleanup.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Cleaner) { c.timeout = timeout }
}

// WithJobPollInterval overrides the delay between two job polls.
func WithJobPollInterval(interval time.Duration) Option {
	return func(c *Cleaner) { c.jobPollInterval = interval }
}

// WithJobPollTimeout overrides the wait budget of a single job.
func WithJobPollTimeout(timeout time.Duration) Option {
	return func(c *Cleaner) { c.jobPollTimeout = timeout }
}

// New creates a Cleaner working against the given platform and identity
// management clients. The name factory decides which remote objects count as
// test fixtures.
func New(log logr.Logger, cf cfclient.Client, uaa uaaclient.Client, nameFactory names.Factory, opts ...Option) *Cleaner {
	c := &Cleaner{
		log:             log,
		cf:              cf,
		uaa:             uaa,
		names:           nameFactory,
		timeout:         DefaultTimeout,
		jobPollInterval: DefaultJobPollInterval,
		jobPollTimeout:  DefaultJobPollTimeout,
		stats:           newRunStats(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Clean runs the full cleanup under the configured deadline. Transport
// security faults abort the current pass and the whole pipeline is started
// over, up to maxRunAttempts passes in total. Every other error ends the
// cleanup immediately.
func (c *Cleaner) Clean(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	for attempt := 1; ; attempt++ {
		err := c.run(ctx)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return cferrors.NewDeadlineExceededError("cleanup did not finish in time", err)
		}
		if !isTransportSecurityFault(err) {
			return err
		}
		if attempt == maxRunAttempts {
			return cferrors.NewRetryBudgetExhaustedError("cleanup kept failing with transport security faults", err)
		}
		c.log.Info("restarting cleanup after transport security fault", "attempt", attempt, "error", err.Error())
	}
}

// run performs one pass over all resource kinds. The order respects the
// containment and reference structure of the platform: contained resources go
// before their containers, referencing resources before their referents.
func (c *Cleaner) run(ctx context.Context) error {
	steps := []struct {
		description string
		fn          func(context.Context) error
	}{
		{"clean up buildpacks", c.cleanBuildpacks},
		{"normalize feature flags", c.normalizeFeatureFlags},
		{"clean up routes", c.cleanRoutes},
		{"clean up users", c.cleanPlatformUsers},
		{"clean up applications", c.cleanApplicationsV2},
		{"clean up v3 applications", c.cleanApplicationsV3},
		{"clean up packages", c.cleanPackages},
		{"clean up security groups", c.cleanSecurityGroups},
		{"clean up service instances", c.cleanServiceInstances},
		{"clean up user provided service instances", c.cleanUserProvidedServiceInstances},
		{"clean up shared domains", c.cleanSharedDomains},
		{"clean up private domains", c.cleanPrivateDomains},
		{"clean up identity providers", c.cleanIdentityProviders},
		{"clean up identity zones", c.cleanIdentityZones},
		{"clean up groups", c.cleanGroups},
		{"clean up identity users", c.cleanIdentityUsers},
		{"clean up clients", c.cleanClients},
		{"clean up space quotas", c.cleanSpaceQuotas},
		{"clean up spaces", c.cleanSpaces},
		{"clean up organizations", c.cleanOrganizations},
		{"clean up organization quotas", c.cleanOrganizationQuotas},
	}

	for _, step := range steps {
		if err := step.fn(ctx); err != nil {
			return errors.Wrapf(err, "unable to %s", step.description)
		}
	}
	return nil
}

// isTransportSecurityFault reports whether the error chain carries a TLS
// handshake or certificate verification failure. Test installations recycle
// their routers and certificates between runs, which surfaces exactly here.
func isTransportSecurityFault(err error) bool {
	var (
		recordHeaderErr tls.RecordHeaderError
		certVerifyErr   *tls.CertificateVerificationError
		alertErr        tls.AlertError
		unknownAuthErr  x509.UnknownAuthorityError
		hostnameErr     x509.HostnameError
		certInvalidErr  x509.CertificateInvalidError
	)
	return errors.As(err, &recordHeaderErr) ||
		errors.As(err, &certVerifyErr) ||
		errors.As(err, &alertErr) ||
		errors.As(err, &unknownAuthErr) ||
		errors.As(err, &hostnameErr) ||
		errors.As(err, &certInvalidErr)
}
