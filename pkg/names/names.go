// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package names

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// DefaultPrefix marks all resources created by the integration test suites.
const DefaultPrefix = "test"

// Factory decides whether a remote object was created by a test run.
// One predicate per resource kind; all predicates are pure and side-effect free.
type Factory interface {
	IsApplicationName(name string) bool
	IsBuildpackName(name string) bool
	IsClientID(id string) bool
	IsDomainName(name string) bool
	IsGroupName(name string) bool
	IsHostName(name string) bool
	IsIdentityProviderName(name string) bool
	IsIdentityZoneName(name string) bool
	IsOrganizationName(name string) bool
	IsQuotaDefinitionName(name string) bool
	IsSecurityGroupName(name string) bool
	IsServiceInstanceName(name string) bool
	IsSpaceName(name string) bool
	IsUserName(name string) bool
	IsUserID(id string) bool
}

// PrefixedFactory generates fixture names of the shape <prefix>-<kind>-<uuid>
// and classifies names by their prefix.
type PrefixedFactory struct {
	prefix string
}

var _ Factory = &PrefixedFactory{}

// NewFactory creates a name factory for the given fixture prefix.
// An empty prefix selects the DefaultPrefix.
func NewFactory(prefix string) *PrefixedFactory {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &PrefixedFactory{prefix: prefix}
}

// The user ID is the one naming exception: platform user records expose no
// name, so the suites mint the user GUID themselves with the same convention
// and the classifier recognizes it by its tag.

func (f *PrefixedFactory) ApplicationName() string      { return f.newName("application") }
func (f *PrefixedFactory) BuildpackName() string        { return f.newName("buildpack") }
func (f *PrefixedFactory) ClientID() string             { return f.newName("client") }
func (f *PrefixedFactory) DomainName() string           { return f.newName("domain") }
func (f *PrefixedFactory) GroupName() string            { return f.newName("group") }
func (f *PrefixedFactory) HostName() string             { return f.newName("host") }
func (f *PrefixedFactory) IdentityProviderName() string { return f.newName("identity-provider") }
func (f *PrefixedFactory) IdentityZoneName() string     { return f.newName("identity-zone") }
func (f *PrefixedFactory) OrganizationName() string     { return f.newName("organization") }
func (f *PrefixedFactory) QuotaDefinitionName() string  { return f.newName("quota") }
func (f *PrefixedFactory) SecurityGroupName() string    { return f.newName("security-group") }
func (f *PrefixedFactory) ServiceInstanceName() string  { return f.newName("service-instance") }
func (f *PrefixedFactory) SpaceName() string            { return f.newName("space") }
func (f *PrefixedFactory) UserName() string             { return f.newName("user") }
func (f *PrefixedFactory) UserID() string               { return f.newName("user-id") }

func (f *PrefixedFactory) IsApplicationName(name string) bool { return f.matches("application", name) }
func (f *PrefixedFactory) IsBuildpackName(name string) bool   { return f.matches("buildpack", name) }
func (f *PrefixedFactory) IsClientID(id string) bool          { return f.matches("client", id) }
func (f *PrefixedFactory) IsDomainName(name string) bool      { return f.matches("domain", name) }
func (f *PrefixedFactory) IsGroupName(name string) bool       { return f.matches("group", name) }
func (f *PrefixedFactory) IsHostName(name string) bool        { return f.matches("host", name) }
func (f *PrefixedFactory) IsIdentityProviderName(name string) bool {
	return f.matches("identity-provider", name)
}
func (f *PrefixedFactory) IsIdentityZoneName(name string) bool {
	return f.matches("identity-zone", name)
}
func (f *PrefixedFactory) IsOrganizationName(name string) bool {
	return f.matches("organization", name)
}
func (f *PrefixedFactory) IsQuotaDefinitionName(name string) bool { return f.matches("quota", name) }
func (f *PrefixedFactory) IsSecurityGroupName(name string) bool {
	return f.matches("security-group", name)
}
func (f *PrefixedFactory) IsServiceInstanceName(name string) bool {
	return f.matches("service-instance", name)
}
func (f *PrefixedFactory) IsSpaceName(name string) bool { return f.matches("space", name) }
func (f *PrefixedFactory) IsUserID(id string) bool      { return f.matches("user-id", id) }

// IsUserName must not fire on minted user IDs, which share the "user" stem.
func (f *PrefixedFactory) IsUserName(name string) bool {
	return f.matches("user", name) && !f.matches("user-id", name)
}

func (f *PrefixedFactory) newName(kind string) string {
	return fmt.Sprintf("%s-%s-%s", f.prefix, kind, uuid.NewString())
}

func (f *PrefixedFactory) matches(kind, name string) bool {
	return strings.HasPrefix(name, fmt.Sprintf("%s-%s-", f.prefix, kind))
}
