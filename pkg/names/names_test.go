// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package names_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/anwarchk/cf-cleaner/pkg/names"
)

var _ = Describe("name factory", func() {
	factory := names.NewFactory("test")

	It("recognizes the names it generates", func() {
		Expect(factory.IsApplicationName(factory.ApplicationName())).To(BeTrue())
		Expect(factory.IsBuildpackName(factory.BuildpackName())).To(BeTrue())
		Expect(factory.IsClientID(factory.ClientID())).To(BeTrue())
		Expect(factory.IsDomainName(factory.DomainName())).To(BeTrue())
		Expect(factory.IsGroupName(factory.GroupName())).To(BeTrue())
		Expect(factory.IsHostName(factory.HostName())).To(BeTrue())
		Expect(factory.IsIdentityProviderName(factory.IdentityProviderName())).To(BeTrue())
		Expect(factory.IsIdentityZoneName(factory.IdentityZoneName())).To(BeTrue())
		Expect(factory.IsOrganizationName(factory.OrganizationName())).To(BeTrue())
		Expect(factory.IsQuotaDefinitionName(factory.QuotaDefinitionName())).To(BeTrue())
		Expect(factory.IsSecurityGroupName(factory.SecurityGroupName())).To(BeTrue())
		Expect(factory.IsServiceInstanceName(factory.ServiceInstanceName())).To(BeTrue())
		Expect(factory.IsSpaceName(factory.SpaceName())).To(BeTrue())
		Expect(factory.IsUserName(factory.UserName())).To(BeTrue())
		Expect(factory.IsUserID(factory.UserID())).To(BeTrue())
	})

	It("generates unique names", func() {
		Expect(factory.SpaceName()).ToNot(Equal(factory.SpaceName()))
	})

	It("does not confuse kinds", func() {
		Expect(factory.IsSpaceName(factory.OrganizationName())).To(BeFalse())
		Expect(factory.IsApplicationName(factory.HostName())).To(BeFalse())
	})

	It("keeps user names and minted user ids apart", func() {
		Expect(factory.IsUserName(factory.UserID())).To(BeFalse())
		Expect(factory.IsUserID(factory.UserName())).To(BeFalse())
	})

	DescribeTable("classification by prefix",
		func(name string, expected bool) {
			Expect(factory.IsOrganizationName(name)).To(Equal(expected))
		},
		Entry("fixture name", "test-organization-4f2a", true),
		Entry("foreign name", "production", false),
		Entry("other prefix", "perf-organization-4f2a", false),
		Entry("missing separator", "test-organization", false),
		Entry("empty", "", false),
	)

	It("falls back to the default prefix", func() {
		defaulted := names.NewFactory("")
		Expect(defaulted.IsSpaceName(factory.SpaceName())).To(BeTrue())
	})
})
