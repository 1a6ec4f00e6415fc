// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package cleaner

import (
	"context"

	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/anwarchk/cf-cleaner/pkg/cfclient"
	"github.com/anwarchk/cf-cleaner/pkg/names"
)

var _ = Describe("normalizeFeatureFlags", func() {
	var (
		rec *recorder
		cf  *fakeCF
		c   *Cleaner
	)

	BeforeEach(func() {
		rec = &recorder{}
		cf = newFakeCF(rec)
		c = New(logr.Discard(), cf, newFakeUAA(rec), names.NewFactory("test"))
	})

	It("resets only the known flags that deviate from the baseline", func() {
		cf.featureFlags = []cfclient.FeatureFlag{
			{Name: "diego_docker", Enabled: false},
			{Name: "user_org_creation", Enabled: true},
			{Name: "app_scaling", Enabled: true},
			{Name: "some_new_flag", Enabled: false},
		}

		Expect(c.normalizeFeatureFlags(context.Background())).To(Succeed())

		events := rec.list()
		Expect(events).To(ContainElement("set diego_docker=true"))
		Expect(events).To(ContainElement("set user_org_creation=false"))
		Expect(events).ToNot(ContainElement("set app_scaling=true"))
		Expect(events).ToNot(ContainElement(HavePrefix("set some_new_flag")))
	})

	It("does nothing when the platform matches the baseline", func() {
		cf.featureFlags = []cfclient.FeatureFlag{
			{Name: "diego_docker", Enabled: true},
			{Name: "user_org_creation", Enabled: false},
		}

		Expect(c.normalizeFeatureFlags(context.Background())).To(Succeed())

		Expect(rec.list()).To(Equal([]string{"list feature flags"}))
	})
})
