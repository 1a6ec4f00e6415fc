// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package cfclient_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/anwarchk/cf-cleaner/pkg/cfclient"
	cferrors "github.com/anwarchk/cf-cleaner/pkg/common/error"
)

// testServer is a minimal cloud controller that also issues its own tokens.
type testServer struct {
	*httptest.Server

	mux *http.ServeMux

	mu       sync.Mutex
	requests []*url.URL
	headers  []http.Header
}

func newTestServer() *testServer {
	s := &testServer{mux: http.NewServeMux()}
	s.mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token":"test-token","token_type":"bearer","expires_in":3600}`)
	})
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/oauth/token" {
			s.mu.Lock()
			s.requests = append(s.requests, r.URL)
			s.headers = append(s.headers, r.Header.Clone())
			s.mu.Unlock()
		}
		s.mux.ServeHTTP(w, r)
	}))
	return s
}

func (s *testServer) handle(pattern string, handler http.HandlerFunc) {
	s.mux.HandleFunc(pattern, handler)
}

func (s *testServer) lastRequest() *url.URL {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[len(s.requests)-1]
}

func (s *testServer) lastHeader() http.Header {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.headers[len(s.headers)-1]
}

var _ = Describe("cloud controller client", func() {
	var (
		server *testServer
		client cfclient.Client
	)

	BeforeEach(func() {
		server = newTestServer()
		var err error
		client, err = cfclient.NewClient(cfclient.Config{
			APIEndpoint:   server.URL,
			TokenEndpoint: server.URL,
			ClientID:      "admin",
			ClientSecret:  "secret",
		})
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		server.Close()
	})

	It("rejects a configuration without credentials", func() {
		_, err := cfclient.NewClient(cfclient.Config{APIEndpoint: server.URL, TokenEndpoint: server.URL})
		Expect(err).To(HaveOccurred())
	})

	It("authenticates with a bearer token", func() {
		server.handle("/v2/buildpacks", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"total_results":0,"total_pages":0,"resources":[]}`)
		})

		_, err := client.Buildpacks().List(context.Background(), cfclient.ListBuildpacksRequest{Page: 1})
		Expect(err).ToNot(HaveOccurred())
		Expect(server.lastHeader().Get("Authorization")).To(Equal("Bearer test-token"))
	})

	It("sends v2 pagination parameters", func() {
		server.handle("/v2/buildpacks", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"total_results":0,"total_pages":0,"resources":[]}`)
		})

		_, err := client.Buildpacks().List(context.Background(), cfclient.ListBuildpacksRequest{Page: 3})
		Expect(err).ToNot(HaveOccurred())

		query := server.lastRequest().Query()
		Expect(query.Get("page")).To(Equal("3"))
		Expect(query.Get("results-per-page")).To(Equal("100"))
	})

	It("sends v3 pagination parameters", func() {
		server.handle("/v3/packages", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"pagination":{"total_results":0,"total_pages":0},"resources":[]}`)
		})

		_, err := client.Packages().List(context.Background(), cfclient.ListPackagesRequest{Page: 2})
		Expect(err).ToNot(HaveOccurred())

		query := server.lastRequest().Query()
		Expect(query.Get("page")).To(Equal("2"))
		Expect(query.Get("per_page")).To(Equal("100"))
	})

	It("decodes v2 listings", func() {
		server.handle("/v2/organizations", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"total_results":1,"total_pages":1,"resources":[
				{"metadata":{"guid":"org-1","url":"/v2/organizations/org-1"},"entity":{"name":"test-organization-1"}}
			]}`)
		})

		res, err := client.Organizations().List(context.Background(), cfclient.ListOrganizationsRequest{Page: 1})
		Expect(err).ToNot(HaveOccurred())
		Expect(res.TotalPages).To(Equal(1))
		Expect(res.Resources).To(HaveLen(1))
		Expect(res.Resources[0].Metadata.GUID).To(Equal("org-1"))
		Expect(res.Resources[0].Entity.Name).To(Equal("test-organization-1"))
	})

	It("requests asynchronous deletion and decodes the job handle", func() {
		server.handle("/v2/organizations/org-1", func(w http.ResponseWriter, r *http.Request) {
			Expect(r.Method).To(Equal(http.MethodDelete))
			w.WriteHeader(http.StatusAccepted)
			fmt.Fprint(w, `{"metadata":{"guid":"job-1"},"entity":{"guid":"job-1","status":"queued"}}`)
		})

		job, err := client.Organizations().Delete(context.Background(), "org-1")
		Expect(err).ToNot(HaveOccurred())
		Expect(job.Entity.GUID).To(Equal("job-1"))
		Expect(job.Entity.Status).To(Equal(cfclient.JobStatusQueued))
		Expect(job.Terminal()).To(BeFalse())

		query := server.lastRequest().Query()
		Expect(query.Get("async")).To(Equal("true"))
		Expect(query.Get("recursive")).To(Equal("true"))
	})

	It("decodes job states", func() {
		server.handle("/v2/jobs/job-1", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"metadata":{"guid":"job-1"},"entity":{"guid":"job-1","status":"failed","error_details":{"description":"quota in use"}}}`)
		})

		job, err := client.Jobs().Get(context.Background(), "job-1")
		Expect(err).ToNot(HaveOccurred())
		Expect(job.Entity.Status).To(Equal(cfclient.JobStatusFailed))
		Expect(job.Terminal()).To(BeTrue())
		Expect(job.Entity.ErrorDetails.Description).To(Equal("quota in use"))
	})

	It("surfaces non-2xx responses as transport errors", func() {
		server.handle("/v2/routes", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			fmt.Fprint(w, `{"description":"router unavailable"}`)
		})

		_, err := client.Routes().List(context.Background(), cfclient.ListRoutesRequest{Page: 1})
		Expect(err).To(HaveOccurred())
		Expect(cferrors.IsTransport(err)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("router unavailable"))
	})

	It("surfaces connection failures as transport errors", func() {
		server.Close()

		_, err := client.Routes().List(context.Background(), cfclient.ListRoutesRequest{Page: 1})
		Expect(err).To(HaveOccurred())
		Expect(cferrors.IsTransport(err)).To(BeTrue())
	})

	It("updates feature flags in place", func() {
		server.handle("/v2/config/feature_flags/diego_docker", func(w http.ResponseWriter, r *http.Request) {
			Expect(r.Method).To(Equal(http.MethodPut))
			body, err := io.ReadAll(r.Body)
			Expect(err).ToNot(HaveOccurred())
			Expect(string(body)).To(MatchJSON(`{"enabled":true}`))
			fmt.Fprint(w, `{"name":"diego_docker","enabled":true}`)
		})

		Expect(client.FeatureFlags().Set(context.Background(), "diego_docker", true)).To(Succeed())
	})
})
