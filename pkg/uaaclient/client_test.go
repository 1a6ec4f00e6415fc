// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package uaaclient_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	cferrors "github.com/anwarchk/cf-cleaner/pkg/common/error"
	"github.com/anwarchk/cf-cleaner/pkg/uaaclient"
)

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

var _ = Describe("identity management client", func() {
	var (
		server *testServer
		client uaaclient.Client
	)

	BeforeEach(func() {
		server = newTestServer()
		var err error
		client, err = uaaclient.NewClient(uaaclient.Config{
			Endpoint:     server.URL,
			ClientID:     "admin",
			ClientSecret: "secret",
		})
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		server.Close()
	})

	It("sends SCIM pagination parameters", func() {
		server.handle("/Users", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"resources":[],"startIndex":101,"itemsPerPage":100,"totalResults":0}`)
		})

		res, err := client.Users().List(context.Background(), 101)
		Expect(err).ToNot(HaveOccurred())
		Expect(res.StartIndex).To(Equal(101))

		query := server.lastRequest().Query()
		Expect(query.Get("startIndex")).To(Equal("101"))
		Expect(query.Get("count")).To(Equal("100"))
	})

	It("decodes SCIM group listings including members", func() {
		server.handle("/Groups", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"resources":[
				{"id":"g-1","displayName":"test-group-1","members":[{"value":"g-2","type":"GROUP"},{"value":"u-1","type":"USER"}]}
			],"startIndex":1,"itemsPerPage":100,"totalResults":1}`)
		})

		res, err := client.Groups().List(context.Background(), 1)
		Expect(err).ToNot(HaveOccurred())
		Expect(res.Resources).To(HaveLen(1))
		Expect(res.Resources[0].DisplayName).To(Equal("test-group-1"))
		Expect(res.Resources[0].Members).To(Equal([]uaaclient.GroupMember{
			{Value: "g-2", Type: "GROUP"},
			{Value: "u-1", Type: "USER"},
		}))
	})

	It("deletes groups and users with a wildcard If-Match header", func() {
		server.handle("/Groups/g-1", func(w http.ResponseWriter, r *http.Request) {
			Expect(r.Method).To(Equal(http.MethodDelete))
			fmt.Fprint(w, `{"id":"g-1"}`)
		})
		server.handle("/Users/u-1", func(w http.ResponseWriter, r *http.Request) {
			Expect(r.Method).To(Equal(http.MethodDelete))
			fmt.Fprint(w, `{"id":"u-1"}`)
		})

		Expect(client.Groups().Delete(context.Background(), "g-1")).To(Succeed())
		Expect(server.lastHeader().Get("If-Match")).To(Equal("*"))

		Expect(client.Users().Delete(context.Background(), "u-1")).To(Succeed())
		Expect(server.lastHeader().Get("If-Match")).To(Equal("*"))
	})

	It("deletes clients and identity zones without a version header", func() {
		server.handle("/oauth/clients/c-1", func(w http.ResponseWriter, r *http.Request) {
			Expect(r.Method).To(Equal(http.MethodDelete))
			fmt.Fprint(w, `{"client_id":"c-1"}`)
		})
		server.handle("/identity-zones/z-1", func(w http.ResponseWriter, r *http.Request) {
			Expect(r.Method).To(Equal(http.MethodDelete))
			fmt.Fprint(w, `{"id":"z-1"}`)
		})

		Expect(client.Clients().Delete(context.Background(), "c-1")).To(Succeed())
		Expect(server.lastHeader().Values("If-Match")).To(BeEmpty())

		Expect(client.IdentityZones().Delete(context.Background(), "z-1")).To(Succeed())
		Expect(server.lastHeader().Values("If-Match")).To(BeEmpty())
	})

	It("lists identity zones as a plain array", func() {
		server.handle("/identity-zones", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `[{"id":"z-1","subdomain":"test","name":"test-identity-zone-1"}]`)
		})

		zones, err := client.IdentityZones().List(context.Background())
		Expect(err).ToNot(HaveOccurred())
		Expect(zones).To(HaveLen(1))
		Expect(zones[0].Name).To(Equal("test-identity-zone-1"))
	})

	It("surfaces non-2xx responses as transport errors", func() {
		server.handle("/oauth/clients", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			fmt.Fprint(w, `{"error":"insufficient_scope"}`)
		})

		_, err := client.Clients().List(context.Background(), 1)
		Expect(err).To(HaveOccurred())
		Expect(cferrors.IsTransport(err)).To(BeTrue())
	})
})
