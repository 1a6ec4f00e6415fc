// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package cfclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	cferrors "github.com/anwarchk/cf-cleaner/pkg/common/error"
)

const resultsPerPage = 100

// Client bundles the per-kind services of the cloud controller API.
type Client interface {
	ApplicationsV2() ApplicationsV2
	ApplicationsV3() ApplicationsV3
	Buildpacks() Buildpacks
	Domains() Domains
	FeatureFlags() FeatureFlags
	Jobs() Jobs
	Organizations() Organizations
	OrganizationQuotas() OrganizationQuotas
	Packages() Packages
	Routes() Routes
	SecurityGroups() SecurityGroups
	ServiceInstances() ServiceInstances
	Spaces() Spaces
	SpaceQuotas() SpaceQuotas
	UserProvidedServiceInstances() UserProvidedServiceInstances
	Users() Users
}

// Config holds the connection values for the cloud controller API.
type Config struct {
	// APIEndpoint is the URL of the cloud controller, e.g. https://api.example.com
	APIEndpoint string
	// TokenEndpoint is the URL of the UAA that issues tokens for the API.
	TokenEndpoint string
	ClientID      string
	ClientSecret  string
	// SkipSSLValidation disables certificate checks for self-signed test environments.
	SkipSSLValidation bool
}

type client struct {
	*http.Client

	endpoint string
}

// NewClient creates a new cloud controller client that authenticates with
// OAuth2 client credentials against the configured token endpoint.
func NewClient(cfg Config) (Client, error) {
	u, err := url.Parse(cfg.APIEndpoint)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse API endpoint")
	}
	u.Path = ""

	if cfg.ClientID == "" {
		return nil, errors.New("client id has to be defined")
	}
	if cfg.ClientSecret == "" {
		return nil, errors.New("client secret has to be defined")
	}

	return &client{
		Client:   OAuthClient(cfg.TokenEndpoint, cfg.ClientID, cfg.ClientSecret, cfg.SkipSSLValidation),
		endpoint: u.String(),
	}, nil
}

// OAuthClient builds an http.Client that injects client-credentials tokens
// issued by the given token endpoint into every request.
func OAuthClient(tokenEndpoint, clientID, clientSecret string, skipSSLValidation bool) *http.Client {
	base := &http.Client{
		Transport: &http.Transport{
			// #nosec G402 -- test environments commonly run with self-signed certificates
			TLSClientConfig: &tls.Config{InsecureSkipVerify: skipSSLValidation},
		},
	}
	oauthCfg := clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenEndpoint + "/oauth/token",
	}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	return oauthCfg.Client(ctx)
}

func (c *client) ApplicationsV2() ApplicationsV2 { return &applicationsV2{c} }
func (c *client) ApplicationsV3() ApplicationsV3 { return &applicationsV3{c} }
func (c *client) Buildpacks() Buildpacks         { return &buildpacks{c} }
func (c *client) Domains() Domains               { return &domains{c} }
func (c *client) FeatureFlags() FeatureFlags     { return &featureFlags{c} }
func (c *client) Jobs() Jobs                     { return &jobs{c} }
func (c *client) Organizations() Organizations   { return &organizations{c} }
func (c *client) OrganizationQuotas() OrganizationQuotas {
	return &organizationQuotas{c}
}
func (c *client) Packages() Packages                 { return &packages{c} }
func (c *client) Routes() Routes                     { return &routes{c} }
func (c *client) SecurityGroups() SecurityGroups     { return &securityGroups{c} }
func (c *client) ServiceInstances() ServiceInstances { return &serviceInstances{c} }
func (c *client) Spaces() Spaces                     { return &spaces{c} }
func (c *client) SpaceQuotas() SpaceQuotas           { return &spaceQuotas{c} }
func (c *client) UserProvidedServiceInstances() UserProvidedServiceInstances {
	return &userProvidedServiceInstances{c}
}
func (c *client) Users() Users { return &users{c} }

// do issues a request against the API and decodes the JSON response into out.
// Connection failures and non-2xx responses are surfaced as transport errors;
// the cause chain is preserved so callers can inspect TLS-layer faults.
func (c *client) do(ctx context.Context, method, rawPath string, query url.Values, body, out interface{}) error {
	apiURL := c.endpoint + rawPath
	if len(query) > 0 {
		apiURL = apiURL + "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "unable to marshal request body")
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, apiURL, payload)
	if err != nil {
		return errors.Wrapf(err, "unable to build request for %s", apiURL)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := c.Do(req)
	if err != nil {
		return cferrors.NewTransportError(fmt.Sprintf("unable to %s %s", method, apiURL), err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		errorResponse, _ := io.ReadAll(res.Body)
		return cferrors.NewTransportError(fmt.Sprintf("request %s %s returned status code %d with body %s", method, apiURL, res.StatusCode, errorResponse), nil)
	}

	if out == nil {
		return nil
	}
	data, err := io.ReadAll(res.Body)
	if err != nil {
		return cferrors.NewTransportError(fmt.Sprintf("unable to read response body of %s %s", method, apiURL), err)
	}
	if len(data) == 0 {
		return nil
	}
	return errors.Wrapf(json.Unmarshal(data, out), "unable to unmarshal response of %s %s", method, apiURL)
}

func (c *client) get(ctx context.Context, rawPath string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, rawPath, query, nil, out)
}

// pageQuery builds the pagination query of a v2/v3 listing request.
// Page numbers are 1-based; page 0 selects the first page.
func pageQuery(page int) url.Values {
	if page < 1 {
		page = 1
	}
	return url.Values{
		"page":             []string{strconv.Itoa(page)},
		"results-per-page": []string{strconv.Itoa(resultsPerPage)},
	}
}

// perPageQuery builds the pagination query of a v3 listing request.
func perPageQuery(page int) url.Values {
	if page < 1 {
		page = 1
	}
	return url.Values{
		"page":     []string{strconv.Itoa(page)},
		"per_page": []string{strconv.Itoa(resultsPerPage)},
	}
}

// asyncQuery marks a v2 delete request as asynchronous so that it returns a job.
func asyncQuery() url.Values {
	return url.Values{"async": []string{"true"}}
}
