// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package uaaclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"

	"github.com/anwarchk/cf-cleaner/pkg/cfclient"
	cferrors "github.com/anwarchk/cf-cleaner/pkg/common/error"
)

const itemsPerPage = 100

// Client bundles the per-kind services of the identity management API.
type Client interface {
	Clients() Clients
	Groups() Groups
	IdentityProviders() IdentityProviders
	IdentityZones() IdentityZones
	Users() Users
}

// Config holds the connection values for the identity management API.
type Config struct {
	// Endpoint is the URL of the UAA, e.g. https://uaa.example.com
	Endpoint     string
	ClientID     string
	ClientSecret string
	// SkipSSLValidation disables certificate checks for self-signed test environments.
	SkipSSLValidation bool
}

type client struct {
	*http.Client

	endpoint string
}

// NewClient creates a new identity management client. The UAA issues tokens
// for itself, so the token endpoint equals the API endpoint.
func NewClient(cfg Config) (Client, error) {
	u, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse UAA endpoint")
	}
	u.Path = ""

	if cfg.ClientID == "" {
		return nil, errors.New("client id has to be defined")
	}
	if cfg.ClientSecret == "" {
		return nil, errors.New("client secret has to be defined")
	}

	return &client{
		Client:   cfclient.OAuthClient(u.String(), cfg.ClientID, cfg.ClientSecret, cfg.SkipSSLValidation),
		endpoint: u.String(),
	}, nil
}

func (c *client) Clients() Clients                     { return &clients{c} }
func (c *client) Groups() Groups                       { return &groups{c} }
func (c *client) IdentityProviders() IdentityProviders { return &identityProviders{c} }
func (c *client) IdentityZones() IdentityZones         { return &identityZones{c} }
func (c *client) Users() Users                         { return &users{c} }

func (c *client) do(ctx context.Context, method, rawPath string, query url.Values, header http.Header, body, out interface{}) error {
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
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

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
	return c.do(ctx, http.MethodGet, rawPath, query, nil, nil, out)
}

func (c *client) delete(ctx context.Context, rawPath string) error {
	return c.do(ctx, http.MethodDelete, rawPath, nil, nil, nil, nil)
}

// deleteAnyVersion issues a versioned SCIM delete. The wildcard If-Match
// header deletes the resource regardless of its current version; only group
// and user records carry version metadata.
func (c *client) deleteAnyVersion(ctx context.Context, rawPath string) error {
	header := http.Header{}
	header.Set("If-Match", "*")
	return c.do(ctx, http.MethodDelete, rawPath, nil, header, nil, nil)
}

// startIndexQuery builds the pagination query of a SCIM listing request.
// The start index counts records, not pages, and advances by the page size.
func startIndexQuery(startIndex int) url.Values {
	return url.Values{
		"startIndex": []string{strconv.Itoa(startIndex)},
		"count":      []string{strconv.Itoa(itemsPerPage)},
	}
}
