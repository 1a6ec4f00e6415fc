// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package uaaclient

// ListMeta carries the SCIM pagination fields shared by all listing responses.
type ListMeta struct {
	StartIndex   int `json:"startIndex"`
	ItemsPerPage int `json:"itemsPerPage"`
	TotalResults int `json:"totalResults"`
}

// OAuthClient is a client registration in the identity management API.
type OAuthClient struct {
	ClientID string `json:"client_id"`
	Name     string `json:"name"`
}

// User is a SCIM user record.
type User struct {
	ID       string `json:"id"`
	UserName string `json:"userName"`
}

// Group is a SCIM group record including its membership list.
type Group struct {
	ID          string        `json:"id"`
	DisplayName string        `json:"displayName"`
	Members     []GroupMember `json:"members"`
}

// GroupMember references a user or another group by id.
type GroupMember struct {
	Value string `json:"value"`
	Type  string `json:"type"`
}

// IdentityProvider is an identity provider registration.
type IdentityProvider struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	OriginKey string `json:"originKey"`
	Type      string `json:"type"`
}

// IdentityZone is an identity zone registration.
type IdentityZone struct {
	ID        string `json:"id"`
	Subdomain string `json:"subdomain"`
	Name      string `json:"name"`
}
