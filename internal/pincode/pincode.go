// Copyright (c) 2026 MVS Mart. All rights reserved.
// Author: dev@mvsmart.in

/*
Package pincode resolves Indian postal codes into locality details.

The resolver queries the public postal API which returns an array of lookup
results, each carrying a status string and a list of matching post offices.
The first post office of a successful result supplies the district, state
and country used to autofill the shipping address form.
*/
package pincode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mvsmart/storefront/internal/commerce"
	"github.com/mvsmart/storefront/internal/platform/apperr"
)

// Resolver looks up postal codes against an HTTP pincode API.
//
// It satisfies [commerce.PincodeResolver].
type Resolver struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

// NewResolver constructs a Resolver for the given API origin.
func NewResolver(baseURL string, timeout time.Duration) *Resolver {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Resolver{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		timeout:    timeout,
	}
}

// # API Shapes

type postOffice struct {
	District string `json:"District"`
	State    string `json:"State"`
	Country  string `json:"Country"`
}

type lookupResult struct {
	Status     string       `json:"Status"`
	PostOffice []postOffice `json:"PostOffice"`
}

// # Lookup

/*
Lookup resolves one postal code.

Parameters:
  - ctx: request-scoped context.
  - code: the 6-digit postal code, passed through verbatim.

Returns:
  - *commerce.PincodeLocation: the resolved locality, or nil when the API
    reports no match for the code.
  - error: non-nil only when the request itself fails or the response cannot
    be decoded.
*/
func (resolver *Resolver) Lookup(ctx context.Context, code string) (*commerce.PincodeLocation, error) {
	ctx, cancel := context.WithTimeout(ctx, resolver.timeout)
	defer cancel()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, resolver.baseURL+"/pincode/"+code, nil)
	if err != nil {
		return nil, fmt.Errorf("pincode: failed to build request: %w", err)
	}

	response, err := resolver.httpClient.Do(request)
	if err != nil {
		return nil, apperr.Remote("", fmt.Errorf("pincode: lookup %s: %w", code, err))
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, apperr.Remote("", fmt.Errorf("pincode: server returned status %d", response.StatusCode))
	}

	var results []lookupResult
	if err := json.NewDecoder(response.Body).Decode(&results); err != nil {
		return nil, apperr.Remote("", fmt.Errorf("pincode: failed to decode response: %w", err))
	}

	// No match is a normal answer, not a transport failure.
	if len(results) == 0 || results[0].Status != "Success" || len(results[0].PostOffice) == 0 {
		return nil, nil
	}

	office := results[0].PostOffice[0]
	return &commerce.PincodeLocation{
		City:    office.District,
		State:   office.State,
		Country: office.Country,
	}, nil
}
