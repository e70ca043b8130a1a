// Copyright (c) 2026 MVS Mart. All rights reserved.
// Author: dev@mvsmart.in

package pincode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_Lookup_Success(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`[{"Status":"Success","PostOffice":[{"District":"Pune","State":"Maharashtra","Country":"India"}]}]`))
	}))
	defer server.Close()

	resolver := NewResolver(server.URL, 5*time.Second)
	location, err := resolver.Lookup(context.Background(), "411001")

	require.NoError(t, err)
	require.NotNil(t, location)
	assert.Equal(t, "/pincode/411001", gotPath)
	assert.Equal(t, "Pune", location.City)
	assert.Equal(t, "Maharashtra", location.State)
	assert.Equal(t, "India", location.Country)
}

func TestResolver_Lookup_NoMatchReturnsNilWithoutError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"Status":"Error","PostOffice":null}]`))
	}))
	defer server.Close()

	resolver := NewResolver(server.URL, 5*time.Second)
	location, err := resolver.Lookup(context.Background(), "000000")

	require.NoError(t, err)
	assert.Nil(t, location)
}

func TestResolver_Lookup_ServerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	resolver := NewResolver(server.URL, 5*time.Second)
	location, err := resolver.Lookup(context.Background(), "411001")

	require.Error(t, err)
	assert.Nil(t, location)
}
