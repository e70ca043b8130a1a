// Copyright (c) 2026 MVS Mart. All rights reserved.
// Author: dev@mvsmart.in

package martd

import (
	"net/http"

	requestutil "github.com/mvsmart/storefront/internal/platform/request"
	"github.com/mvsmart/storefront/internal/platform/respond"
)

// pincodeStub holds a handful of resolvable codes so address autofill can
// be demonstrated fully offline. Unknown codes get the public API's error
// shape.
var pincodeStub = map[string]struct {
	District string
	State    string
}{
	"110001": {District: "New Delhi", State: "Delhi"},
	"400001": {District: "Mumbai", State: "Maharashtra"},
	"411001": {District: "Pune", State: "Maharashtra"},
	"560001": {District: "Bengaluru", State: "Karnataka"},
	"600001": {District: "Chennai", State: "Tamil Nadu"},
	"700001": {District: "Kolkata", State: "West Bengal"},
}

// pincodeLookup mimics the public postal API's response shape.
// GET /pincode/{code}.
func pincodeLookup(writer http.ResponseWriter, request *http.Request) {
	code := requestutil.Param(request, "code")

	entry, ok := pincodeStub[code]
	if !ok {
		respond.JSON(writer, http.StatusOK, []map[string]any{
			{"Status": "Error", "PostOffice": nil},
		})
		return
	}

	respond.JSON(writer, http.StatusOK, []map[string]any{
		{
			"Status": "Success",
			"PostOffice": []map[string]any{
				{"District": entry.District, "State": entry.State, "Country": "India"},
			},
		},
	})
}
