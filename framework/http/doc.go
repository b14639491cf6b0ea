// Package http provides JSON response helpers for the diagnostics endpoints.
//
//	res := gohttp.NewResponse(w)
//	res.Success(entries)                       // 200 {"data": entries}
//	res.NotFound("")                           // 404 {"message": "Not found."}
//	res.Error(http.StatusBadRequest, "bad key") // 400 {"message": "bad key"}
package http
