package http

import (
	"net/http"
	"strconv"
)

// userIDFromQuery extracts the required userId query parameter. The client
// holds the numeric identity it got from register/login and passes it on
// every scoped request.
func userIDFromQuery(r *http.Request) (int64, bool) {
	raw := r.URL.Query().Get("userId")

	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID <= 0 {
		return 0, false
	}

	return userID, true
}
