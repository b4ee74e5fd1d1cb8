package store

// Persisted keys. Their names and JSON shapes are the storage format shared
// with the browser front end.
const (
	KeyClients   = "studioClients"
	KeyPortfolio = "companyPortfolio"
	KeySettings  = "studioSettings"

	KeyCurrentUser  = "currentUser"
	KeyCurrentAdmin = "currentAdmin"
	KeyTheme        = "theme"
)

// profileKeys are per-browser keys; everything else is shared by all visitors.
var profileKeys = map[string]struct{}{
	KeyCurrentUser:  {},
	KeyCurrentAdmin: {},
	KeyTheme:        {},
}
