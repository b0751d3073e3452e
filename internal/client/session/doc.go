// Package session owns the client's in-memory view of the logged-in user and
// the product catalog.
//
// A single *State is created by the application and handed to whatever needs
// it. Every mutation goes through its methods; readers get copies via Current
// or register an Observer to be told about changes. Network calls go through
// the API collaborator (normally *apiclient.Client) and are made without
// holding the state lock.
//
// Local updates after buy, deposit and catalog edits are optimistic: they are
// derived from the backend's reply rather than a full re-fetch. Refresh brings
// the cache back in line with the server.
package session
