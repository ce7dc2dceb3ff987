package entities

// ApiKey is one row of the api_keys table. The key itself is the primary
// key; Status false means revoked.
type ApiKey struct {
	ApiKey string `db:"id"`
	Status bool   `db:"status"`
}
