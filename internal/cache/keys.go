package cache

import "fmt"

// ReportKey is where the serialized status report snapshot for one gateway
// host lives.
func ReportKey(host string) string {
	return fmt.Sprintf("sophia:report:%s", host)
}

// CatalogKey is where the serialized catalog snapshot for one gateway host
// lives.
func CatalogKey(host string) string {
	return fmt.Sprintf("sophia:catalog:%s", host)
}
