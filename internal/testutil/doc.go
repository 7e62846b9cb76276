// Package testutil contains helper builders used across tests to reduce
// boilerplate when constructing payloads and workflow specifications. They
// are not intended for production usage.
package testutil
