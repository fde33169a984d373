// Package database manages the relational database connection used by the
// library index. MySQL is the production driver; sqlite backs the test
// suite. The connection is optional: the catalog endpoints run without it.
package database
