// Package cli builds the gridastar command tree. It turns flags into a
// validated Config, loads grid descriptions and hands results to the report
// package.
package cli
