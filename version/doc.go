// Package version reports the build version of asyncit binaries.
//
// Release builds set the version with -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/asyncit/version.Version=1.2.0" ./cmd/asyncit
package version
