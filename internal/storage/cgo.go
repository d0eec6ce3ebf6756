//go:build cgo

package storage

const cgoEnabled = true
