//go:build !amd64 && !arm64

package car

func init() {
	simdAvailable = false
}
