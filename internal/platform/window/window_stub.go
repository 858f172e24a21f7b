//go:build !ebiten

package window

// Run reports ErrUnavailable; the window host needs -tags ebiten.
func Run(Options) error {
	return ErrUnavailable
}
