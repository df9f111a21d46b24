package utils

import "fmt"

// WrapReadError returns a wrapped read error
func WrapReadError(err error) error {
	return fmt.Errorf("read error: %w", err)
}

// WrapWriteError returns a wrapped write error
func WrapWriteError(err error) error {
	return fmt.Errorf("write error: %w", err)
}

// WrapCloseError returns a wrapped close error
func WrapCloseError(err error) error {
	return fmt.Errorf("close error: %w", err)
}

// WrapListError returns a wrapped list error
func WrapListError(err error) error {
	return fmt.Errorf("list error: %w", err)
}

// WrapConnectError returns a wrapped connect error
func WrapConnectError(err error) error {
	return fmt.Errorf("connect error: %w", err)
}
