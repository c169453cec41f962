package testutil

import (
	"fmt"
	"os"

	"vshare/internal/share"
)

// StubQREncoder records the encoded URL and writes a placeholder file
// so callers can assert on the filesystem layout without pulling in a
// real image encoder.
type StubQREncoder struct {
	URLs []string
	Fail bool
}

func NewStubQREncoder() *StubQREncoder {
	return &StubQREncoder{}
}

func (e *StubQREncoder) Encode(url, path string) error {
	if e.Fail {
		return fmt.Errorf("encoding url: content too long")
	}
	e.URLs = append(e.URLs, url)
	return os.WriteFile(path, []byte("stub-qr:"+url), 0644)
}

// Compile-time check
var _ share.QREncoder = (*StubQREncoder)(nil)
