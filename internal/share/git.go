package share

// Git stages and commits files in the repository working tree.
// Implementations capture the command output; a non-zero exit status
// surfaces as an error with empty output.
type Git interface {
	Add(path string) (string, error)
	Commit(message string) (string, error)
}

// QREncoder renders a URL into a raster QR image at path.
type QREncoder interface {
	Encode(url, path string) error
}
