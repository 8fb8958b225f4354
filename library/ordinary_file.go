package library

// OrdinaryFile wraps a regular file the classifier rejected. It carries no
// metadata and has no failure mode.
type OrdinaryFile struct {
	Path string
	Name string
}
