package ports

// URLSource loads the raw input text of a batch from a file.
type URLSource interface {
	Load(path string) (string, error)
}
