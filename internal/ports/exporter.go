package ports

// Exporter writes a single column of URLs under a "URL" header. It returns
// the path of the file it wrote, which may differ from the requested path.
type Exporter interface {
	Export(path string, urls []string) (string, error)
}
