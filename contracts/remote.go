package contracts

type Downloader interface {
	// Download performs an HTTP GET and streams the response to targetPath.
	Download(sourceURL, targetPath string) error

	// FetchWithUserAgent re-fetches a payload with an explicit User-Agent
	// header and returns the raw bytes. Some hosts refuse anonymous
	// clients, so this backs the zip extraction retry.
	FetchWithUserAgent(sourceURL string) ([]byte, error)
}

type Extractor interface {
	ExtractZip(archivePath, targetDir string) error
	ExtractZipFromMemory(archive []byte, targetDir string) error
	ExtractTarGz(archivePath, targetDir string) error
}
