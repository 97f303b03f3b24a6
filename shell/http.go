package shell

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/cavaliergopher/grab/v3"
)

const retryUserAgent = "stockpile"

type HTTPDownloader struct {
	client *http.Client
}

func NewHTTPDownloader() *HTTPDownloader {
	return &HTTPDownloader{client: newHTTPClient()}
}

// Download streams a GET response to targetPath, creating parent
// directories as needed.
func (this *HTTPDownloader) Download(sourceURL, targetPath string) error {
	request, err := grab.NewRequest(targetPath, sourceURL)
	if err != nil {
		return err
	}
	client := &grab.Client{HTTPClient: this.client}
	response := client.Do(request)
	return response.Err()
}

// FetchWithUserAgent identifies the client explicitly; some hosts refuse
// anonymous downloads.
func (this *HTTPDownloader) FetchWithUserAgent(sourceURL string) ([]byte, error) {
	request, err := http.NewRequest("GET", sourceURL, nil)
	if err != nil {
		return nil, err
	}
	request.Header.Set("User-Agent", retryUserAgent)

	response, err := this.client.Do(request)
	if err != nil {
		return nil, err
	}
	defer func() { _ = response.Body.Close() }()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %s", response.Status)
	}
	return io.ReadAll(response.Body)
}

func newHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   16 * time.Second,
				KeepAlive: 16 * time.Second,
			}).DialContext,
			MaxIdleConns:          32,
			IdleConnTimeout:       32 * time.Second,
			TLSHandshakeTimeout:   16 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}
}
