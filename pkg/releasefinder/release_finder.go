package releasefinder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

type Release struct {
	URL string
	Tag string
}

// Find queries a GitHub releases API and picks the newest asset built for
// the given kernel and platform.
func Find(ctx context.Context, api, kernel, platform string) (*Release, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, api, nil)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to create request")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to get releases")
	}
	defer func(body io.ReadCloser) {
		err := body.Close()
		if err != nil {
			log.Println(err)
		}
	}(resp.Body)

	release, err := findRelease(resp.Body, kernel, platform)
	if err != nil {
		return nil, err
	}

	return release, nil
}

type FailedToFindReleaseError struct {
	OS   string
	Arch string
}

func (e FailedToFindReleaseError) Error() string {
	return fmt.Sprintf("failed to find release for %s (arch: %s)", e.OS, e.Arch)
}

type releases struct {
	TagName string  `json:"tag_name"` //nolint:tagliatelle
	Assets  []asset `json:"assets"`
}

type asset struct {
	URL                string `json:"url"`
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"` //nolint:tagliatelle
}

func findRelease(reader io.Reader, os string, arch string) (*Release, error) {
	r := []releases{}
	d := json.NewDecoder(reader)
	err := d.Decode(&r)
	if err != nil {
		return nil, err
	}

	for _, release := range r {
		for _, asset := range release.Assets {
			if strings.Contains(asset.Name, os+"-"+arch) {
				return &Release{
					URL: asset.BrowserDownloadURL,
					Tag: release.TagName,
				}, nil
			}
		}
	}

	return nil, FailedToFindReleaseError{os, arch}
}
