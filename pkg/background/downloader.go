package background

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"path"

	"github.com/go-resty/resty/v2"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

func NewDownloader(cacheDir string, logger *zap.Logger) (*Downloader, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	d := &Downloader{
		cli: resty.New().SetDoNotParseResponse(true),
		log: logger,
	}

	if cacheDir == "" {
		return d, nil
	}

	if fs, err := newFs(cacheDir); err != nil {
		return nil, fmt.Errorf("create downloader failed: %w", err)
	} else {
		d.fs = fs
	}

	return d, nil
}

// Downloader fetches remote background images, keeping an on-disk cache so a
// relock does not re-download the same wallpaper.
type Downloader struct {
	fs  afero.Fs
	cli *resty.Client
	log *zap.Logger
}

func (d *Downloader) filename(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s/%s", u.Host, path.Base(u.Path))
}

// Get returns the image bytes for rawURL, from cache when possible.
func (d *Downloader) Get(rawURL string) ([]byte, error) {
	file := d.filename(rawURL)

	if d.fs != nil && file != "" {
		if exists, err := afero.Exists(d.fs, file); err != nil {
			return nil, err
		} else if exists {
			d.log.With(zap.String("url", rawURL)).Debug("background cache hit")
			return afero.ReadFile(d.fs, file)
		}
	}

	resp, err := d.cli.R().Get(rawURL)
	if err != nil {
		return nil, fmt.Errorf("download background failed: %w", err)
	}

	defer func() {
		_ = resp.RawBody().Close()
	}()

	bar := progressbar.DefaultBytes(resp.RawResponse.ContentLength, fmt.Sprintf("Downloading %s", rawURL))

	var buf bytes.Buffer
	if _, err := io.Copy(io.MultiWriter(&buf, bar), resp.RawBody()); err != nil {
		return nil, err
	}

	if err := d.save(file, buf.Bytes()); err != nil {
		d.log.With(zap.String("url", rawURL), zap.Error(err)).Error("background cache write failed")
	}

	return buf.Bytes(), nil
}

func (d *Downloader) save(file string, bs []byte) error {
	if d.fs == nil || file == "" {
		return nil
	}

	dir := path.Dir(file)
	if exists, err := afero.DirExists(d.fs, dir); err != nil {
		return err
	} else if !exists {
		if err2 := d.fs.MkdirAll(dir, 0755); err2 != nil {
			return err2
		}
	}

	if err := afero.WriteFile(d.fs, file, bs, 0644); err != nil {
		return err
	}

	d.log.With(zap.String("file", file)).Debug("background saved")
	return nil
}
