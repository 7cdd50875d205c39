package services

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/sync/errgroup"

	"hualien-aid/internal/storage"
)

// MaxImages caps every upload batch. Extra files are dropped before any
// upload starts.
const MaxImages = 3

const imagePrefix = "images/"

// Owner prefixes for batch uploads.
const (
	OwnerLocation = "location"
	OwnerChannel  = "channel"
	OwnerMessage  = "message"
)

type FileUpload struct {
	Name        string
	ContentType string
	Data        []byte
}

type ImageService struct {
	Bucket storage.Bucket
	Now    func() time.Time
}

func NewImageService(bucket storage.Bucket) *ImageService {
	return &ImageService{Bucket: bucket, Now: time.Now}
}

// Upload stores one file and returns its public URL. ok is false on any
// failure; the cause is logged.
func (s *ImageService) Upload(ctx context.Context, f FileUpload, ownerID string) (url string, ok bool) {
	key := ImageKey(ownerID, s.Now(), f.Name)
	contentType := f.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := s.Bucket.Put(ctx, key, bytes.NewReader(f.Data), contentType); err != nil {
		log.Errorf("images: upload %s (%s, %d bytes, %s) to %s failed: %v",
			f.Name, contentType, len(f.Data), ownerID, s.Bucket.Name(), err)
		return "", false
	}
	return s.Bucket.PublicURL(key), true
}

// UploadBatch uploads up to MaxImages files concurrently and waits for all
// of them. The result keeps input order and skips the files that failed.
func (s *ImageService) UploadBatch(ctx context.Context, files []FileUpload, prefix string) []string {
	if len(files) > MaxImages {
		log.Warnf("images: %d files submitted, keeping the first %d", len(files), MaxImages)
		files = files[:MaxImages]
	}
	if len(files) == 0 {
		return []string{}
	}

	stamp := s.Now().UnixMilli()
	urls := make([]string, len(files))

	var g errgroup.Group
	for i, f := range files {
		g.Go(func() error {
			if url, ok := s.Upload(ctx, f, fmt.Sprintf("%s-%d-%d", prefix, stamp, i)); ok {
				urls[i] = url
			}
			return nil
		})
	}
	_ = g.Wait()

	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if u != "" {
			out = append(out, u)
		}
	}
	if len(out) < len(files) {
		log.Warnf("images: %d of %d uploads succeeded", len(out), len(files))
	}
	return out
}

// Remove deletes the object behind a public URL. Only the final path
// segment of the URL is used.
func (s *ImageService) Remove(ctx context.Context, publicURL string) bool {
	key, ok := KeyFromURL(publicURL)
	if !ok {
		log.Warnf("images: cannot derive a key from %q", publicURL)
		return false
	}
	if err := s.Bucket.Remove(ctx, key); err != nil {
		log.Errorf("images: remove %s failed: %v", key, err)
		return false
	}
	return true
}

// ImageKey is images/<owner>_<unix ms>.<ext>. A name without an extension
// keeps the whole name as its extension.
func ImageKey(ownerID string, at time.Time, filename string) string {
	ext := filename
	if i := strings.LastIndex(filename, "."); i >= 0 {
		ext = filename[i+1:]
	}
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		ext = "bin"
	}
	return fmt.Sprintf("%s%s_%d.%s", imagePrefix, ownerID, at.UnixMilli(), ext)
}

func KeyFromURL(publicURL string) (string, bool) {
	u := publicURL
	if i := strings.IndexAny(u, "?#"); i >= 0 {
		u = u[:i]
	}
	name := path.Base(u)
	if name == "" || name == "." || name == "/" || strings.HasSuffix(u, "/") {
		return "", false
	}
	return imagePrefix + name, true
}
