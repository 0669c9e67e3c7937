// Package uploader stores portfolio images. Everything is normalized
// to webp on the way in; originals are not kept.
package uploader

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/BruksfildServices01/barbershop-site/internal/config"
)

// maxWidth bounds stored images; gallery rendering never needs more.
const maxWidth = 1600

var (
	dataURIRE  = regexp.MustCompile(`^data:(.+);base64,(.*)$`)
	unsafeRE   = regexp.MustCompile(`[^a-zA-Z0-9-_.]`)
	extRE      = regexp.MustCompile(`\.[^.]+$`)
	webpOption = &webp.Options{Quality: 80}
)

type Result struct {
	// URL is the absolute location when the image went to S3. Empty
	// for local storage; the handler completes it from the request.
	URL      string
	Relative string
}

type Uploader struct {
	client    *s3.Client // nil means local-disk storage
	bucket    string
	publicURL string
	localDir  string
}

func New(cfg *config.Config) *Uploader {
	u := &Uploader{
		bucket:    cfg.S3Bucket,
		publicURL: strings.TrimSuffix(cfg.S3PublicURL, "/"),
		localDir:  cfg.UploadsDir,
	}

	if cfg.S3Bucket != "" && cfg.AWSAccessKeyID != "" && cfg.AWSSecretAccessKey != "" {
		u.client = s3.NewFromConfig(aws.Config{
			Region: cfg.AWSRegion,
			Credentials: credentials.NewStaticCredentialsProvider(
				cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, "",
			),
		})
		if u.publicURL == "" {
			u.publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.AWSRegion)
		}
	}

	return u
}

// Upload decodes a base64 data URI, re-encodes the image as webp and
// stores it under work/. filename only contributes to the stored name.
func (u *Uploader) Upload(ctx context.Context, fileBase64, filename string) (*Result, error) {
	raw, err := decodeDataURI(fileBase64)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("uploader: decode image: %w", err)
	}
	img = downscale(img)

	var encoded bytes.Buffer
	if err := webp.Encode(&encoded, img, webpOption); err != nil {
		return nil, fmt.Errorf("uploader: encode webp: %w", err)
	}

	name := uniqueName(filename)

	if u.client != nil {
		key := "work/" + name
		_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(u.bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(encoded.Bytes()),
			ContentType: aws.String("image/webp"),
		})
		if err != nil {
			return nil, fmt.Errorf("uploader: s3 put: %w", err)
		}
		return &Result{
			URL:      u.publicURL + "/" + key,
			Relative: "/" + key,
		}, nil
	}

	dir := filepath.Join(u.localDir, "work")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("uploader: create upload dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), encoded.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("uploader: write file: %w", err)
	}
	return &Result{Relative: "/uploads/work/" + name}, nil
}

func decodeDataURI(fileBase64 string) ([]byte, error) {
	match := dataURIRE.FindStringSubmatch(fileBase64)
	if match == nil {
		return nil, fmt.Errorf("uploader: invalid base64 data")
	}
	raw, err := base64.StdEncoding.DecodeString(match[2])
	if err != nil {
		return nil, fmt.Errorf("uploader: invalid base64 data: %w", err)
	}
	return raw, nil
}

// uniqueName strips unsafe characters and prefixes a timestamp, the
// same naming the old upload directory used, with a webp extension.
func uniqueName(filename string) string {
	safe := unsafeRE.ReplaceAllString(filename, "")
	base := extRE.ReplaceAllString(safe, "")
	if base == "" {
		base = "image"
	}
	return fmt.Sprintf("%d-%s.webp", time.Now().UnixMilli(), base)
}

func downscale(img image.Image) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() <= maxWidth {
		return img
	}
	height := bounds.Dy() * maxWidth / bounds.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
