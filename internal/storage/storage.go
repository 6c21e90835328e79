package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"yadtamar_backend/internal/config"
)

// Storage keeps uploaded user files such as profile pictures.
type Storage interface {
	// Save stores the content under key, replacing any existing object.
	Save(ctx context.Context, key string, reader io.Reader, contentType string) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	// URL returns the public address of key.
	URL(key string) string
}

type Config struct {
	Type       string // local, cloudflare_r2
	BasePath   string
	BaseURL    string
	Bucket     string
	AccessKey  string
	SecretKey  string
	Endpoint   string
	PublicRead bool
}

// ConfigFromApp maps the application config onto storage settings.
func ConfigFromApp(cfg *config.Config) Config {
	return Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		PublicRead: cfg.Storage.PublicRead,
	}
}

func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "", "local":
		return NewLocalStorage(cfg)
	case "cloudflare_r2":
		return NewCloudflareR2Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}

var pictureExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
}

// PictureExtension returns the file extension for an accepted image type.
func PictureExtension(contentType string) (string, bool) {
	ext, ok := pictureExtensions[strings.ToLower(strings.TrimSpace(contentType))]
	return ext, ok
}

// ProfilePictureKey is the object key of a user's profile picture.
func ProfilePictureKey(userID, ext string) string {
	return path.Join("profile-pictures", userID+ext)
}
