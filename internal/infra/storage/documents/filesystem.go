package documents

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Filesystem хранилище документов в локальном каталоге
type Filesystem struct {
	root         string
	publicPrefix string
}

// NewFilesystem создает хранилище в каталоге root.
// publicPrefix - URL-префикс, по которому каталог раздается статикой (например /uploads).
func NewFilesystem(root, publicPrefix string) *Filesystem {
	return &Filesystem{
		root:         root,
		publicPrefix: strings.TrimRight(publicPrefix, "/"),
	}
}

func (f *Filesystem) Name() string {
	return BackendLocal
}

// Root каталог хранилища
func (f *Filesystem) Root() string {
	return f.root
}

func (f *Filesystem) Put(ctx context.Context, key string, content []byte, contentType string) (*Location, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrite, err)
	}
	full, err := f.resolve(key)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return nil, fmt.Errorf("%w: create directory for %s: %v", ErrWrite, key, err)
	}
	if err := os.WriteFile(full, content, 0o644); err != nil {
		return nil, fmt.Errorf("%w: write %s: %v", ErrWrite, key, err)
	}

	return &Location{
		Backend: BackendLocal,
		Key:     key,
		Path:    full,
		URL:     f.url(key),
	}, nil
}

func (f *Filesystem) Get(ctx context.Context, key string) (*Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	full, err := f.resolve(key)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("%w: stat %s: %v", ErrRead, key, err)
	}
	if info.IsDir() {
		return nil, ErrObjectNotFound
	}

	content, err := os.ReadFile(full)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrRead, key, err)
	}

	return &Object{
		Key:          key,
		ContentType:  ContentTypeFor(key),
		Size:         info.Size(),
		LastModified: info.ModTime(),
		URL:          f.url(key),
		Content:      content,
	}, nil
}

// List возвращает объекты с ключами, начинающимися с prefix, в порядке ключей
func (f *Filesystem) List(ctx context.Context, prefix string, maxKeys int) (*Listing, error) {
	listing := &Listing{Bucket: f.root, Prefix: prefix, Objects: []ObjectInfo{}}

	err := filepath.WalkDir(f.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(f.root, p)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if !strings.HasPrefix(key, prefix) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		listing.Objects = append(listing.Objects, ObjectInfo{
			Key:          key,
			Size:         info.Size(),
			LastModified: info.ModTime(),
			URL:          f.url(key),
		})
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return listing, nil
		}
		return nil, fmt.Errorf("%w: walk %s: %v", ErrList, f.root, err)
	}

	sort.Slice(listing.Objects, func(i, j int) bool {
		return listing.Objects[i].Key < listing.Objects[j].Key
	})
	if maxKeys > 0 && len(listing.Objects) > maxKeys {
		listing.Objects = listing.Objects[:maxKeys]
		listing.Truncated = true
	}
	return listing, nil
}

func (f *Filesystem) resolve(key string) (string, error) {
	if err := ValidateKey(key); err != nil {
		return "", err
	}
	return filepath.Join(f.root, filepath.FromSlash(key)), nil
}

func (f *Filesystem) url(key string) string {
	return f.publicPrefix + "/" + key
}
