package upload

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"memberdesk/internal/api"
	"memberdesk/internal/logger"
	"memberdesk/internal/metrics"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/spf13/afero"
)

const stagingDir = "tmp"

// sniffLen covers the longest signature mimetype inspects for the allowed types.
const sniffLen = 3072

var allowedTypes = []string{
	"image/jpeg",
	"image/png",
	"application/pdf",
	"text/plain",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// Storage keeps uploaded files under root. Files first land in a per-request
// staging folder (root/tmp/<uuid>) and are promoted into
// root/<tenant>/users/<user>/ once the owning record is about to commit.
type Storage struct {
	fs       afero.Fs
	root     string
	baseURL  string
	maxBytes int64
}

func NewStorage(fs afero.Fs, root, baseURL string, maxBytes int64) *Storage {
	return &Storage{
		fs:       fs,
		root:     root,
		baseURL:  strings.TrimRight(baseURL, "/"),
		maxBytes: maxBytes,
	}
}

// NewStaging opens an empty staging area. Callers must Discard it.
func (s *Storage) NewStaging() *Staging {
	return &Staging{
		storage: s,
		dir:     filepath.Join(s.root, stagingDir, uuid.NewString()),
		files:   make(map[string]stagedFile),
	}
}

// URL returns the public address of a file stored at rel (slash separated).
func (s *Storage) URL(rel string) string {
	return s.baseURL + "/" + strings.TrimLeft(rel, "/")
}

// RemoveURL deletes the file behind a public URL produced by this storage.
// URLs from elsewhere are ignored.
func (s *Storage) RemoveURL(url string) error {
	prefix := s.baseURL + "/"
	if url == "" || !strings.HasPrefix(url, prefix) {
		return nil
	}
	rel := path.Clean("/" + strings.TrimPrefix(url, prefix))
	err := s.fs.Remove(filepath.Join(s.root, filepath.FromSlash(rel)))
	if err != nil && !isNotExist(err) {
		return err
	}
	return nil
}

// RemoveUserFolder deletes everything stored for a member.
func (s *Storage) RemoveUserFolder(tenantID string, userID int) error {
	dir := filepath.Join(s.root, tenantID, "users", strconv.Itoa(userID))
	if err := s.fs.RemoveAll(dir); err != nil && !isNotExist(err) {
		return err
	}
	return nil
}

// SweepStale removes staging folders last modified before now-maxAge. These
// are left behind only when the process dies mid-request.
func (s *Storage) SweepStale(now time.Time, maxAge time.Duration) (int, error) {
	dir := filepath.Join(s.root, stagingDir)
	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		if isNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	cutoff := now.Add(-maxAge)
	removed := 0
	for _, e := range entries {
		if !e.IsDir() || !e.ModTime().Before(cutoff) {
			continue
		}
		if err := s.fs.RemoveAll(filepath.Join(dir, e.Name())); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

type stagedFile struct {
	path string
	ext  string
}

// Staging is the holding area for the files of a single request.
type Staging struct {
	storage *Storage

	mu       sync.Mutex
	dir      string
	files    map[string]stagedFile
	promoted []string
}

// Add validates and copies an uploaded file into the staging folder under
// the given form field name. A nil header is a no-op.
func (st *Staging) Add(field string, fh *multipart.FileHeader) error {
	if fh == nil {
		return nil
	}
	if fh.Size > st.storage.maxBytes {
		metrics.RecordUpload("rejected")
		return api.Invalid(field, fmt.Sprintf("%s exceeds the %d byte upload limit", field, st.storage.maxBytes))
	}

	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open upload %s: %w", field, err)
	}
	defer src.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(src, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return fmt.Errorf("read upload %s: %w", field, err)
	}
	head = head[:n]

	mtype := mimetype.Detect(head)
	if !isAllowed(mtype) {
		metrics.RecordUpload("rejected")
		return api.Invalid(field, fmt.Sprintf("%s has unsupported file type %s", field, mtype.String()))
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext == "" {
		ext = mtype.Extension()
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if err := st.storage.fs.MkdirAll(st.dir, 0o755); err != nil {
		return fmt.Errorf("create staging dir: %w", err)
	}

	dst := filepath.Join(st.dir, field+ext)
	body := io.MultiReader(bytes.NewReader(head), io.LimitReader(src, st.storage.maxBytes-int64(n)+1))
	if err := afero.WriteReader(st.storage.fs, dst, body); err != nil {
		return fmt.Errorf("stage upload %s: %w", field, err)
	}

	info, err := st.storage.fs.Stat(dst)
	if err != nil {
		return fmt.Errorf("stat staged upload %s: %w", field, err)
	}
	if info.Size() > st.storage.maxBytes {
		_ = st.storage.fs.Remove(dst)
		metrics.RecordUpload("rejected")
		return api.Invalid(field, fmt.Sprintf("%s exceeds the %d byte upload limit", field, st.storage.maxBytes))
	}

	st.files[field] = stagedFile{path: dst, ext: ext}
	metrics.RecordUpload("staged")
	return nil
}

func (st *Staging) Has(field string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	_, ok := st.files[field]
	return ok
}

// Promote moves the staged file for field into the user's permanent folder
// as name plus the original extension and returns its public URL.
func (st *Staging) Promote(tenantID string, userID int, field, name string) (string, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	f, ok := st.files[field]
	if !ok {
		return "", fmt.Errorf("no staged upload for %s", field)
	}

	rel := path.Join(tenantID, "users", strconv.Itoa(userID), name+f.ext)
	dst := filepath.Join(st.storage.root, filepath.FromSlash(rel))

	if err := st.storage.fs.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("create user folder: %w", err)
	}
	if err := st.storage.fs.Rename(f.path, dst); err != nil {
		return "", fmt.Errorf("promote upload %s: %w", field, err)
	}

	delete(st.files, field)
	st.promoted = append(st.promoted, dst)
	return st.storage.URL(rel), nil
}

// Rollback removes every file promoted through this staging area. It is
// the compensation step when the database write that references them fails.
func (st *Staging) Rollback() {
	st.mu.Lock()
	defer st.mu.Unlock()

	for _, p := range st.promoted {
		if err := st.storage.fs.Remove(p); err != nil && !isNotExist(err) {
			logger.Error("failed to remove promoted upload", "path", p, "error", err)
		}
	}
	st.promoted = nil
}

// Discard deletes the staging folder and anything still in it.
func (st *Staging) Discard() {
	st.mu.Lock()
	defer st.mu.Unlock()

	if err := st.storage.fs.RemoveAll(st.dir); err != nil {
		logger.Error("failed to discard staging folder", "dir", st.dir, "error", err)
	}
	st.files = map[string]stagedFile{}
}

func isAllowed(mtype *mimetype.MIME) bool {
	for _, allowed := range allowedTypes {
		if mtype.Is(allowed) {
			return true
		}
	}
	return false
}

func isNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
