package services

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mholt/archives"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"capstone-service/internal/apperrors"
	"capstone-service/internal/models"
	"capstone-service/internal/repository"
)

// ManuscriptService archives capstone documents in object storage. A zip
// bundle upload is unpacked and each contained document stored separately.
type ManuscriptService struct {
	Repo       repository.ManuscriptRepository
	Minio      *minio.Client
	BucketName string
	log        *logrus.Logger
}

// NewManuscriptService creates a new ManuscriptService with the given
// repository and storage client.
func NewManuscriptService(repo repository.ManuscriptRepository, minioClient *minio.Client, bucketName string, log *logrus.Logger) *ManuscriptService {
	return &ManuscriptService{
		Repo:       repo,
		Minio:      minioClient,
		BucketName: bucketName,
		log:        log,
	}
}

// isDocumentExtension checks if a file extension is a supported manuscript
// document.
func isDocumentExtension(ext string) bool {
	allowed := map[string]bool{
		".pdf": true, ".doc": true, ".docx": true,
	}
	return allowed[strings.ToLower(ext)]
}

// isBundleExtension checks if a file is an archive bundle that should be
// unpacked.
func isBundleExtension(ext string) bool {
	bundles := map[string]bool{
		".zip": true, ".rar": true, ".7z": true, ".tar": true, ".gz": true,
	}
	return bundles[strings.ToLower(ext)]
}

func contentTypeFor(ext string) string {
	switch strings.ToLower(ext) {
	case ".pdf":
		return "application/pdf"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "application/octet-stream"
	}
}

// shouldIgnoreBundleFile filters out system and hidden files from an
// unpacked bundle.
func shouldIgnoreBundleFile(filename string) bool {
	if strings.HasPrefix(filename, "._") || strings.HasPrefix(filename, ".") {
		return true
	}
	if filename == "" || strings.EqualFold(filename, "thumbs.db") {
		return true
	}
	return false
}

// Upload stores an uploaded manuscript for the given project. A single
// document yields one record; an archive bundle yields one record per
// contained document.
func (s *ManuscriptService) Upload(projectID uuid.UUID, fileHeader *multipart.FileHeader) ([]models.Manuscript, error) {
	ext := filepath.Ext(fileHeader.Filename)
	if !isDocumentExtension(ext) && !isBundleExtension(ext) {
		return nil, apperrors.Validation("unsupported manuscript format: %s", ext)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, apperrors.Storage(errors.Wrap(err, "open uploaded file"), "upload manuscript")
	}
	defer src.Close()

	if isBundleExtension(ext) {
		return s.uploadBundle(projectID, fileHeader.Filename, src)
	}

	manuscript, err := s.store(projectID, fileHeader.Filename, src, fileHeader.Size)
	if err != nil {
		return nil, err
	}
	return []models.Manuscript{*manuscript}, nil
}

// uploadBundle unpacks an archive and stores every contained document.
func (s *ManuscriptService) uploadBundle(projectID uuid.UUID, bundleName string, src io.Reader) ([]models.Manuscript, error) {
	tempFile, err := os.CreateTemp("", "bundle-*"+filepath.Ext(bundleName))
	if err != nil {
		return nil, apperrors.Storage(errors.Wrap(err, "create temp file"), "unpack bundle")
	}
	tempPath := tempFile.Name()
	defer os.Remove(tempPath)

	if _, err := io.Copy(tempFile, src); err != nil {
		tempFile.Close()
		return nil, apperrors.Storage(errors.Wrap(err, "buffer bundle"), "unpack bundle")
	}
	tempFile.Close()

	fsys, err := archives.FileSystem(context.Background(), tempPath, nil)
	if err != nil {
		return nil, apperrors.Validation("could not read archive bundle: %v", err)
	}

	var stored []models.Manuscript
	err = fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := filepath.Base(path)
		if shouldIgnoreBundleFile(name) || !isDocumentExtension(filepath.Ext(name)) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		reader, err := fsys.Open(path)
		if err != nil {
			return err
		}
		defer reader.Close()

		manuscript, err := s.store(projectID, name, reader, info.Size())
		if err != nil {
			return err
		}
		stored = append(stored, *manuscript)
		return nil
	})
	if err != nil {
		if apperrors.IsStorage(err) || apperrors.IsValidation(err) {
			return nil, err
		}
		return nil, apperrors.Storage(err, "unpack bundle")
	}
	if len(stored) == 0 {
		return nil, apperrors.Validation("bundle %q contains no supported documents", bundleName)
	}
	return stored, nil
}

// store writes one document to object storage and records its metadata.
func (s *ManuscriptService) store(projectID uuid.UUID, filename string, reader io.Reader, size int64) (*models.Manuscript, error) {
	id := uuid.New()
	ext := filepath.Ext(filename)
	storageKey := fmt.Sprintf("%s/%s%s", projectID, id, ext)
	contentType := contentTypeFor(ext)

	_, err := s.Minio.PutObject(context.Background(), s.BucketName, storageKey, reader, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return nil, apperrors.StorageWithCode(err, apperrors.StorageUnavailable, "store manuscript object")
	}

	manuscript := &models.Manuscript{
		ID:               id,
		ProjectID:        projectID,
		OriginalFilename: filename,
		ContentType:      contentType,
		Size:             size,
		UploadedAt:       time.Now(),
		StorageKey:       storageKey,
	}
	if err := s.Repo.Create(manuscript); err != nil {
		// Keep storage consistent with the metadata rows.
		_ = s.Minio.RemoveObject(context.Background(), s.BucketName, storageKey, minio.RemoveObjectOptions{})
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"project_id": projectID,
		"filename":   filename,
		"size":       size,
	}).Info("manuscript stored")
	return manuscript, nil
}

// ListForProject returns the manuscripts archived under a project.
func (s *ManuscriptService) ListForProject(projectID uuid.UUID) ([]models.Manuscript, error) {
	return s.Repo.ListByProject(projectID)
}

// Download opens a stored manuscript for reading.
func (s *ManuscriptService) Download(id uuid.UUID) (io.ReadCloser, *models.Manuscript, error) {
	manuscript, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	object, err := s.Minio.GetObject(context.Background(), s.BucketName, manuscript.StorageKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, apperrors.StorageWithCode(err, apperrors.StorageUnavailable, "fetch manuscript object")
	}
	return object, manuscript, nil
}

// Delete removes a manuscript's object and metadata row.
func (s *ManuscriptService) Delete(id uuid.UUID) error {
	manuscript, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	err = s.Minio.RemoveObject(context.Background(), s.BucketName, manuscript.StorageKey, minio.RemoveObjectOptions{})
	if err != nil {
		return apperrors.StorageWithCode(err, apperrors.StorageUnavailable, "remove manuscript object")
	}
	return s.Repo.Delete(id)
}

// DeleteForProject removes every manuscript archived under a project.
// Object removals are best-effort; the metadata rows always go.
func (s *ManuscriptService) DeleteForProject(projectID uuid.UUID) error {
	manuscripts, err := s.Repo.ListByProject(projectID)
	if err != nil {
		return err
	}
	for _, m := range manuscripts {
		err := s.Minio.RemoveObject(context.Background(), s.BucketName, m.StorageKey, minio.RemoveObjectOptions{})
		if err != nil {
			s.log.WithError(err).WithField("storage_key", m.StorageKey).
				Warn("could not remove manuscript object")
		}
	}
	return s.Repo.DeleteByProject(projectID)
}
