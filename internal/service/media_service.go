package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/microblog/internal/model"
	"github.com/d60-Lab/microblog/internal/repository"
)

// MediaService 媒体上传与读取
type MediaService interface {
	Upload(ctx context.Context, owner *model.User, file *multipart.FileHeader) (uint, error)
	Get(ctx context.Context, id uint) (*model.Media, error)
	// Path 返回媒体文件在磁盘上的路径
	Path(m *model.Media) string
}

type mediaService struct {
	mediaRepo repository.MediaRepository
	uploadDir string
	maxSize   int64
}

func NewMediaService(mediaRepo repository.MediaRepository, uploadDir string, maxSize int64) MediaService {
	return &mediaService{mediaRepo: mediaRepo, uploadDir: uploadDir, maxSize: maxSize}
}

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// sanitizeFilename 只保留安全字符，防止路径穿越
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	name = unsafeNameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._-")
	if name == "" {
		return "file"
	}
	return name
}

// storageName 随机前缀 + 清洗后的原名，全局唯一
func storageName(original string) string {
	token := strings.ReplaceAll(uuid.New().String(), "-", "")
	return fmt.Sprintf("%s_%s", token, sanitizeFilename(original))
}

func (s *mediaService) Upload(ctx context.Context, owner *model.User, file *multipart.FileHeader) (uint, error) {
	if file == nil || file.Size == 0 {
		return 0, ErrEmptyFile
	}
	if s.maxSize > 0 && file.Size > s.maxSize {
		return 0, ErrFileTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return 0, err
	}
	defer src.Close()

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return 0, err
	}
	name := storageName(file.Filename)
	dst, err := os.Create(filepath.Join(s.uploadDir, name))
	if err != nil {
		return 0, err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return 0, err
	}

	media := &model.Media{FilePath: name, UserID: owner.ID}
	if err := s.mediaRepo.Create(ctx, media); err != nil {
		return 0, err
	}
	return media.ID, nil
}

func (s *mediaService) Get(ctx context.Context, id uint) (*model.Media, error) {
	m, err := s.mediaRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMediaNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (s *mediaService) Path(m *model.Media) string {
	return filepath.Join(s.uploadDir, m.FilePath)
}
