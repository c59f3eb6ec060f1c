package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/shoplite/internal/config"

	"github.com/google/uuid"
)

// UploadService 商品图片上传服务
type UploadService struct {
	cfg *config.Config
}

// NewUploadService 创建上传服务实例
func NewUploadService(cfg *config.Config) *UploadService {
	return &UploadService{cfg: cfg}
}

// SaveImage 保存上传的商品图片，返回存储文件名。
// 文件名格式为 <uuid>_<原始文件名去空格>，类型通过文件头嗅探校验。
func (s *UploadService) SaveImage(file *multipart.FileHeader) (string, error) {
	if s.cfg.Upload.MaxSize > 0 && file.Size > s.cfg.Upload.MaxSize {
		return "", ErrFileTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// 读取文件头部识别 MIME 类型
	buffer := make([]byte, 512)
	if _, err := src.Read(buffer); err != nil && err != io.EOF {
		return "", err
	}
	if _, err := src.Seek(0, 0); err != nil {
		return "", err
	}

	contentType := http.DetectContentType(buffer)
	if !s.isAllowedType(contentType) {
		return "", fmt.Errorf("%w: %s", ErrFileTypeInvalid, contentType)
	}

	filename := fmt.Sprintf("%s_%s", uuid.New().String(), sanitizeFilename(file.Filename))
	if err := os.MkdirAll(s.cfg.Upload.Dir, 0o755); err != nil {
		return "", err
	}

	dst, err := os.Create(filepath.Join(s.cfg.Upload.Dir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return filename, nil
}

// ResolvePath 将存储文件名解析为磁盘路径，拒绝路径穿越。
func (s *UploadService) ResolvePath(filename string) (string, error) {
	cleaned := filepath.Base(strings.TrimSpace(filename))
	if cleaned == "" || cleaned == "." || cleaned != filename {
		return "", ErrNotFound
	}
	full := filepath.Join(s.cfg.Upload.Dir, cleaned)
	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		return "", ErrNotFound
	}
	return full, nil
}

// PublicImagePath 存储文件名对应的对外访问路径
func PublicImagePath(filename string) string {
	return "/api/v1/products/images/" + filename
}

func (s *UploadService) isAllowedType(contentType string) bool {
	allowed := s.cfg.Upload.AllowedTypes
	if len(allowed) == 0 {
		allowed = []string{"image/jpeg", "image/png", "image/gif"}
	}
	for _, t := range allowed {
		if strings.EqualFold(contentType, t) {
			return true
		}
	}
	return false
}

func sanitizeFilename(raw string) string {
	name := filepath.Base(strings.TrimSpace(raw))
	name = strings.ReplaceAll(name, " ", "")
	if name == "" || name == "." {
		return "image"
	}
	return name
}
