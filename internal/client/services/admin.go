package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/sunflowers/shopfront/internal/client/api"
	"github.com/sunflowers/shopfront/internal/client/models"
	"github.com/sunflowers/shopfront/internal/common"
	"github.com/sunflowers/shopfront/internal/logging"
)

// CreateProductRequest is the admin product-creation payload.
type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price" validate:"required,gt=0"`
}

// AdminService wraps the dashboard operations. Every call is gated on the
// session's IsAdmin check; the backend enforces the same rule
// independently.
type AdminService struct {
	sessions  *SessionService
	gateway   *api.Gateway
	endpoints *api.Endpoints
	validate  *validator.Validate
	log       logging.Logger
}

func NewAdminService(sessions *SessionService, endpoints *api.Endpoints, log logging.Logger) *AdminService {
	return &AdminService{
		sessions:  sessions,
		gateway:   sessions.Gateway(),
		endpoints: endpoints,
		validate:  validator.New(),
		log:       log,
	}
}

func (s *AdminService) guard() error {
	if !s.sessions.IsAdmin() {
		return common.ErrAdminOnly
	}
	return nil
}

func (s *AdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	var resp api.Envelope[[]models.User]
	status, err := s.gateway.JSON(ctx, http.MethodGet, s.endpoints.AdminUsers(), nil, &resp, nil)
	if err != nil {
		return nil, err
	}
	if !api.IsSuccess(status) {
		return nil, statusToErr(status)
	}
	return resp.Data, nil
}

func (s *AdminService) CreateProduct(ctx context.Context, req CreateProductRequest) (*models.Product, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	var resp api.Envelope[models.Product]
	status, err := s.gateway.JSON(ctx, http.MethodPost, s.endpoints.Products(nil), req, &resp, nil)
	if err != nil {
		return nil, err
	}
	if !api.IsSuccess(status) {
		return nil, statusToErr(status)
	}

	s.log.Info(ctx, "product created", "product_id", resp.Data.ID, "name", resp.Data.Name)
	return &resp.Data, nil
}

// UploadProductImage sends a product picture as a multipart form. The
// multipart boundary content type is preserved end to end.
func (s *AdminService) UploadProductImage(ctx context.Context, productID int64, filename string, r io.Reader) error {
	if err := s.guard(); err != nil {
		return err
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return fmt.Errorf("building multipart form: %w", err)
	}
	if _, err := io.Copy(fw, r); err != nil {
		return fmt.Errorf("reading image: %w", err)
	}
	if err := mw.Close(); err != nil {
		return err
	}

	status, err := s.gateway.Multipart(ctx, s.endpoints.ProductImages(productID), &api.MultipartPayload{
		Body:        &buf,
		ContentType: mw.FormDataContentType(),
	}, nil)
	if err != nil {
		return err
	}
	if !api.IsSuccess(status) {
		return statusToErr(status)
	}
	return nil
}
