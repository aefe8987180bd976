package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sunflowers/shopfront/internal/client/api"
	"github.com/sunflowers/shopfront/internal/client/models"
	"github.com/sunflowers/shopfront/internal/client/repositories/session"
	"github.com/sunflowers/shopfront/internal/common"
	"github.com/sunflowers/shopfront/internal/logging"
)

// CheckoutService drives the payment flow: address selection, PayPal order
// creation (the shopper is redirected to the returned approve URL), and
// status polling by order id. The selected address and the pending order
// id are persisted so an interrupted checkout can resume.
type CheckoutService struct {
	gateway   *api.Gateway
	endpoints *api.Endpoints
	store     session.Repository
	log       logging.Logger
}

func NewCheckoutService(gw *api.Gateway, endpoints *api.Endpoints, store session.Repository, log logging.Logger) *CheckoutService {
	return &CheckoutService{gateway: gw, endpoints: endpoints, store: store, log: log}
}

// SelectAddress persists the delivery address for the pending checkout.
func (s *CheckoutService) SelectAddress(ctx context.Context, addr models.Address) error {
	raw, err := json.Marshal(addr)
	if err != nil {
		return fmt.Errorf("encoding address: %w", err)
	}
	return s.store.Set(ctx, session.KeySelectedAddress, raw)
}

// SelectedAddress returns the stored address, or common.ErrNotFound when
// none was selected yet.
func (s *CheckoutService) SelectedAddress(ctx context.Context) (*models.Address, error) {
	raw, err := s.store.Get(ctx, session.KeySelectedAddress)
	if err != nil {
		return nil, err
	}
	var addr models.Address
	if err := json.Unmarshal(raw, &addr); err != nil {
		return nil, fmt.Errorf("decoding stored address: %w", err)
	}
	return &addr, nil
}

// CreateOrder asks the backend to create a PayPal order for the current
// cart. The order id is persisted for later polling; the approve URL is
// where the shopper completes payment.
func (s *CheckoutService) CreateOrder(ctx context.Context) (*models.Order, error) {
	var resp api.Envelope[models.Order]
	status, err := s.gateway.JSON(ctx, http.MethodPost, s.endpoints.CheckoutPayPal(), struct{}{}, &resp, nil)
	if err != nil {
		return nil, err
	}
	if !api.IsSuccess(status) {
		return nil, statusToErr(status)
	}

	if err := s.store.Set(ctx, session.KeyOrderID, []byte(resp.Data.OrderID)); err != nil {
		return nil, fmt.Errorf("persisting order id: %w", err)
	}

	s.log.Info(ctx, "paypal order created", "order_id", resp.Data.OrderID)
	return &resp.Data, nil
}

// OrderStatus polls payment state. With an empty orderID the persisted
// pending order is used; common.ErrNotFound means there is none.
func (s *CheckoutService) OrderStatus(ctx context.Context, orderID string) (*models.OrderStatus, error) {
	if orderID == "" {
		raw, err := s.store.Get(ctx, session.KeyOrderID)
		if err != nil {
			return nil, common.ErrNotFound
		}
		orderID = string(raw)
	}

	var resp api.Envelope[models.OrderStatus]
	status, err := s.gateway.JSON(ctx, http.MethodGet, s.endpoints.CheckoutStatus(orderID), nil, &resp, nil)
	if err != nil {
		return nil, err
	}
	if !api.IsSuccess(status) {
		return nil, statusToErr(status)
	}
	return &resp.Data, nil
}
