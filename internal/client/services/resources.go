package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/krishnapriya5647/smart-asset-system/internal/client/api"
	"github.com/krishnapriya5647/smart-asset-system/internal/client/models"
)

// ListFilter carries the common list query parameters: free-text search,
// status filter, and the employee scope filter.
type ListFilter struct {
	Query      string
	Status     string
	EmployeeID int64
}

func (f ListFilter) encode() string {
	v := url.Values{}
	if f.Query != "" {
		v.Set("q", f.Query)
	}
	if f.Status != "" {
		v.Set("status", f.Status)
	}
	if f.EmployeeID != 0 {
		v.Set("employee", strconv.FormatInt(f.EmployeeID, 10))
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

type AssetService struct {
	client *api.Client
}

func NewAssetService(c *api.Client) *AssetService {
	return &AssetService{client: c}
}

func (s *AssetService) List(ctx context.Context, f ListFilter) ([]*models.Asset, error) {
	var out []*models.Asset
	err := s.client.Do(ctx, http.MethodGet, "/api/assets/"+f.encode(), nil, &out)
	return out, err
}

func (s *AssetService) Get(ctx context.Context, id int64) (*models.Asset, error) {
	var out models.Asset
	if err := s.client.Do(ctx, http.MethodGet, fmt.Sprintf("/api/assets/%d/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AssetService) Create(ctx context.Context, a *models.Asset) (*models.Asset, error) {
	var out models.Asset
	if err := s.client.Do(ctx, http.MethodPost, "/api/assets/", a, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AssetService) Update(ctx context.Context, a *models.Asset) (*models.Asset, error) {
	var out models.Asset
	if err := s.client.Do(ctx, http.MethodPatch, fmt.Sprintf("/api/assets/%d/", a.ID), a, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AssetService) Delete(ctx context.Context, id int64) error {
	return s.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/api/assets/%d/", id), nil, nil)
}

type InventoryService struct {
	client *api.Client
}

func NewInventoryService(c *api.Client) *InventoryService {
	return &InventoryService{client: c}
}

func (s *InventoryService) List(ctx context.Context) ([]*models.InventoryItem, error) {
	var out []*models.InventoryItem
	err := s.client.Do(ctx, http.MethodGet, "/api/inventory/", nil, &out)
	return out, err
}

func (s *InventoryService) Create(ctx context.Context, item *models.InventoryItem) (*models.InventoryItem, error) {
	var out models.InventoryItem
	if err := s.client.Do(ctx, http.MethodPost, "/api/inventory/", item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *InventoryService) Update(ctx context.Context, item *models.InventoryItem) (*models.InventoryItem, error) {
	var out models.InventoryItem
	if err := s.client.Do(ctx, http.MethodPatch, fmt.Sprintf("/api/inventory/%d/", item.ID), item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *InventoryService) Delete(ctx context.Context, id int64) error {
	return s.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/api/inventory/%d/", id), nil, nil)
}

type AssignmentService struct {
	client *api.Client
}

func NewAssignmentService(c *api.Client) *AssignmentService {
	return &AssignmentService{client: c}
}

func (s *AssignmentService) List(ctx context.Context, f ListFilter) ([]*models.Assignment, error) {
	var out []*models.Assignment
	err := s.client.Do(ctx, http.MethodGet, "/api/assignments/"+f.encode(), nil, &out)
	return out, err
}

func (s *AssignmentService) Create(ctx context.Context, a *models.Assignment) (*models.Assignment, error) {
	var out models.Assignment
	if err := s.client.Do(ctx, http.MethodPost, "/api/assignments/", a, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AssignmentService) RequestReturn(ctx context.Context, id int64, note string) error {
	body := map[string]string{"note": note}
	return s.client.Do(ctx, http.MethodPost, fmt.Sprintf("/api/assignments/%d/request-return/", id), body, nil)
}

func (s *AssignmentService) ConfirmReturn(ctx context.Context, id int64) error {
	return s.client.Do(ctx, http.MethodPost, fmt.Sprintf("/api/assignments/%d/confirm-return/", id), nil, nil)
}

type TicketService struct {
	client *api.Client
}

func NewTicketService(c *api.Client) *TicketService {
	return &TicketService{client: c}
}

func (s *TicketService) List(ctx context.Context, f ListFilter) ([]*models.RepairTicket, error) {
	var out []*models.RepairTicket
	err := s.client.Do(ctx, http.MethodGet, "/api/tickets/"+f.encode(), nil, &out)
	return out, err
}

func (s *TicketService) Create(ctx context.Context, t *models.RepairTicket) (*models.RepairTicket, error) {
	var out models.RepairTicket
	if err := s.client.Do(ctx, http.MethodPost, "/api/tickets/", t, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *TicketService) MarkDone(ctx context.Context, id int64, note string) error {
	body := map[string]string{"note": note}
	return s.client.Do(ctx, http.MethodPost, fmt.Sprintf("/api/tickets/%d/mark-done/", id), body, nil)
}

func (s *TicketService) ApproveClose(ctx context.Context, id int64) error {
	return s.client.Do(ctx, http.MethodPost, fmt.Sprintf("/api/tickets/%d/approve-close/", id), nil, nil)
}

type UserService struct {
	client *api.Client
}

func NewUserService(c *api.Client) *UserService {
	return &UserService{client: c}
}

func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	var out []*models.User
	err := s.client.Do(ctx, http.MethodGet, "/api/users/", nil, &out)
	return out, err
}

type DashboardService struct {
	client *api.Client
}

func NewDashboardService(c *api.Client) *DashboardService {
	return &DashboardService{client: c}
}

func (s *DashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	var out models.DashboardStats
	if err := s.client.Do(ctx, http.MethodGet, "/api/dashboard/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *DashboardService) Recent(ctx context.Context, limit int) (*models.RecentActivity, error) {
	var out models.RecentActivity
	path := "/api/recent-activity/"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	if err := s.client.Do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
