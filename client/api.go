package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/echoshil/rentalanbuildercamp/models"
)

// APIError membawa status HTTP + pesan server supaya pemanggil bisa
// menampilkannya apa adanya.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) SetToken(token string) { c.token = token }
func (c *Client) Token() string         { return c.token }

func (c *Client) do(method, path string, body any, out any) error {
	var reqBody *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("gagal memanggil API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var e struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		if e.Message == "" {
			e.Message = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: e.Message}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// ===== Auth =====

type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Nama      string `json:"nama"`
	NoTelepon string `json:"no_telepon,omitempty"`
}

type authResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	Data    models.User `json:"data"`
}

func (c *Client) Register(req RegisterRequest) (string, *models.User, error) {
	var resp authResponse
	if err := c.do(http.MethodPost, "/api/auth/register", req, &resp); err != nil {
		return "", nil, err
	}
	return resp.Token, &resp.Data, nil
}

func (c *Client) Login(email, password string) (string, *models.User, error) {
	var resp authResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.do(http.MethodPost, "/api/auth/login", body, &resp); err != nil {
		return "", nil, err
	}
	return resp.Token, &resp.Data, nil
}

func (c *Client) Me() (*models.User, error) {
	var resp struct {
		Data models.User `json:"data"`
	}
	if err := c.do(http.MethodGet, "/api/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

type ProfileUpdate struct {
	Nama      *string `json:"nama,omitempty"`
	NoTelepon *string `json:"no_telepon,omitempty"`
	Alamat    *string `json:"alamat,omitempty"`
	Kota      *string `json:"kota,omitempty"`
}

func (c *Client) UpdateProfile(upd ProfileUpdate) (*models.User, error) {
	var resp struct {
		Data models.User `json:"data"`
	}
	if err := c.do(http.MethodPut, "/api/auth/profile", upd, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// ===== Katalog =====

type ListBarangParams struct {
	Page     int
	Limit    int
	Kategori string
	Search   string
}

type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

func (c *Client) ListBarang(p ListBarangParams) ([]models.Barang, *Pagination, error) {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Kategori != "" {
		q.Set("kategori", p.Kategori)
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}

	path := "/api/barang"
	if enc := q.Encode(); enc != "" {
		path += "?" + enc
	}

	var resp struct {
		Data       []models.Barang `json:"data"`
		Pagination *Pagination     `json:"pagination"`
	}
	if err := c.do(http.MethodGet, path, nil, &resp); err != nil {
		return nil, nil, err
	}
	return resp.Data, resp.Pagination, nil
}

func (c *Client) GetBarang(id uint) (*models.Barang, error) {
	var resp struct {
		Data models.Barang `json:"data"`
	}
	if err := c.do(http.MethodGet, fmt.Sprintf("/api/barang/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *Client) ListKategori() ([]string, error) {
	var resp struct {
		Data []string `json:"data"`
	}
	if err := c.do(http.MethodGet, "/api/kategori", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) ListPaket() ([]models.Paket, error) {
	var resp struct {
		Data []models.Paket `json:"data"`
	}
	if err := c.do(http.MethodGet, "/api/paket", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) GetPaket(id uint) (*models.Paket, error) {
	var resp struct {
		Data models.Paket `json:"data"`
	}
	if err := c.do(http.MethodGet, fmt.Sprintf("/api/paket/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// ===== Orders =====

type OrderLineRequest struct {
	BarangID uint `json:"barang_id"`
	Jumlah   int  `json:"jumlah"`
	Durasi   int  `json:"durasi"`
}

type CreateOrderRequest struct {
	Items            []OrderLineRequest `json:"items"`
	AlamatPengiriman string             `json:"alamat_pengiriman"`
	NoTelepon        string             `json:"no_telepon"`
	Catatan          string             `json:"catatan,omitempty"`
	BuktiPembayaran  string             `json:"bukti_pembayaran"`
}

type CreateOrderResult struct {
	OrderID      uint    `json:"order_id"`
	NomorPesanan string  `json:"nomor_pesanan"`
	TotalHarga   float64 `json:"total_harga"`
}

func (c *Client) CreateOrder(req CreateOrderRequest) (*CreateOrderResult, error) {
	var resp struct {
		Data CreateOrderResult `json:"data"`
	}
	if err := c.do(http.MethodPost, "/api/orders", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *Client) MyOrders() ([]models.Order, error) {
	var resp struct {
		Data []models.Order `json:"data"`
	}
	if err := c.do(http.MethodGet, "/api/orders", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) GetOrder(id uint) (*models.Order, error) {
	var resp struct {
		Data models.Order `json:"data"`
	}
	if err := c.do(http.MethodGet, fmt.Sprintf("/api/orders/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *Client) UpdateOrderStatus(id uint, status models.ShipmentStatus) error {
	body := map[string]string{"status": string(status)}
	return c.do(http.MethodPut, fmt.Sprintf("/api/orders/%d/status", id), body, nil)
}

func (c *Client) VerifyPayment(id uint) error {
	return c.do(http.MethodPut, fmt.Sprintf("/api/orders/%d/payment/verify", id), nil, nil)
}

func (c *Client) RejectPayment(id uint) error {
	return c.do(http.MethodPut, fmt.Sprintf("/api/orders/%d/payment/reject", id), nil, nil)
}
