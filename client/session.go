package client

import "github.com/echoshil/rentalanbuildercamp/models"

// Session memegang user + token aktif, padanan AuthContext di SPA.
// Token dipersist lewat Store; saat dibuka lagi, token yang tersimpan
// dipakai untuk mengambil ulang profil.
type Session struct {
	api   *Client
	store Store
	user  *models.User
}

func NewSession(api *Client, store Store) *Session {
	return &Session{api: api, store: store}
}

// Restore memuat token tersimpan dan mengambil ulang profil.
// Token basi/invalid dibersihkan tanpa error; error lain diteruskan.
func (s *Session) Restore() error {
	token, ok := s.store.Get(KeyAuthToken)
	if !ok || token == "" {
		return nil
	}

	s.api.SetToken(token)
	user, err := s.api.Me()
	if err != nil {
		if apiErr, ok := err.(*APIError); ok && apiErr.Status == 401 {
			s.api.SetToken("")
			_ = s.store.Delete(KeyAuthToken)
			return nil
		}
		return err
	}

	s.user = user
	return nil
}

func (s *Session) Register(req RegisterRequest) error {
	token, user, err := s.api.Register(req)
	if err != nil {
		return err
	}
	return s.adopt(token, user)
}

func (s *Session) Login(email, password string) error {
	token, user, err := s.api.Login(email, password)
	if err != nil {
		return err
	}
	return s.adopt(token, user)
}

func (s *Session) adopt(token string, user *models.User) error {
	s.api.SetToken(token)
	s.user = user
	return s.store.Set(KeyAuthToken, token)
}

func (s *Session) Logout() error {
	s.api.SetToken("")
	s.user = nil
	return s.store.Delete(KeyAuthToken)
}

func (s *Session) User() *models.User { return s.user }

func (s *Session) LoggedIn() bool { return s.user != nil }
