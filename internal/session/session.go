package session

import (
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
)

const cookieName = "tablebooker_session"

// Manager encodes the staff identity into a signed, encrypted cookie.
type Manager struct {
	sc *securecookie.SecureCookie
}

func NewManager(hashKey, blockKey []byte, maxAge time.Duration) *Manager {
	sc := securecookie.New(hashKey, blockKey)
	sc.MaxAge(int(maxAge.Seconds()))
	return &Manager{sc: sc}
}

func (m *Manager) SetStaff(w http.ResponseWriter, r *http.Request, username string) error {
	value := map[string]string{"staff": username}
	encoded, err := m.sc.Encode(cookieName, value)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.TLS != nil,
	})
	return nil
}

func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// GetStaff returns the authenticated staff username, if any.
func (m *Manager) GetStaff(r *http.Request) (string, bool) {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return "", false
	}
	value := map[string]string{}
	if err := m.sc.Decode(cookieName, c.Value, &value); err != nil {
		return "", false
	}
	staff := value["staff"]
	if staff == "" {
		return "", false
	}
	return staff, true
}
