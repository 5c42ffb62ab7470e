package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
)

type contextKey string

const sessionIDKey contextKey = "sessionID"

// sessionValueKey ключ идентификатора внутри зашифрованного значения cookie
const sessionValueKey = "sid"

// SessionManager выдает посетителю подписанную и зашифрованную cookie с идентификатором сессии
type SessionManager struct {
	sc         *securecookie.SecureCookie
	cookieName string
	maxAge     time.Duration
	secure     bool
}

// NewSessionManager создает менеджер сессий
// hashKey - 32 или 64 байта, blockKey - 16, 24 или 32 байта
func NewSessionManager(cookieName string, hashKey, blockKey []byte, maxAge time.Duration, secure bool) *SessionManager {
	sc := securecookie.New(hashKey, blockKey)
	sc.MaxAge(int(maxAge.Seconds()))
	return &SessionManager{
		sc:         sc,
		cookieName: cookieName,
		maxAge:     maxAge,
		secure:     secure,
	}
}

// Session гарантирует наличие идентификатора сессии в контексте запроса
// Отсутствующая или поддельная cookie заменяется новой
func (m *SessionManager) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := m.read(r)
		if !ok {
			sessionID = uuid.NewString()
		}

		// продлеваем cookie на каждом запросе
		if err := m.write(w, sessionID); err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *SessionManager) read(r *http.Request) (string, bool) {
	c, err := r.Cookie(m.cookieName)
	if err != nil {
		return "", false
	}

	value := map[string]string{}
	if err := m.sc.Decode(m.cookieName, c.Value, &value); err != nil {
		return "", false
	}

	sessionID := value[sessionValueKey]
	if _, err := uuid.Parse(sessionID); err != nil {
		return "", false
	}
	return sessionID, true
}

func (m *SessionManager) write(w http.ResponseWriter, sessionID string) error {
	encoded, err := m.sc.Encode(m.cookieName, map[string]string{sessionValueKey: sessionID})
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    encoded,
		Path:     "/",
		MaxAge:   int(m.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// GetSessionID извлекает идентификатор сессии из контекста
func GetSessionID(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(sessionIDKey).(string)
	return sessionID, ok && sessionID != ""
}

// WithSessionID кладет идентификатор сессии в контекст (используется в тестах обработчиков)
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}
