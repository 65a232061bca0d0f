package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"newsdesk/internal/common/validate"
	"newsdesk/internal/handler/http/clientip"
	"newsdesk/internal/handler/http/respond"
	"newsdesk/internal/observability/logging"
	authservice "newsdesk/internal/service/auth"
)

// LoginService is the part of the auth service the login handler needs.
type LoginService interface {
	Login(ctx context.Context, creds authservice.Credentials) (string, authservice.Session, error)
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"admin@example.com"`
	Password string `json:"password" validate:"required" example:"correct horse battery staple"`
}

// LoginHandler exchanges admin credentials for a session cookie.
type LoginHandler struct {
	Svc       LoginService
	Limiter   *LoginLimiter
	IP        clientip.Extractor
	Cookies   CookieOptions
	Validator *validate.Validator
	Logger    *slog.Logger
}

// ServeHTTP godoc
// @Summary      管理者ログイン
// @Description  メールアドレスとパスワードを検証し、セッションクッキーを発行します
// @Tags         auth
// @Accept       json
// @Param        credentials body LoginRequest true "管理者の認証情報"
// @Success      204 "session_token クッキーを設定"
// @Failure      400 {object} respond.ErrorBody "リクエスト不正"
// @Failure      401 {object} respond.ErrorBody "認証失敗"
// @Failure      429 {object} respond.ErrorBody "試行回数超過"
// @Router       /auth/login [post]
func (h LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger := logging.WithRequestID(r.Context(), h.Logger)

	if h.Limiter != nil {
		ip, err := h.IP.ExtractIP(r)
		if err != nil {
			ip = r.RemoteAddr
		}
		if ok, wait := h.Limiter.Allow(ip); !ok {
			RecordLoginThrottled()
			RecordAuthRequest("throttled", time.Since(start).Seconds())
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
			respond.Error(w, http.StatusTooManyRequests, errors.New("too many login attempts"))
			return
		}
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RecordAuthRequest("invalid", time.Since(start).Seconds())
		respond.Error(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		RecordAuthRequest("invalid", time.Since(start).Seconds())
		respond.Failure(w, r, err)
		return
	}

	token, sess, err := h.Svc.Login(r.Context(), authservice.Credentials{Email: req.Email, Password: req.Password})
	if err != nil {
		RecordAuthRequest("failure", time.Since(start).Seconds())
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			logger.Warn("login rejected", slog.String("reason", "invalid credentials"))
			respond.Error(w, http.StatusUnauthorized, authservice.ErrInvalidCredentials)
			return
		}
		logger.Error("login failed", slog.String("error", respond.SanitizeError(err)))
		respond.Error(w, http.StatusInternalServerError, errors.New("internal server error"))
		return
	}

	h.Cookies.Set(w, token)
	RecordAuthRequest("success", time.Since(start).Seconds())
	logger.Info("admin logged in", slog.Time("expires_at", sess.ExpiresAt))
	w.WriteHeader(http.StatusNoContent)
}

// LogoutHandler godoc
// @Summary      ログアウト
// @Description  セッションCookieを失効させます
// @Tags         auth
// @Success      204 "クッキーを削除"
// @Router       /auth/logout [post]
func LogoutHandler(cookies CookieOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		cookies.Clear(w)
		w.WriteHeader(http.StatusNoContent)
	}
}

// SessionInfo is the body of GET /admin/session.
type SessionInfo struct {
	Subject   string    `json:"subject" example:"admin@example.com"`
	Role      string    `json:"role" example:"admin"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SessionHandler godoc
// @Summary      セッション確認
// @Description  ゲートを通過したセッションの内容を返します。管理画面の初期表示に使います。
// @Tags         auth
// @Security     SessionCookie
// @Produce      json
// @Success      200 {object} SessionInfo "有効なセッション"
// @Failure      403 {object} respond.ErrorBody "セッションなし"
// @Router       /admin/session [get]
func SessionHandler(w http.ResponseWriter, r *http.Request) {
	sess, ok := SessionFromContext(r.Context())
	if !ok {
		// Gate の外にマウントされた場合
		respond.Forbidden(w)
		return
	}
	respond.JSON(w, http.StatusOK, SessionInfo{Subject: sess.Subject, Role: sess.Role, ExpiresAt: sess.ExpiresAt})
}
