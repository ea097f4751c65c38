package handler

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/brawlops/brawlsquad/internal/api/apierr"
	"github.com/brawlops/brawlsquad/internal/api/middleware"
	"github.com/brawlops/brawlsquad/internal/api/request"
	"github.com/brawlops/brawlsquad/internal/api/response"
	"github.com/brawlops/brawlsquad/internal/services/auth"
	"github.com/brawlops/brawlsquad/internal/token"
)

// BrawlerHandler handles registration, login, and brawler-scoped endpoints
type BrawlerHandler struct {
	authService *auth.Service
	cookieCodec *token.Codec
}

// NewBrawlerHandler creates a new brawler handler
func NewBrawlerHandler(authService *auth.Service, cookieCodec *token.Codec) *BrawlerHandler {
	return &BrawlerHandler{
		authService: authService,
		cookieCodec: cookieCodec,
	}
}

// Register handles POST /api/v1/brawlers/register.
// A successful registration logs the brawler in immediately, so the
// response already carries a usable passport.
func (h *BrawlerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("username is required"))
		return
	}
	if req.Password == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("password is required"))
		return
	}
	// Display name is optional and falls back to the username
	displayName := req.DisplayName
	if displayName == "" {
		displayName = req.Username
	}

	passport, err := h.authService.Register(r.Context(), req.Username, req.Password, displayName)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	h.setSessionCookie(w, passport)
	response.JSON(w, http.StatusCreated, response.PassportFromModel(passport))
}

// Login handles POST /api/v1/brawlers/login
func (h *BrawlerHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("username is required"))
		return
	}
	if req.Password == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("password is required"))
		return
	}

	passport, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	h.setSessionCookie(w, passport)
	response.JSON(w, http.StatusOK, response.PassportFromModel(passport))
}

// UploadAvatar handles POST /api/v1/brawlers/avatar
func (h *BrawlerHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	var req request.UploadAvatarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}
	if req.ImageBase64 == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("image_base64 is required"))
		return
	}
	// The reference embeds the payload verbatim, so it has to decode
	if _, err := base64.StdEncoding.DecodeString(req.ImageBase64); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("image_base64 is not valid base64"))
		return
	}

	brawlerID := middleware.MustGetBrawlerID(r.Context())

	url, err := h.authService.UploadAvatar(r.Context(), brawlerID, req.ImageBase64)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.Avatar{URL: url})
}

// MyMissions handles GET /api/v1/brawlers/my-missions
func (h *BrawlerHandler) MyMissions(w http.ResponseWriter, r *http.Request) {
	brawlerID := middleware.MustGetBrawlerID(r.Context())

	views, err := h.authService.MyMissions(r.Context(), brawlerID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MissionViewsFromModel(views))
}

// setSessionCookie issues a cookie-surface credential alongside the
// passport, signed with the cookie codec's own secret
func (h *BrawlerHandler) setSessionCookie(w http.ResponseWriter, passport *auth.Passport) {
	if h.cookieCodec == nil {
		return
	}

	raw, err := h.cookieCodec.Issue(string(passport.BrawlerID))
	if err != nil {
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    raw,
		Path:     "/",
		MaxAge:   passport.ExpiresIn,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
