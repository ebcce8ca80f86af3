package handlers

import (
	"net/http"

	"github.com/barbershop-express/booking-web/internal/session"
)

type loginView struct {
	Error string
}

// LoginPage renders the admin password gate. A session that is already
// authenticated skips straight to the dashboard.
func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	sessionID := session.EnsureCookie(w, r)
	data, err := h.sessions.Get(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("login page: session lookup failed", "error", err)
	}
	if data.Admin {
		http.Redirect(w, r, "/admin/dashboard?tab=appointments", http.StatusSeeOther)
		return
	}
	h.renderer.Render(w, http.StatusOK, "login.html", loginView{})
}

// Login checks the submitted password against the configured literal. The
// check is equality only; there is no hashing, lockout or rate limit.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.Render(w, http.StatusBadRequest, "login.html", loginView{Error: "Não foi possível ler o formulário."})
		return
	}
	if r.PostFormValue("password") != h.cfg.AdminPassword {
		h.renderer.Render(w, http.StatusOK, "login.html", loginView{Error: "Senha incorreta!"})
		return
	}

	sessionID := session.EnsureCookie(w, r)
	if err := h.sessions.SetAdmin(r.Context(), sessionID, true); err != nil {
		h.logger.Error("login: session write failed", "error", err)
		h.renderer.Render(w, http.StatusInternalServerError, "login.html", loginView{Error: "Não foi possível iniciar a sessão. Tente novamente."})
		return
	}
	http.Redirect(w, r, "/admin/dashboard?tab=appointments", http.StatusSeeOther)
}

// Logout clears the admin flag and returns to the gate.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID := session.IDFromRequest(r)
	if err := h.sessions.SetAdmin(r.Context(), sessionID, false); err != nil {
		h.logger.Error("logout: session write failed", "error", err)
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}
