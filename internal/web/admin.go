package web

import (
	"errors"
	"net/http"

	adminapp "github.com/dwikikusuma/storefront/internal/admin/app"
)

func (s *Server) handleAdminLoginForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, "admin_login.html", map[string]any{"Error": ""})
}

func (s *Server) handleAdminLoginSubmit(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	if err := s.admin.Login(username, password); err != nil {
		if !errors.Is(err, adminapp.ErrInvalidCredentials) {
			s.serverError(w, r, "admin login", err)
			return
		}
		s.render(w, "admin_login.html", map[string]any{"Error": "Invalid credentials"})
		return
	}

	sess := s.sessions.Load(r)
	sess.Admin = true
	s.sessions.Save(w, sess)

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (s *Server) handleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Load(r)
	if !sess.Admin {
		http.Redirect(w, r, "/admin/login", http.StatusFound)
		return
	}

	orders, err := s.orders.ListOrders(r.Context())
	if err != nil {
		s.serverError(w, r, "list orders", err)
		return
	}
	s.render(w, "admin_dashboard.html", map[string]any{"Orders": orders})
}

func (s *Server) handleAdminLogout(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Load(r)
	sess.Admin = false
	s.sessions.Save(w, sess)

	http.Redirect(w, r, "/", http.StatusFound)
}
