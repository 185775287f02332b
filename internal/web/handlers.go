package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	cartdomain "github.com/dwikikusuma/storefront/internal/cart/domain"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
)

const maxUploadBytes = 16 << 20

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	products, err := s.catalog.ListProducts(r.Context())
	if err != nil {
		s.serverError(w, r, "list products", err)
		return
	}
	s.render(w, "index.html", map[string]any{"Products": products})
}

func (s *Server) handleAddToCart(w http.ResponseWriter, r *http.Request) {
	productID, err := formInt(r, "product_id")
	if err != nil {
		http.Error(w, "invalid product_id", http.StatusBadRequest)
		return
	}
	qty, err := formIntDefault(r, "quantity", 1)
	if err != nil {
		http.Error(w, "invalid quantity", http.StatusBadRequest)
		return
	}

	sess := s.sessions.Load(r)
	s.cart.Add(cartdomain.Cart(sess.Cart), productID, qty)
	s.sessions.Save(w, sess)

	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

func (s *Server) handleUpdateCart(w http.ResponseWriter, r *http.Request) {
	productID, err := formInt(r, "product_id")
	if err != nil {
		http.Error(w, "invalid product_id", http.StatusBadRequest)
		return
	}
	qty, err := formIntDefault(r, "quantity", 0)
	if err != nil {
		http.Error(w, "invalid quantity", http.StatusBadRequest)
		return
	}

	sess := s.sessions.Load(r)
	s.cart.Update(cartdomain.Cart(sess.Cart), productID, qty)
	s.sessions.Save(w, sess)

	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

func (s *Server) handleRemoveFromCart(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(r.PathValue("product_id"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	sess := s.sessions.Load(r)
	s.cart.Remove(cartdomain.Cart(sess.Cart), productID)
	s.sessions.Save(w, sess)

	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

func (s *Server) handleCart(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Load(r)
	lines, total, err := s.cart.Lines(r.Context(), cartdomain.Cart(sess.Cart))
	if err != nil {
		s.serverError(w, r, "price cart", err)
		return
	}
	s.render(w, "cart.html", map[string]any{"Lines": lines, "Total": total})
}

func (s *Server) handleCheckoutForm(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Load(r)
	_, total, err := s.cart.Lines(r.Context(), cartdomain.Cart(sess.Cart))
	if err != nil {
		s.serverError(w, r, "price cart", err)
		return
	}
	s.render(w, "checkout.html", map[string]any{"Total": total})
}

func (s *Server) handleCheckoutSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	var screenshot *checkoutapp.Upload
	file, header, err := r.FormFile("screenshot")
	switch {
	case err == nil:
		defer file.Close()
		if header.Filename != "" {
			screenshot = &checkoutapp.Upload{Filename: header.Filename, Data: file}
		}
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		// No screenshot attached.
	default:
		http.Error(w, "invalid upload", http.StatusBadRequest)
		return
	}

	sess := s.sessions.Load(r)
	order, err := s.checkout.PlaceOrder(r.Context(), checkoutapp.PlaceOrderRequest{
		Name:       r.FormValue("name"),
		Address:    r.FormValue("address"),
		Phone:      r.FormValue("phone"),
		Cart:       sess.Cart,
		Screenshot: screenshot,
	})
	if err != nil {
		if errors.Is(err, checkoutapp.ErrEmptyCart) {
			http.Redirect(w, r, "/cart", http.StatusSeeOther)
			return
		}
		s.serverError(w, r, "place order", err)
		return
	}

	s.cart.Clear(cartdomain.Cart(sess.Cart))
	s.sessions.Save(w, sess)

	s.log.Info("order placed",
		slog.String("order_id", order.OrderID),
		slog.Int("items", len(order.OrderItems)))
	s.render(w, "success.html", map[string]any{"Order": order})
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, op string, err error) {
	s.log.Error("request failed",
		slog.String("op", op),
		slog.String("path", r.URL.Path),
		slog.Any("err", err))
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func formInt(r *http.Request, key string) (int, error) {
	return strconv.Atoi(r.FormValue(key))
}

func formIntDefault(r *http.Request, key string, def int) (int, error) {
	raw := r.FormValue(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
