package web

import (
	"html/template"
	"log/slog"
	"net/http"

	adminapp "github.com/dwikikusuma/storefront/internal/admin/app"
	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	orderapp "github.com/dwikikusuma/storefront/internal/order/app"
	"github.com/dwikikusuma/storefront/pkg/session"
)

type Server struct {
	log      *slog.Logger
	catalog  *catalogapp.Service
	cart     *cartapp.Service
	checkout *checkoutapp.Service
	orders   *orderapp.Service
	admin    *adminapp.Service
	sessions *session.Codec
	tmpl     *template.Template

	uploadsDir string
}

type Options struct {
	Log        *slog.Logger
	Catalog    *catalogapp.Service
	Cart       *cartapp.Service
	Checkout   *checkoutapp.Service
	Orders     *orderapp.Service
	Admin      *adminapp.Service
	Sessions   *session.Codec
	UploadsDir string
}

func NewServer(opts Options) (*Server, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	return &Server{
		log:        opts.Log,
		catalog:    opts.Catalog,
		cart:       opts.Cart,
		checkout:   opts.Checkout,
		orders:     opts.Orders,
		admin:      opts.Admin,
		sessions:   opts.Sessions,
		tmpl:       tmpl,
		uploadsDir: opts.UploadsDir,
	}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /add_to_cart", s.handleAddToCart)
	mux.HandleFunc("POST /update_cart", s.handleUpdateCart)
	mux.HandleFunc("GET /remove/{product_id}", s.handleRemoveFromCart)
	mux.HandleFunc("GET /cart", s.handleCart)
	mux.HandleFunc("GET /checkout", s.handleCheckoutForm)
	mux.HandleFunc("POST /checkout", s.handleCheckoutSubmit)

	mux.HandleFunc("GET /admin/login", s.handleAdminLoginForm)
	mux.HandleFunc("POST /admin/login", s.handleAdminLoginSubmit)
	mux.HandleFunc("GET /admin", s.handleAdminDashboard)
	mux.HandleFunc("GET /admin/logout", s.handleAdminLogout)

	// Stored screenshots are public static assets.
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/",
		http.FileServer(http.Dir(s.uploadsDir))))

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	return mux
}
