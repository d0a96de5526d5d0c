// Package stubapi is an in-memory stand-in for the warehouse backend. It
// exists so the console and its tests have a real HTTP peer: token issuing,
// role enforcement and the CRUD endpoints all behave like the documented
// API, backed by nothing but maps.
package stubapi

import (
	"net"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/shahidulislam-dev/warehouse-console/internal/domain"
	"github.com/shahidulislam-dev/warehouse-console/internal/observability"
)

// Config configures the stub backend.
type Config struct {
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
}

// Server is the stub backend.
type Server struct {
	app     *fiber.App
	logger  *zap.Logger
	metrics *observability.Metrics
	tokens  *tokenManager
	data    *store
	cost    int
}

// New builds the stub backend and registers all routes.
func New(cfg Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	cost := cfg.BcryptCost
	if cost <= 0 {
		cost = 10
	}

	s := &Server{
		app:     fiber.New(fiber.Config{DisableStartupMessage: true}),
		logger:  logger,
		metrics: observability.NewMetrics(),
		tokens:  newTokenManager(cfg.JWTSecret, cfg.TokenTTL),
		data:    newStore(),
		cost:    cost,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.app.Use(errorHandlingMiddleware(s.logger, s.metrics))
	s.app.Use(requestLogger(s.logger, s.metrics))

	s.app.Get("/health/live", s.handleHealth)
	s.app.Get("/metrics", s.handleMetrics)

	authGroup := s.app.Group("/api/auth")
	authGroup.Post("/signup", s.handleSignup)
	authGroup.Post("/login", s.handleLogin)
	authGroup.Post("/forgotPassword", s.handleForgotPassword)

	authGroup.Post("/changePassword", s.requireAuth, s.handleChangePassword)
	admins := requireRole(domain.RoleAdmin, domain.RoleSuperAdmin)
	authGroup.Get("/get", s.requireAuth, admins, s.handleGetUsers)
	authGroup.Post("/update", s.requireAuth, admins, s.handleUpdateStatus)
	authGroup.Post("/update/role", s.requireAuth, admins, s.handleUpdateRole)
	authGroup.Post("/create/super/admin", s.requireAuth, requireRole(domain.RoleSuperAdmin), s.handleCreateSuperAdmin)

	// Entity routes: any authenticated role may read and edit, only admin
	// and up may delete.
	edit := requireRole(domain.RoleStaff, domain.RoleAdmin, domain.RoleSuperAdmin)
	del := requireRole(domain.RoleAdmin, domain.RoleSuperAdmin)

	wh := s.app.Group("/api/warehouse", s.requireAuth, edit)
	wh.Post("/create", s.handleCreateWarehouse)
	wh.Get("/get/all", s.handleGetWarehouses)
	wh.Get("/get/:id", s.handleGetWarehouse)
	wh.Put("/update/:id", s.handleUpdateWarehouse)
	wh.Delete("/delete/:id", del, s.handleDeleteWarehouse)

	fl := s.app.Group("/api/floor", s.requireAuth, edit)
	fl.Post("/create", s.handleCreateFloor)
	fl.Get("/get/all", s.handleGetFloors)
	fl.Get("/get/by-warehouse/:id", s.handleGetFloorsByWarehouse)
	fl.Get("/get/:id", s.handleGetFloor)
	fl.Put("/update/:id", s.handleUpdateFloor)
	fl.Delete("/delete/:id", del, s.handleDeleteFloor)

	rm := s.app.Group("/api/room", s.requireAuth, edit)
	rm.Post("/create", s.handleCreateRoom)
	rm.Get("/get/all", s.handleGetRooms)
	rm.Get("/get/by-warehouse/:id", s.handleGetRoomsByWarehouse)
	rm.Get("/get/by/floor/:floorId/warehouse/:warehouseId", s.handleGetRoomsByFloor)
	rm.Get("/get/:id", s.handleGetRoom)
	rm.Put("/update/:id", s.handleUpdateRoom)
	rm.Delete("/delete/:id", del, s.handleDeleteRoom)

	gd := s.app.Group("/api/goods", s.requireAuth, edit)
	gd.Post("/create", s.handleCreateGoods)
	gd.Get("/get/all", s.handleGetGoods)
	gd.Get("/get/warehouse/:id", s.handleGetGoodsByWarehouse)
	gd.Get("/get/:id", s.handleGetGoodsItem)
	gd.Put("/update/:id", s.handleUpdateGoods)
	gd.Delete("/delete/:id", del, s.handleDeleteGoods)

	cat := s.app.Group("/api/goods-category", s.requireAuth, edit)
	cat.Post("/create", s.handleCreateCategory)
	cat.Get("/all", s.handleGetCategories)
	cat.Put("/update/:id", s.handleUpdateCategory)
	cat.Delete("/delete/:id", del, s.handleDeleteCategory)
	cat.Get("/:id", s.handleGetCategory)
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) handleMetrics(c *fiber.Ctx) error {
	requests, errors := s.metrics.Snapshot()
	return c.JSON(fiber.Map{"requests": requests, "errors": errors})
}

// App exposes the fiber app for in-process testing.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on addr until Shutdown.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Listener serves on an existing listener; tests use this with a random
// port.
func (s *Server) Listener(l net.Listener) error {
	return s.app.Listener(l)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// SeedUser provisions an account directly in the store, bypassing signup
// approval. Returns the created record.
func (s *Server) SeedUser(fullName, email, contactNumber, password string, role domain.Role, status string) (domain.User, error) {
	hash, err := hashPassword(password, s.cost)
	if err != nil {
		return domain.User{}, err
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	id := s.data.allocID()
	acc := &account{
		user: domain.User{
			ID:            id,
			FullName:      fullName,
			Email:         email,
			ContactNumber: contactNumber,
			Role:          role,
			Status:        status,
		},
		passwordHash: hash,
	}
	s.data.users[id] = acc
	return acc.user, nil
}

// IssueToken signs a token for an arbitrary identity. Tests use this to
// fabricate tokens without a login round trip.
func (s *Server) IssueToken(email string, role domain.Role) (string, error) {
	token, _, err := s.tokens.generate(email, role)
	return token, err
}
