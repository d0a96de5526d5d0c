package stubapi

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/shahidulislam-dev/warehouse-console/internal/domain"
	apperrors "github.com/shahidulislam-dev/warehouse-console/pkg/util"
)

func pathID(c *fiber.Ctx, name string) (int, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid id")
	}
	return id, nil
}

// --- warehouses ---

func (s *Server) handleCreateWarehouse(c *fiber.Ctx) error {
	var req domain.WarehouseRequest
	if err := c.BodyParser(&req); err != nil || req.Name == "" {
		return apperrors.NewValidationError("name is required")
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	id := s.data.allocID()
	s.data.warehouses[id] = &domain.Warehouse{ID: id, Name: req.Name}
	return c.SendString("Warehouse created successfully")
}

func (s *Server) handleGetWarehouses(c *fiber.Ctx) error {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	out := make([]domain.Warehouse, 0, len(s.data.warehouses))
	for _, w := range s.data.warehouses {
		out = append(out, *w)
	}
	return c.JSON(out)
}

func (s *Server) handleGetWarehouse(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	w, ok := s.data.warehouses[id]
	if !ok {
		return apperrors.NewNotFound("warehouse")
	}
	return c.JSON(*w)
}

func (s *Server) handleUpdateWarehouse(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req domain.WarehouseRequest
	if err := c.BodyParser(&req); err != nil || req.Name == "" {
		return apperrors.NewValidationError("name is required")
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	w, ok := s.data.warehouses[id]
	if !ok {
		return apperrors.NewNotFound("warehouse")
	}
	w.Name = req.Name
	return c.SendString("Warehouse updated successfully")
}

func (s *Server) handleDeleteWarehouse(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	if _, ok := s.data.warehouses[id]; !ok {
		return apperrors.NewNotFound("warehouse")
	}
	delete(s.data.warehouses, id)
	return c.SendString("Warehouse deleted successfully")
}

// --- floors ---

func (s *Server) handleCreateFloor(c *fiber.Ctx) error {
	var req domain.FloorRequest
	if err := c.BodyParser(&req); err != nil || req.Name == "" {
		return apperrors.NewValidationError("name is required")
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	if _, ok := s.data.warehouses[req.WarehouseID]; !ok {
		return apperrors.NewNotFound("warehouse")
	}
	id := s.data.allocID()
	s.data.floors[id] = &floorRec{id: id, name: req.Name, warehouseID: req.WarehouseID}
	return c.SendString("Floor created successfully")
}

func (s *Server) handleGetFloors(c *fiber.Ctx) error {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	out := make([]domain.Floor, 0, len(s.data.floors))
	for _, f := range s.data.floors {
		out = append(out, s.data.floorView(f))
	}
	return c.JSON(out)
}

func (s *Server) handleGetFloorsByWarehouse(c *fiber.Ctx) error {
	warehouseID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	out := make([]domain.Floor, 0)
	for _, f := range s.data.floors {
		if f.warehouseID == warehouseID {
			out = append(out, s.data.floorView(f))
		}
	}
	return c.JSON(out)
}

func (s *Server) handleGetFloor(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	f, ok := s.data.floors[id]
	if !ok {
		return apperrors.NewNotFound("floor")
	}
	return c.JSON(s.data.floorView(f))
}

func (s *Server) handleUpdateFloor(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req domain.FloorRequest
	if err := c.BodyParser(&req); err != nil || req.Name == "" {
		return apperrors.NewValidationError("name is required")
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	f, ok := s.data.floors[id]
	if !ok {
		return apperrors.NewNotFound("floor")
	}
	if _, ok := s.data.warehouses[req.WarehouseID]; !ok {
		return apperrors.NewNotFound("warehouse")
	}
	f.name = req.Name
	f.warehouseID = req.WarehouseID
	return c.SendString("Floor updated successfully")
}

func (s *Server) handleDeleteFloor(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	if _, ok := s.data.floors[id]; !ok {
		return apperrors.NewNotFound("floor")
	}
	delete(s.data.floors, id)
	return c.SendString("Floor deleted successfully")
}

// --- rooms ---

func (s *Server) handleCreateRoom(c *fiber.Ctx) error {
	var req domain.RoomRequest
	if err := c.BodyParser(&req); err != nil || req.Name == "" {
		return apperrors.NewValidationError("name is required")
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	if _, ok := s.data.floors[req.FloorID]; !ok {
		return apperrors.NewNotFound("floor")
	}
	id := s.data.allocID()
	s.data.rooms[id] = &roomRec{id: id, name: req.Name, floorID: req.FloorID}
	return c.SendString("Room created successfully")
}

func (s *Server) handleGetRooms(c *fiber.Ctx) error {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	out := make([]domain.Room, 0, len(s.data.rooms))
	for _, r := range s.data.rooms {
		out = append(out, s.data.roomView(r))
	}
	return c.JSON(out)
}

func (s *Server) handleGetRoomsByWarehouse(c *fiber.Ctx) error {
	warehouseID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	out := make([]domain.Room, 0)
	for _, r := range s.data.rooms {
		if f, ok := s.data.floors[r.floorID]; ok && f.warehouseID == warehouseID {
			out = append(out, s.data.roomView(r))
		}
	}
	return c.JSON(out)
}

func (s *Server) handleGetRoomsByFloor(c *fiber.Ctx) error {
	floorID, err := pathID(c, "floorId")
	if err != nil {
		return err
	}
	warehouseID, err := pathID(c, "warehouseId")
	if err != nil {
		return err
	}
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	out := make([]domain.Room, 0)
	for _, r := range s.data.rooms {
		f, ok := s.data.floors[r.floorID]
		if ok && r.floorID == floorID && f.warehouseID == warehouseID {
			out = append(out, s.data.roomView(r))
		}
	}
	return c.JSON(out)
}

func (s *Server) handleGetRoom(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	r, ok := s.data.rooms[id]
	if !ok {
		return apperrors.NewNotFound("room")
	}
	return c.JSON(s.data.roomView(r))
}

func (s *Server) handleUpdateRoom(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req domain.RoomRequest
	if err := c.BodyParser(&req); err != nil || req.Name == "" {
		return apperrors.NewValidationError("name is required")
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	r, ok := s.data.rooms[id]
	if !ok {
		return apperrors.NewNotFound("room")
	}
	if _, ok := s.data.floors[req.FloorID]; !ok {
		return apperrors.NewNotFound("floor")
	}
	r.name = req.Name
	r.floorID = req.FloorID
	return c.SendString("Room updated successfully")
}

func (s *Server) handleDeleteRoom(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	if _, ok := s.data.rooms[id]; !ok {
		return apperrors.NewNotFound("room")
	}
	delete(s.data.rooms, id)
	return c.SendString("Room deleted successfully")
}

// --- goods ---

func (s *Server) handleCreateGoods(c *fiber.Ctx) error {
	p, _ := principalFromContext(c)
	var req domain.GoodsRequest
	if err := c.BodyParser(&req); err != nil || req.Name == "" {
		return apperrors.NewValidationError("name is required")
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	if _, ok := s.data.categories[req.CategoryID]; !ok {
		return apperrors.NewNotFound("category")
	}
	if _, ok := s.data.rooms[req.RoomID]; !ok {
		return apperrors.NewNotFound("room")
	}
	now := time.Now()
	id := s.data.allocID()
	s.data.goods[id] = &goodsRec{
		id:          id,
		name:        req.Name,
		quantity:    req.Quantity,
		unit:        req.Unit,
		categoryID:  req.CategoryID,
		roomID:      req.RoomID,
		floorID:     req.FloorID,
		warehouseID: req.WarehouseID,
		createdBy:   p.email,
		createDate:  now,
		updateDate:  now,
	}
	return c.SendString("Goods created successfully")
}

func (s *Server) handleGetGoods(c *fiber.Ctx) error {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	out := make([]domain.Goods, 0, len(s.data.goods))
	for _, g := range s.data.goods {
		out = append(out, s.data.goodsView(g))
	}
	return c.JSON(out)
}

func (s *Server) handleGetGoodsByWarehouse(c *fiber.Ctx) error {
	warehouseID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	out := make([]domain.Goods, 0)
	for _, g := range s.data.goods {
		if g.warehouseID == warehouseID {
			out = append(out, s.data.goodsView(g))
		}
	}
	return c.JSON(out)
}

func (s *Server) handleGetGoodsItem(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	g, ok := s.data.goods[id]
	if !ok {
		return apperrors.NewNotFound("goods")
	}
	return c.JSON(s.data.goodsView(g))
}

func (s *Server) handleUpdateGoods(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req domain.GoodsRequest
	if err := c.BodyParser(&req); err != nil || req.Name == "" {
		return apperrors.NewValidationError("name is required")
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	g, ok := s.data.goods[id]
	if !ok {
		return apperrors.NewNotFound("goods")
	}
	g.name = req.Name
	g.quantity = req.Quantity
	g.unit = req.Unit
	g.categoryID = req.CategoryID
	g.roomID = req.RoomID
	g.floorID = req.FloorID
	g.warehouseID = req.WarehouseID
	g.updateDate = time.Now()
	return c.SendString("Goods updated successfully")
}

func (s *Server) handleDeleteGoods(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	if _, ok := s.data.goods[id]; !ok {
		return apperrors.NewNotFound("goods")
	}
	delete(s.data.goods, id)
	return c.SendString("Goods deleted successfully")
}

// --- categories ---

func (s *Server) handleCreateCategory(c *fiber.Ctx) error {
	var req domain.CategoryRequest
	if err := c.BodyParser(&req); err != nil || req.Name == "" {
		return apperrors.NewValidationError("name is required")
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	id := s.data.allocID()
	s.data.categories[id] = &domain.Category{ID: id, Name: req.Name}
	return c.SendString("Category created successfully")
}

func (s *Server) handleGetCategories(c *fiber.Ctx) error {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	out := make([]domain.Category, 0, len(s.data.categories))
	for _, cat := range s.data.categories {
		out = append(out, *cat)
	}
	return c.JSON(out)
}

func (s *Server) handleGetCategory(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	cat, ok := s.data.categories[id]
	if !ok {
		return apperrors.NewNotFound("category")
	}
	return c.JSON(*cat)
}

func (s *Server) handleUpdateCategory(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req domain.CategoryRequest
	if err := c.BodyParser(&req); err != nil || req.Name == "" {
		return apperrors.NewValidationError("name is required")
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	cat, ok := s.data.categories[id]
	if !ok {
		return apperrors.NewNotFound("category")
	}
	cat.Name = req.Name
	return c.SendString("Category updated successfully")
}

func (s *Server) handleDeleteCategory(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	if _, ok := s.data.categories[id]; !ok {
		return apperrors.NewNotFound("category")
	}
	delete(s.data.categories, id)
	return c.SendString("Category deleted successfully")
}
