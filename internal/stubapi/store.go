package stubapi

import (
	"sync"
	"time"

	"github.com/shahidulislam-dev/warehouse-console/internal/domain"
)

// account couples the public user record with its password hash.
type account struct {
	user         domain.User
	passwordHash string
}

type floorRec struct {
	id          int
	name        string
	warehouseID int
}

type roomRec struct {
	id      int
	name    string
	floorID int
}

type goodsRec struct {
	id          int
	name        string
	quantity    int
	unit        string
	categoryID  int
	roomID      int
	floorID     int
	warehouseID int
	createdBy   string
	createDate  time.Time
	updateDate  time.Time
}

// store is the stub backend's in-memory state. Everything is lost on
// restart; that is the point of a stub.
type store struct {
	mu         sync.Mutex
	nextID     int
	users      map[int]*account
	warehouses map[int]*domain.Warehouse
	floors     map[int]*floorRec
	rooms      map[int]*roomRec
	goods      map[int]*goodsRec
	categories map[int]*domain.Category
}

func newStore() *store {
	return &store{
		nextID:     1,
		users:      make(map[int]*account),
		warehouses: make(map[int]*domain.Warehouse),
		floors:     make(map[int]*floorRec),
		rooms:      make(map[int]*roomRec),
		goods:      make(map[int]*goodsRec),
		categories: make(map[int]*domain.Category),
	}
}

func (st *store) allocID() int {
	id := st.nextID
	st.nextID++
	return id
}

func (st *store) userByEmail(email string) *account {
	for _, acc := range st.users {
		if acc.user.Email == email {
			return acc
		}
	}
	return nil
}

// floorLocation resolves a floor's warehouse name; empty when dangling.
func (st *store) warehouseName(id int) string {
	if w, ok := st.warehouses[id]; ok {
		return w.Name
	}
	return ""
}

func (st *store) floorView(f *floorRec) domain.Floor {
	return domain.Floor{
		ID:            f.id,
		Name:          f.name,
		WarehouseName: st.warehouseName(f.warehouseID),
	}
}

func (st *store) roomView(r *roomRec) domain.Room {
	view := domain.Room{ID: r.id, Name: r.name}
	if f, ok := st.floors[r.floorID]; ok {
		view.FloorName = f.name
		view.WarehouseName = st.warehouseName(f.warehouseID)
	}
	return view
}

func (st *store) goodsView(g *goodsRec) domain.Goods {
	view := domain.Goods{
		ID:         g.id,
		Name:       g.name,
		Quantity:   g.quantity,
		Unit:       g.unit,
		CreatedBy:  g.createdBy,
		CreateDate: g.createDate.Format(time.RFC3339),
		UpdateDate: g.updateDate.Format(time.RFC3339),
	}
	if cat, ok := st.categories[g.categoryID]; ok {
		view.CategoryName = cat.Name
	}
	if room, ok := st.rooms[g.roomID]; ok {
		view.RoomName = room.name
	}
	if f, ok := st.floors[g.floorID]; ok {
		view.FloorName = f.name
	}
	view.WarehouseName = st.warehouseName(g.warehouseID)
	return view
}
