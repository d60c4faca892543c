package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"eldercare_booking/model"
)

// Các store trong bộ nhớ dùng cho kiểm thử và chạy thử không cần postgres.
// Mọi bản ghi trả ra là bản sao, sửa bản sao không ảnh hưởng dữ liệu gốc.

func cloneUser(u *model.User) *model.User {
	out := *u
	return &out
}

func cloneOrder(o *model.Order) *model.Order {
	out := *o
	out.Booker = nil
	out.Items = append([]model.OrderItem(nil), o.Items...)
	return &out
}

func cloneBooking(b *model.Booking) *model.Booking {
	out := *b
	out.Booker = nil
	out.Service = nil
	return &out
}

func cloneActivity(a *model.Activity) *model.Activity {
	out := *a
	out.Features = append([]string(nil), a.Features...)
	return &out
}

type memoryUserStore struct {
	mu     sync.RWMutex
	nextID uint
	users  map[uint]*model.User
}

func NewMemoryUserStore() UserStore {
	return &memoryUserStore{users: map[uint]*model.User{}}
}

func (s *memoryUserStore) conflict(email, phone string, excludeID uint) bool {
	for id, u := range s.users {
		if id == excludeID {
			continue
		}
		if (email != "" && u.Email == email) || (phone != "" && u.Phone == phone) {
			return true
		}
	}
	return false
}

func (s *memoryUserStore) Create(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conflict(user.Email, user.Phone, 0) {
		return ErrDuplicateUser
	}
	s.nextID++
	now := time.Now()
	user.ID = s.nextID
	user.CreatedAt, user.UpdatedAt = now, now
	if user.Role == "" {
		user.Role = "user"
	}
	s.users[user.ID] = cloneUser(user)
	return nil
}

func (s *memoryUserStore) Save(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.ID]; !ok {
		return ErrNotFound
	}
	if s.conflict(user.Email, user.Phone, user.ID) {
		return ErrDuplicateUser
	}
	user.UpdatedAt = time.Now()
	s.users[user.ID] = cloneUser(user)
	return nil
}

func (s *memoryUserStore) FindByID(_ context.Context, id uint) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneUser(u), nil
}

func (s *memoryUserStore) find(match func(*model.User) bool) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if match(u) {
			return cloneUser(u), nil
		}
	}
	return nil, ErrNotFound
}

func (s *memoryUserStore) FindByEmail(_ context.Context, email string) (*model.User, error) {
	return s.find(func(u *model.User) bool { return u.Email == email })
}

func (s *memoryUserStore) FindByLogin(_ context.Context, emailOrPhone string) (*model.User, error) {
	return s.find(func(u *model.User) bool { return u.Email == emailOrPhone || u.Phone == emailOrPhone })
}

func (s *memoryUserStore) ExistsEmailOrPhone(_ context.Context, email, phone string, excludeID uint) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.conflict(email, phone, excludeID), nil
}

func (s *memoryUserStore) List(_ context.Context) (model.Users, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make(model.Users, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, *cloneUser(u))
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID > users[j].ID })
	return users, nil
}

func (s *memoryUserStore) Delete(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return ErrNotFound
	}
	delete(s.users, id)
	return nil
}

type memoryEvents struct {
	nextID uint
	events []model.OrderStatusEvent
}

func (e *memoryEvents) record(kind string, refID, actorID uint, change *StatusChange) {
	e.nextID++
	e.events = append(e.events, model.OrderStatusEvent{
		ID:        e.nextID,
		Kind:      kind,
		RefID:     refID,
		Field:     change.Field,
		From:      change.From,
		To:        change.To,
		ActorID:   actorID,
		CreatedAt: time.Now(),
	})
}

type memoryOrderStore struct {
	mu     sync.Mutex
	nextID uint
	orders map[uint]*model.Order
	codes  map[string]uint
	events memoryEvents
	users  UserStore
}

// NewMemoryOrderStore users có thể nil, khi đó Booker không được nạp
func NewMemoryOrderStore(users UserStore) OrderStore {
	return &memoryOrderStore{
		orders: map[uint]*model.Order{},
		codes:  map[string]uint{},
		users:  users,
	}
}

func (s *memoryOrderStore) Create(_ context.Context, order *model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.codes[order.OrderCode]; ok {
		return ErrDuplicateCode
	}
	s.nextID++
	now := time.Now()
	order.ID = s.nextID
	order.CreatedAt, order.UpdatedAt = now, now
	if order.Status == "" {
		order.Status = model.OrderPending
	}
	if order.PaymentStatus == "" {
		order.PaymentStatus = model.PaymentPending
	}
	s.orders[order.ID] = cloneOrder(order)
	s.codes[order.OrderCode] = order.ID
	return nil
}

func (s *memoryOrderStore) copyOut(o *model.Order, withBooker bool) model.Order {
	out := *cloneOrder(o)
	if withBooker && s.users != nil {
		if u, err := s.users.FindByID(context.Background(), o.BookedBy); err == nil {
			out.Booker = u
		}
	}
	return out
}

func (s *memoryOrderStore) sorted(match func(*model.Order) bool, withBooker bool) model.Orders {
	orders := model.Orders{}
	for _, o := range s.orders {
		if match(o) {
			orders = append(orders, s.copyOut(o, withBooker))
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID > orders[j].ID })
	return orders
}

func (s *memoryOrderStore) FindByBooker(_ context.Context, userID uint) (model.Orders, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sorted(func(o *model.Order) bool { return o.BookedBy == userID }, false), nil
}

func (s *memoryOrderStore) FindOwned(_ context.Context, id, userID uint) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok || o.BookedBy != userID {
		return nil, ErrNotFound
	}
	out := s.copyOut(o, false)
	return &out, nil
}

func (s *memoryOrderStore) FindByID(_ context.Context, id uint) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := s.copyOut(o, true)
	return &out, nil
}

func (s *memoryOrderStore) FindAll(_ context.Context) (model.Orders, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sorted(func(*model.Order) bool { return true }, true), nil
}

func (s *memoryOrderStore) Mutate(_ context.Context, id uint, actorID uint, fn func(*model.Order) (*StatusChange, error)) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	working := s.copyOut(o, false)
	change, err := fn(&working)
	if err != nil {
		return nil, err
	}
	if change != nil {
		switch change.Field {
		case model.EventFieldStatus:
			o.Status = model.OrderStatus(change.To)
		case model.EventFieldPaymentStatus:
			o.PaymentStatus = model.PaymentStatus(change.To)
		}
		o.UpdatedAt = time.Now()
		s.events.record(model.EventKindOrder, id, actorID, change)
	}
	out := s.copyOut(o, false)
	return &out, nil
}

func (s *memoryOrderStore) Events(_ context.Context, id uint) ([]model.OrderStatusEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := []model.OrderStatusEvent{}
	for _, e := range s.events.events {
		if e.Kind == model.EventKindOrder && e.RefID == id {
			events = append(events, e)
		}
	}
	return events, nil
}

func (s *memoryOrderStore) Summary(_ context.Context, from, to time.Time) (*model.OrderStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := &model.OrderStats{
		ByStatus:        map[string]int64{},
		ByPaymentStatus: map[string]int64{},
	}
	for _, o := range s.orders {
		stats.TotalOrders++
		if !o.CreatedAt.Before(from) && !o.CreatedAt.After(to) {
			stats.OrdersToday++
		}
		stats.ByStatus[string(o.Status)]++
		stats.ByPaymentStatus[string(o.PaymentStatus)]++
		if o.PaymentStatus == model.PaymentPaid {
			stats.PaidRevenue += o.TotalAmount
		}
	}
	return stats, nil
}

type memoryBookingStore struct {
	mu       sync.Mutex
	nextID   uint
	bookings map[uint]*model.Booking
	codes    map[string]uint
	events   memoryEvents
	users    UserStore
}

func NewMemoryBookingStore(users UserStore) BookingStore {
	return &memoryBookingStore{
		bookings: map[uint]*model.Booking{},
		codes:    map[string]uint{},
		users:    users,
	}
}

func (s *memoryBookingStore) Create(_ context.Context, booking *model.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.codes[booking.OrderCode]; ok {
		return ErrDuplicateCode
	}
	s.nextID++
	now := time.Now()
	booking.ID = s.nextID
	booking.CreatedAt, booking.UpdatedAt = now, now
	if booking.Status == "" {
		booking.Status = model.OrderPending
	}
	if booking.PaymentStatus == "" {
		booking.PaymentStatus = model.PaymentPending
	}
	s.bookings[booking.ID] = cloneBooking(booking)
	s.codes[booking.OrderCode] = booking.ID
	return nil
}

func (s *memoryBookingStore) copyOut(b *model.Booking, withBooker bool) model.Booking {
	out := *cloneBooking(b)
	if withBooker && s.users != nil {
		if u, err := s.users.FindByID(context.Background(), b.BookedBy); err == nil {
			out.Booker = u
		}
	}
	return out
}

func (s *memoryBookingStore) sorted(match func(*model.Booking) bool, withBooker bool) model.Bookings {
	bookings := model.Bookings{}
	for _, b := range s.bookings {
		if match(b) {
			bookings = append(bookings, s.copyOut(b, withBooker))
		}
	}
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].ID > bookings[j].ID })
	return bookings
}

func (s *memoryBookingStore) FindByBooker(_ context.Context, userID uint) (model.Bookings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sorted(func(b *model.Booking) bool { return b.BookedBy == userID }, false), nil
}

func (s *memoryBookingStore) FindOwned(_ context.Context, id, userID uint) (*model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok || b.BookedBy != userID {
		return nil, ErrNotFound
	}
	out := s.copyOut(b, false)
	return &out, nil
}

func (s *memoryBookingStore) FindAll(_ context.Context) (model.Bookings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sorted(func(*model.Booking) bool { return true }, true), nil
}

func (s *memoryBookingStore) Mutate(_ context.Context, id uint, actorID uint, fn func(*model.Booking) (*StatusChange, error)) (*model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	working := s.copyOut(b, false)
	change, err := fn(&working)
	if err != nil {
		return nil, err
	}
	if change != nil {
		switch change.Field {
		case model.EventFieldStatus:
			b.Status = model.OrderStatus(change.To)
		case model.EventFieldPaymentStatus:
			b.PaymentStatus = model.PaymentStatus(change.To)
		}
		b.UpdatedAt = time.Now()
		s.events.record(model.EventKindBooking, id, actorID, change)
	}
	out := s.copyOut(b, false)
	return &out, nil
}

type memoryOTPStore struct {
	mu     sync.Mutex
	nextID uint
	otps   map[uint]*model.OTP
}

func NewMemoryOTPStore() OTPStore {
	return &memoryOTPStore{otps: map[uint]*model.OTP{}}
}

func (s *memoryOTPStore) Create(_ context.Context, otp *model.OTP) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	otp.ID = s.nextID
	otp.CreatedAt = time.Now()
	otp.UpdatedAt = otp.CreatedAt
	stored := *otp
	s.otps[otp.ID] = &stored
	return nil
}

func (s *memoryOTPStore) DeleteByEmail(_ context.Context, email string, purpose model.OTPPurpose) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, o := range s.otps {
		if o.Email == email && o.Purpose == purpose {
			delete(s.otps, id)
		}
	}
	return nil
}

func (s *memoryOTPStore) FindActive(_ context.Context, email, code string, purpose model.OTPPurpose, verified bool, now time.Time) (*model.OTP, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.otps {
		if o.Email == email && o.Code == code && o.Purpose == purpose && o.Verified == verified && !o.IsExpired(now) {
			out := *o
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memoryOTPStore) MarkVerified(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.otps[id]
	if !ok {
		return ErrNotFound
	}
	o.Verified = true
	o.UpdatedAt = time.Now()
	return nil
}

func (s *memoryOTPStore) Delete(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.otps, id)
	return nil
}

func (s *memoryOTPStore) PurgeExpired(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for id, o := range s.otps {
		if o.IsExpired(now) {
			delete(s.otps, id)
			n++
		}
	}
	return n, nil
}

type memoryActivityStore struct {
	mu         sync.RWMutex
	nextID     uint
	activities map[uint]*model.Activity
}

func NewMemoryActivityStore() ActivityStore {
	return &memoryActivityStore{activities: map[uint]*model.Activity{}}
}

func (s *memoryActivityStore) List(_ context.Context, filter model.FilterActivity, activeOnly bool) (model.Activities, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	search := strings.ToLower(filter.Search)
	activities := model.Activities{}
	for _, a := range s.activities {
		if activeOnly && !a.IsActive {
			continue
		}
		if filter.Category != "" && filter.Category != "all" && a.Category != filter.Category {
			continue
		}
		if filter.Format != "" && a.Format != filter.Format {
			continue
		}
		if filter.Package != "" && a.Package != filter.Package {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(a.Title), search) {
			continue
		}
		activities = append(activities, *cloneActivity(a))
	}
	sort.Slice(activities, func(i, j int) bool { return activities[i].ID > activities[j].ID })
	return activities, nil
}

func (s *memoryActivityStore) FindByID(_ context.Context, id uint) (*model.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.activities[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneActivity(a), nil
}

func (s *memoryActivityStore) FindBySlug(_ context.Context, slug string) (*model.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.activities {
		if a.Slug == slug {
			return cloneActivity(a), nil
		}
	}
	return nil, ErrNotFound
}

func (s *memoryActivityStore) SlugExists(_ context.Context, slug string, excludeID uint) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for id, a := range s.activities {
		if id != excludeID && a.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (s *memoryActivityStore) Create(_ context.Context, activity *model.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	now := time.Now()
	activity.ID = s.nextID
	activity.CreatedAt, activity.UpdatedAt = now, now
	s.activities[activity.ID] = cloneActivity(activity)
	return nil
}

func (s *memoryActivityStore) Save(_ context.Context, activity *model.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.activities[activity.ID]; !ok {
		return ErrNotFound
	}
	activity.UpdatedAt = time.Now()
	s.activities[activity.ID] = cloneActivity(activity)
	return nil
}

func (s *memoryActivityStore) Delete(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.activities[id]; !ok {
		return ErrNotFound
	}
	delete(s.activities, id)
	return nil
}

func (s *memoryActivityStore) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.activities)), nil
}

type memorySequenceCounter struct {
	mu     sync.Mutex
	values map[string]int64
}

func NewMemorySequenceCounter() SequenceCounter {
	return &memorySequenceCounter{values: map[string]int64{}}
}

func (c *memorySequenceCounter) Next(_ context.Context, day string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[day]++
	return c.values[day], nil
}
